package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"restopanel/internal/model"
)

// Demo identifiers are fixed so mock mode behaves the same on every start.
const (
	FixtureRestaurantID = "fx-restaurant-bella-vista"
	FixtureOwnerID      = "fx-user-owner"
)

// FixtureCredentials is the mock-mode credential table. Sign-in in mock mode
// succeeds only for these pairs.
var FixtureCredentials = map[string]string{
	"owner@restaurant.com":   "owner123",
	"manager@restaurant.com": "manager123",
	"host@restaurant.com":    "host123",
	"server@restaurant.com":  "server123",
}

func fixtureTime() time.Time {
	return time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
}

// SeedFixtures loads the demo dataset into a memory bundle: four staff
// accounts, one restaurant with tables, reservations, staff profiles and an
// open POS order.
func SeedFixtures(b *Bundle) error {
	ctx := context.Background()
	now := fixtureTime()

	users := []struct {
		id    string
		email string
		name  string
		role  model.Role
	}{
		{FixtureOwnerID, "owner@restaurant.com", "Olivia Marchetti", model.RoleOwner},
		{"fx-user-manager", "manager@restaurant.com", "Marcus Lindqvist", model.RoleManager},
		{"fx-user-host", "host@restaurant.com", "Hana Okafor", model.RoleHost},
		{"fx-user-server", "server@restaurant.com", "Sergio Duarte", model.RoleServer},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(FixtureCredentials[u.email]), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := b.Users.Create(ctx, &model.User{
			ID:           u.id,
			Email:        u.email,
			Name:         u.name,
			Role:         u.role,
			RestaurantID: FixtureRestaurantID,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
	}

	if err := b.Restaurants.Create(ctx, &model.Restaurant{
		ID:          FixtureRestaurantID,
		OwnerID:     FixtureOwnerID,
		Name:        "Bella Vista",
		Description: "Family-run trattoria with a seasonal menu and a quiet patio.",
		Cuisine:     "Italian",
		Address:     "42 Harbor Lane",
		City:        "Portsview",
		Phone:       "+1 555 0142",
		Email:       "hello@bellavista.example",
		PriceRange:  "$$$",
		IsOpen:      true,
		Rating:      4.6,
		ReviewCount: 128,
		Amenities:   []string{"patio", "wifi", "wheelchair accessible", "full bar"},
		Hours: map[string]string{
			"Monday":    "Closed",
			"Tuesday":   "17:00 – 22:00",
			"Wednesday": "17:00 – 22:00",
			"Thursday":  "17:00 – 22:00",
			"Friday":    "12:00 – 23:00",
			"Saturday":  "12:00 – 23:00",
			"Sunday":    "12:00 – 21:00",
		},
		Images:        []string{"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4"},
		SpecialOffers: []string{"Tuesday tasting menu — 5 courses for $55"},
		MenuHighlight: []model.MenuHighlightGroup{
			{
				Title: "Antipasti",
				Items: []model.MenuHighlightItem{
					{Name: "Burrata con prosciutto", Description: "With grilled sourdough", Price: "$16"},
					{Name: "Calamari fritti", Price: "$14"},
				},
			},
			{
				Title: "Primi",
				Items: []model.MenuHighlightItem{
					{Name: "Tagliatelle al ragù", Description: "Eight-hour beef ragù", Price: "$24"},
					{Name: "Risotto ai funghi", Price: "$22"},
				},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return err
	}

	tables := []struct {
		id       string
		number   string
		capacity int
		status   model.TableStatus
		location string
	}{
		{"fx-table-1", "T1", 2, model.TableAvailable, "window"},
		{"fx-table-2", "T2", 2, model.TableOccupied, "window"},
		{"fx-table-3", "T3", 4, model.TableAvailable, "main"},
		{"fx-table-4", "T4", 4, model.TableReserved, "main"},
		{"fx-table-5", "T5", 6, model.TableCleaning, "main"},
		{"fx-table-6", "P1", 4, model.TableAvailable, "patio"},
	}
	for _, t := range tables {
		if err := b.Tables.Create(ctx, &model.Table{
			ID:           t.id,
			RestaurantID: FixtureRestaurantID,
			TableNumber:  t.number,
			Capacity:     t.capacity,
			Status:       t.status,
			Location:     t.location,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
	}

	reservations := []struct {
		id           string
		confirmation string
		name         string
		email        string
		party        int
		offset       time.Duration
		status       model.ReservationStatus
		tableID      string
	}{
		{"fx-res-1", "BV-20250301-001", "Priya Raman", "priya@example.com", 2, 9 * time.Hour, model.ReservationPending, ""},
		{"fx-res-2", "BV-20250301-002", "Tom Becker", "tom@example.com", 4, 10 * time.Hour, model.ReservationConfirmed, "fx-table-4"},
		{"fx-res-3", "BV-20250301-003", "Ana Sousa", "", 6, 11 * time.Hour, model.ReservationSeated, "fx-table-2"},
	}
	for _, res := range reservations {
		if err := b.Reservations.Create(ctx, &model.Reservation{
			ID:                 res.id,
			RestaurantID:       FixtureRestaurantID,
			ConfirmationNumber: res.confirmation,
			CustomerName:       res.name,
			CustomerEmail:      res.email,
			PartySize:          res.party,
			DateTime:           now.Add(res.offset),
			Status:             res.status,
			TableID:            res.tableID,
			CreatedAt:          now,
			UpdatedAt:          now,
		}); err != nil {
			return err
		}
	}

	staff := []struct {
		id    string
		name  string
		email string
		role  model.Role
	}{
		{"fx-staff-1", "Marcus Lindqvist", "manager@restaurant.com", model.RoleManager},
		{"fx-staff-2", "Hana Okafor", "host@restaurant.com", model.RoleHost},
		{"fx-staff-3", "Sergio Duarte", "server@restaurant.com", model.RoleServer},
	}
	for _, s := range staff {
		if err := b.Staff.Create(ctx, &model.StaffMember{
			ID:           s.id,
			RestaurantID: FixtureRestaurantID,
			Name:         s.name,
			Email:        s.email,
			Role:         s.role,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
	}

	order := &model.Order{
		ID:           "fx-order-1",
		RestaurantID: FixtureRestaurantID,
		TableID:      "fx-table-2",
		ServerID:     "fx-staff-3",
		Items: []model.OrderItem{
			{Name: "Tagliatelle al ragù", Quantity: 2, UnitPrice: decimal.RequireFromString("24.00")},
			{Name: "House red (glass)", Quantity: 2, UnitPrice: decimal.RequireFromString("9.50")},
		},
		Status:    model.OrderOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	order.Recalculate(decimal.RequireFromString("0.08"))
	return b.Orders.Create(ctx, order)
}
