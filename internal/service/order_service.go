package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/model"
	"restopanel/internal/repository"
)

// TaxRate applied to every POS order.
var TaxRate = decimal.RequireFromString("0.08")

type OrderService interface {
	// Open starts a POS ticket for a table; one open order per table.
	Open(ctx context.Context, req dto.OpenOrderRequest) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetOpenByTable(ctx context.Context, tableID string) (*model.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error)
	AddItem(ctx context.Context, orderID string, req dto.AddOrderItemRequest) (*model.Order, error)
	RemoveItem(ctx context.Context, orderID, itemName string) (*model.Order, error)
	Pay(ctx context.Context, orderID string) (*model.Order, error)
	Cancel(ctx context.Context, orderID string) (*model.Order, error)
	BillingSummary(ctx context.Context, restaurantID string) (*dto.BillingSummaryResponse, error)
}

type orderService struct {
	repos *repository.Store
}

func NewOrderService(repos *repository.Store) OrderService {
	return &orderService{repos: repos}
}

func (s *orderService) Open(ctx context.Context, req dto.OpenOrderRequest) (*model.Order, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}

	existing, err := repos.Orders.GetOpenByTable(ctx, req.TableID)
	if err == nil {
		return nil, apierror.NewValidation("table already has open order " + existing.ID)
	}
	var nf *apierror.NotFoundError
	if !errors.As(err, &nf) {
		// a lookup failure is not "no open order" — creating here could
		// produce a second open ticket for the table
		return nil, err
	}

	now := time.Now().UTC()
	o := &model.Order{
		ID:           uuid.NewString(),
		RestaurantID: req.RestaurantID,
		TableID:      req.TableID,
		ServerID:     req.ServerID,
		Items:        []model.OrderItem{},
		Status:       model.OrderOpen,
		Subtotal:     decimal.Zero,
		Tax:          decimal.Zero,
		Total:        decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repos.Orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	return repos.Orders.GetByID(ctx, id)
}

func (s *orderService) GetOpenByTable(ctx context.Context, tableID string) (*model.Order, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	return repos.Orders.GetOpenByTable(ctx, tableID)
}

func (s *orderService) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	return repos.Orders.ListByRestaurant(ctx, restaurantID)
}

func (s *orderService) AddItem(ctx context.Context, orderID string, req dto.AddOrderItemRequest) (*model.Order, error) {
	return s.mutateOpen(ctx, orderID, func(o *model.Order) error {
		// merge with an existing identical line instead of duplicating it
		for i, it := range o.Items {
			if it.Name == req.Name && it.UnitPrice.Equal(req.UnitPrice) && it.Notes == req.Notes {
				o.Items[i].Quantity += req.Quantity
				return nil
			}
		}
		o.Items = append(o.Items, model.OrderItem{
			Name:      req.Name,
			Quantity:  req.Quantity,
			UnitPrice: req.UnitPrice,
			Notes:     req.Notes,
		})
		return nil
	})
}

func (s *orderService) RemoveItem(ctx context.Context, orderID, itemName string) (*model.Order, error) {
	return s.mutateOpen(ctx, orderID, func(o *model.Order) error {
		kept := o.Items[:0]
		found := false
		for _, it := range o.Items {
			if it.Name == itemName {
				found = true
				continue
			}
			kept = append(kept, it)
		}
		if !found {
			return apierror.NewNotFound("order item", itemName)
		}
		o.Items = kept
		return nil
	})
}

func (s *orderService) Pay(ctx context.Context, orderID string) (*model.Order, error) {
	return s.close(ctx, orderID, model.OrderPaid)
}

func (s *orderService) Cancel(ctx context.Context, orderID string) (*model.Order, error) {
	return s.close(ctx, orderID, model.OrderCancelled)
}

func (s *orderService) BillingSummary(ctx context.Context, restaurantID string) (*dto.BillingSummaryResponse, error) {
	orders, err := s.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	summary := &dto.BillingSummaryResponse{
		RestaurantID: restaurantID,
		GrossTotal:   decimal.Zero,
		TaxTotal:     decimal.Zero,
	}
	for _, o := range orders {
		summary.OrderCount++
		switch o.Status {
		case model.OrderPaid:
			summary.PaidCount++
			summary.GrossTotal = summary.GrossTotal.Add(o.Total)
			summary.TaxTotal = summary.TaxTotal.Add(o.Tax)
		case model.OrderOpen:
			summary.OpenCount++
		}
	}
	return summary, nil
}

func (s *orderService) mutateOpen(ctx context.Context, orderID string, fn func(*model.Order) error) (*model.Order, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	o, err := repos.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != model.OrderOpen {
		return nil, apierror.NewValidation("order is not open")
	}

	expected := o.UpdatedAt
	if err := fn(o); err != nil {
		return nil, err
	}
	o.Recalculate(TaxRate)
	o.UpdatedAt = time.Now().UTC()
	if err := repos.Orders.Update(ctx, o, expected); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderService) close(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	o, err := repos.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !model.CanTransitionOrder(o.Status, to) {
		return nil, apierror.NewTransition("order", string(o.Status), string(to))
	}

	expected := o.UpdatedAt
	now := time.Now().UTC()
	o.Status = to
	o.ClosedAt = &now
	o.UpdatedAt = now
	if err := repos.Orders.Update(ctx, o, expected); err != nil {
		return nil, err
	}
	return o, nil
}
