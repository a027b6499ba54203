package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/model"
	"restopanel/internal/repository"
)

func openTestOrder(t *testing.T, svc OrderService, tableID string) *model.Order {
	t.Helper()
	o, err := svc.Open(context.Background(), dto.OpenOrderRequest{
		RestaurantID: repository.FixtureRestaurantID,
		TableID:      tableID,
	})
	require.NoError(t, err)
	return o
}

func TestOpenOrderRejectsSecondOpenOrderOnTable(t *testing.T) {
	svc := NewOrderService(newTestRepos(t))

	openTestOrder(t, svc, "fx-table-1")

	_, err := svc.Open(context.Background(), dto.OpenOrderRequest{
		RestaurantID: repository.FixtureRestaurantID,
		TableID:      "fx-table-1",
	})
	var valErr *apierror.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

// failingLookupOrderRepo simulates a backend where the open-order lookup
// fails with a transport error rather than a clean miss.
type failingLookupOrderRepo struct {
	repository.OrderRepository
	created bool
}

func (r *failingLookupOrderRepo) GetOpenByTable(context.Context, string) (*model.Order, error) {
	return nil, errors.New("connection reset by peer")
}

func (r *failingLookupOrderRepo) Create(ctx context.Context, o *model.Order) error {
	r.created = true
	return r.OrderRepository.Create(ctx, o)
}

func TestOpenOrderDoesNotCreateWhenLookupFails(t *testing.T) {
	repos := newTestRepos(t)
	stub := &failingLookupOrderRepo{OrderRepository: repos.Mem().Orders}
	repos.Mem().Orders = stub
	svc := NewOrderService(repos)

	_, err := svc.Open(context.Background(), dto.OpenOrderRequest{
		RestaurantID: repository.FixtureRestaurantID,
		TableID:      "fx-table-2",
	})
	require.Error(t, err)
	var valErr *apierror.ValidationError
	assert.False(t, errors.As(err, &valErr), "a lookup failure is not a duplicate-order rejection")
	assert.False(t, stub.created, "no order may be created while the open-order check is unanswered")
}

func TestOrderTotalsUseExactDecimals(t *testing.T) {
	svc := NewOrderService(newTestRepos(t))
	o := openTestOrder(t, svc, "fx-table-3")

	o, err := svc.AddItem(context.Background(), o.ID, dto.AddOrderItemRequest{
		Name:      "Risotto ai funghi",
		Quantity:  2,
		UnitPrice: decimal.RequireFromString("22.00"),
	})
	require.NoError(t, err)
	o, err = svc.AddItem(context.Background(), o.ID, dto.AddOrderItemRequest{
		Name:      "Sparkling water",
		Quantity:  1,
		UnitPrice: decimal.RequireFromString("3.75"),
	})
	require.NoError(t, err)

	assert.True(t, o.Subtotal.Equal(decimal.RequireFromString("47.75")), "subtotal %s", o.Subtotal)
	assert.True(t, o.Tax.Equal(decimal.RequireFromString("3.82")), "tax %s", o.Tax)
	assert.True(t, o.Total.Equal(decimal.RequireFromString("51.57")), "total %s", o.Total)
}

func TestAddItemMergesIdenticalLines(t *testing.T) {
	svc := NewOrderService(newTestRepos(t))
	o := openTestOrder(t, svc, "fx-table-3")

	line := dto.AddOrderItemRequest{Name: "Espresso", Quantity: 1, UnitPrice: decimal.RequireFromString("3.00")}
	o, err := svc.AddItem(context.Background(), o.ID, line)
	require.NoError(t, err)
	o, err = svc.AddItem(context.Background(), o.ID, line)
	require.NoError(t, err)

	require.Len(t, o.Items, 1)
	assert.Equal(t, 2, o.Items[0].Quantity)
}

func TestRemoveItemRecalculates(t *testing.T) {
	svc := NewOrderService(newTestRepos(t))
	o := openTestOrder(t, svc, "fx-table-3")

	_, err := svc.AddItem(context.Background(), o.ID, dto.AddOrderItemRequest{
		Name: "Espresso", Quantity: 1, UnitPrice: decimal.RequireFromString("3.00"),
	})
	require.NoError(t, err)

	o, err = svc.RemoveItem(context.Background(), o.ID, "Espresso")
	require.NoError(t, err)
	assert.Empty(t, o.Items)
	assert.True(t, o.Total.IsZero())

	_, err = svc.RemoveItem(context.Background(), o.ID, "Espresso")
	var nf *apierror.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestPayClosesOrder(t *testing.T) {
	svc := NewOrderService(newTestRepos(t))
	o := openTestOrder(t, svc, "fx-table-3")

	paid, err := svc.Pay(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderPaid, paid.Status)
	require.NotNil(t, paid.ClosedAt)

	// paid is terminal: no further mutation
	_, err = svc.AddItem(context.Background(), o.ID, dto.AddOrderItemRequest{
		Name: "Espresso", Quantity: 1, UnitPrice: decimal.RequireFromString("3.00"),
	})
	var valErr *apierror.ValidationError
	assert.ErrorAs(t, err, &valErr)

	_, err = svc.Cancel(context.Background(), o.ID)
	var trErr *apierror.TransitionError
	assert.ErrorAs(t, err, &trErr)
}

func TestBillingSummaryCountsPaidOrdersOnly(t *testing.T) {
	svc := NewOrderService(newTestRepos(t))

	o := openTestOrder(t, svc, "fx-table-3")
	_, err := svc.AddItem(context.Background(), o.ID, dto.AddOrderItemRequest{
		Name: "Tiramisu", Quantity: 2, UnitPrice: decimal.RequireFromString("9.00"),
	})
	require.NoError(t, err)
	paid, err := svc.Pay(context.Background(), o.ID)
	require.NoError(t, err)

	summary, err := svc.BillingSummary(context.Background(), repository.FixtureRestaurantID)
	require.NoError(t, err)

	// the fixture set ships one open order; we added one paid order
	assert.Equal(t, 2, summary.OrderCount)
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, 1, summary.OpenCount)
	assert.True(t, summary.GrossTotal.Equal(paid.Total), "gross %s want %s", summary.GrossTotal, paid.Total)
	assert.True(t, summary.TaxTotal.Equal(paid.Tax))
}
