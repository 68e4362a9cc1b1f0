package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gp-ticketing/internal/catalog"
	"gp-ticketing/internal/models"
	"gp-ticketing/internal/store"
)

func setupStore(t *testing.T) *store.Store {
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestFreshLocationLoadsEmpty(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	orders, err := s.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	discounts, err := s.LoadDiscounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, discounts)

	sales, err := s.LoadSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestSaveEmptyThenLoad(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveUsers(ctx, []*models.User{}))
	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUsersRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	customer := models.NewCustomer("Hamdan", "hamdan@example.com", "pass123")
	admin := models.NewAdmin("Dr. Andrew", "admin@example.com", "adminpass")
	require.NoError(t, s.SaveUsers(ctx, []*models.User{customer, admin}))

	loaded, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Field-by-field, including generated ids and timestamps
	assert.Equal(t, customer.ID, loaded[0].ID)
	assert.Equal(t, "Hamdan", loaded[0].Name)
	assert.Equal(t, "hamdan@example.com", loaded[0].Email)
	assert.Equal(t, "pass123", loaded[0].Password)
	assert.WithinDuration(t, customer.CreatedAt, loaded[0].CreatedAt, time.Second)

	// Polymorphic identity survives: a customer stays a customer, an admin
	// an admin with its derived display id
	assert.Equal(t, models.RoleCustomer, loaded[0].Role)
	assert.Equal(t, models.RoleAdmin, loaded[1].Role)
	assert.Equal(t, admin.AdminID, loaded[1].AdminID)
}

func TestOrdersRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	tickets := []models.Ticket{catalog.WeekendPackage(), catalog.SeasonPass()}
	order, err := models.NewPurchaseOrder("cust-1", tickets, 4075.0, models.CreditCard)
	require.NoError(t, err)
	order.Receipt = []byte{0x89, 0x50, 0x4e, 0x47}

	second, err := models.NewPurchaseOrder("cust-2", []models.Ticket{catalog.GroupTicket(5)}, 1375.0, models.ApplePay)
	require.NoError(t, err)

	require.NoError(t, s.SaveOrders(ctx, []*models.PurchaseOrder{order, second}))

	loaded, err := s.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	got := loaded[0]
	assert.Equal(t, order.OrderID, got.OrderID)
	assert.Equal(t, "cust-1", got.CustomerID)
	assert.Equal(t, 4075.0, got.TotalPrice)
	assert.Equal(t, models.CreditCard, got.PaymentMethod)
	assert.Equal(t, order.Receipt, got.Receipt)
	assert.WithinDuration(t, order.PurchasedAt, got.PurchasedAt, time.Second)

	// The embedded ticket list round-trips with order preserved
	require.Len(t, got.Tickets, 2)
	assert.Equal(t, tickets[0].TicketID, got.Tickets[0].TicketID)
	assert.Equal(t, "Weekend Package", got.Tickets[0].Name)
	assert.Equal(t, tickets[0].Features, got.Tickets[0].Features)
	assert.Equal(t, "Season Pass", got.Tickets[1].Name)

	assert.Equal(t, 5, loaded[1].Tickets[0].GroupSize)
}

func TestDiscountsRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	expired := models.NewDiscount("Expired Offer", 50, "Single Race Pass")
	expired.Deactivate()
	in := []*models.Discount{
		models.NewDiscount("Weekend Promo", 10, "Weekend Package"),
		models.NewDiscount("Season Special", 15, "Season Pass"),
		expired,
	}
	require.NoError(t, s.SaveDiscounts(ctx, in))

	loaded, err := s.LoadDiscounts(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	assert.Equal(t, "Weekend Promo", loaded[0].Name)
	assert.Equal(t, 10.0, loaded[0].Percentage)
	assert.Equal(t, "Weekend Package", loaded[0].TicketType)
	assert.True(t, loaded[0].Active)
	assert.False(t, loaded[2].Active)
}

func TestSalesRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	in := map[string]int{"2026-08-27": 8, "2026-08-28": 3}
	require.NoError(t, s.SaveSales(ctx, in))

	loaded, err := s.LoadSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, loaded)
}

func TestSaveIsFullReplace(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	a := models.NewCustomer("Hamdan", "hamdan@example.com", "pass123")
	b := models.NewCustomer("Zayed", "zayed@uni.ac.ae", "secure456")
	require.NoError(t, s.SaveUsers(ctx, []*models.User{a, b}))

	// A second save with a smaller collection overwrites, not merges
	require.NoError(t, s.SaveUsers(ctx, []*models.User{b}))
	loaded, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, b.ID, loaded[0].ID)

	require.NoError(t, s.SaveSales(ctx, map[string]int{"2026-08-27": 8}))
	require.NoError(t, s.SaveSales(ctx, map[string]int{"2026-08-28": 1}))
	sales, err := s.LoadSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2026-08-28": 1}, sales)
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := store.Open(dir)
	require.NoError(t, err)
	customer := models.NewCustomer("Hamdan", "hamdan@example.com", "pass123")
	require.NoError(t, s.SaveUsers(ctx, []*models.User{customer}))
	s.Close()

	reopened, err := store.Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadUsers(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, customer.ID, loaded[0].ID)
}
