package app_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gp-ticketing/internal/app"
	"gp-ticketing/internal/config"
	"gp-ticketing/internal/errs"
)

func testConfig(t *testing.T) *config.Config {
	base := t.TempDir()
	return &config.Config{
		Storage: config.StorageConfig{DataDir: filepath.Join(base, "data")},
		Logs:    config.LogConfig{Dir: filepath.Join(base, "logs")},
		QR:      config.QRConfig{Secret: "test-secret"},
		Seed:    config.SeedConfig{Enabled: true},
	}
}

func TestStartupSeedsCatalogAndDiscounts(t *testing.T) {
	a, err := app.New(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	entries := a.ListCatalog()
	require.Len(t, entries, 5)
	assert.Equal(t, "Single Race Pass", entries[0].Name)

	active := a.ListActiveDiscounts()
	require.Len(t, active, 2)
	assert.Equal(t, "Weekend Promo", active[0].Name)
	assert.Equal(t, "Season Special", active[1].Name)

	// The seeded Season Special drives the reference price
	season := entries[2]
	assert.Equal(t, 3400.0, a.FinalPrice(season))
}

func TestPurchaseFlow(t *testing.T) {
	ctx := context.Background()
	a, err := app.New(ctx, testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	customer, err := a.RegisterUser(ctx, "Hamdan", "hamdan@example.com", "pass123")
	require.NoError(t, err)

	logged, err := a.Authenticate(ctx, "hamdan@example.com", "pass123")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, logged.ID)

	order, err := a.ConfirmPurchase(ctx, customer, []string{"Season Pass"}, "Credit Card")
	require.NoError(t, err)
	assert.Equal(t, 3400.0, order.TotalPrice)

	history := a.ListHistory(customer)
	require.Len(t, history, 1)

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, 1, a.SalesReport()[today])
}

func TestToggleDiscount(t *testing.T) {
	ctx := context.Background()
	a, err := app.New(ctx, testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	season := a.ListCatalog()[2]
	require.Equal(t, 3400.0, a.FinalPrice(season))

	d, err := a.ToggleDiscount(ctx, "Season Special")
	require.NoError(t, err)
	assert.False(t, d.Active)
	assert.Equal(t, 4000.0, a.FinalPrice(season))

	d, err = a.ToggleDiscount(ctx, "Season Special")
	require.NoError(t, err)
	assert.True(t, d.Active)
	assert.Equal(t, 3400.0, a.FinalPrice(season))

	_, err = a.ToggleDiscount(ctx, "No Such Promo")
	assert.True(t, errs.IsNotFound(err))
}

func TestStateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := app.New(ctx, cfg)
	require.NoError(t, err)

	customer, err := a.RegisterUser(ctx, "Hamdan", "hamdan@example.com", "pass123")
	require.NoError(t, err)
	order, err := a.ConfirmPurchase(ctx, customer, []string{"Weekend Package", "Single Race Pass"}, "Apple Pay")
	require.NoError(t, err)
	_, err = a.ToggleDiscount(ctx, "Weekend Promo")
	require.NoError(t, err)
	a.Close()

	// A second run against the same data directory sees everything
	b, err := app.New(ctx, cfg)
	require.NoError(t, err)
	defer b.Close()

	reloaded, err := b.Authenticate(ctx, "hamdan@example.com", "pass123")
	require.NoError(t, err)

	history := b.ListHistory(reloaded)
	require.Len(t, history, 1)
	assert.Equal(t, order.OrderID, history[0].OrderID)
	assert.Equal(t, order.TotalPrice, history[0].TotalPrice)

	// The toggled discount stayed off, so only one rule is active
	active := b.ListActiveDiscounts()
	require.Len(t, active, 1)
	assert.Equal(t, "Season Special", active[0].Name)

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, 2, b.SalesReport()[today])
}

func TestEditAndDeleteThroughApp(t *testing.T) {
	ctx := context.Background()
	a, err := app.New(ctx, testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	customer, err := a.RegisterUser(ctx, "Zayed", "zayed@uni.ac.ae", "secure456")
	require.NoError(t, err)

	order, err := a.ConfirmPurchase(ctx, customer, []string{"Single Race Pass"}, "Debit Card")
	require.NoError(t, err)

	replacement, err := a.EditOrder(ctx, customer, order.OrderID, "Google Pay")
	require.NoError(t, err)
	assert.NotEqual(t, order.OrderID, replacement.OrderID)

	require.NoError(t, a.DeleteOrder(ctx, customer, replacement.OrderID))
	assert.Empty(t, a.ListHistory(customer))
}
