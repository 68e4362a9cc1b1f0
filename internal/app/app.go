// Package app wires the ticketing core into one explicitly constructed
// context object: configuration, logging, stores, the ticket manager and
// the services. The presentation layer talks to this object only.
package app

import (
	"context"
	"fmt"

	"gp-ticketing/internal/catalog"
	"gp-ticketing/internal/config"
	"gp-ticketing/internal/errs"
	"gp-ticketing/internal/logger"
	"gp-ticketing/internal/models"
	"gp-ticketing/internal/orders"
	"gp-ticketing/internal/orders/qr"
	"gp-ticketing/internal/store"
	"gp-ticketing/internal/ticketing"
	"gp-ticketing/internal/users"
)

type App struct {
	Config  *config.Config
	Logger  *logger.Logger
	Store   *store.Store
	Manager *ticketing.Manager
	Users   *users.Service
	Orders  *orders.Service
}

// New loads every persisted collection, restores the sales counter,
// registers the stock catalog and seeds the default discount rules when the
// discounts store is empty.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.NewLogger(cfg.Logs.Dir)

	st, err := store.Open(cfg.Storage.DataDir)
	if err != nil {
		log.Error("APP", "cannot open stores: "+err.Error())
		return nil, err
	}

	loadedUsers, err := st.LoadUsers(ctx)
	if err != nil {
		st.Close()
		return nil, err
	}
	loadedOrders, err := st.LoadOrders(ctx)
	if err != nil {
		st.Close()
		return nil, err
	}
	attachHistories(loadedUsers, loadedOrders)

	manager := ticketing.NewManager()
	for _, t := range catalog.Stock() {
		manager.Register(t)
	}

	discounts, err := st.LoadDiscounts(ctx)
	if err != nil {
		st.Close()
		return nil, err
	}
	if len(discounts) == 0 && cfg.Seed.Enabled {
		discounts = defaultDiscounts()
		if err := st.SaveDiscounts(ctx, discounts); err != nil {
			st.Close()
			return nil, err
		}
		log.Info("APP", "seeded default discounts")
	}
	for _, d := range discounts {
		manager.AddDiscount(d)
	}

	sales, err := st.LoadSales(ctx)
	if err != nil {
		st.Close()
		return nil, err
	}
	manager.SetSales(sales)

	userService := users.NewService(st, log, loadedUsers)
	receipts := qr.NewReceiptGenerator(cfg.QR.Secret)
	orderService := orders.NewService(manager, st, userService, receipts, log)

	log.Info("APP", fmt.Sprintf("loaded %d user(s), %d order(s), %d discount(s)",
		len(loadedUsers), len(loadedOrders), len(discounts)))

	return &App{
		Config:  cfg,
		Logger:  log,
		Store:   st,
		Manager: manager,
		Users:   userService,
		Orders:  orderService,
	}, nil
}

func (a *App) Close() {
	a.Store.Close()
	a.Logger.Close()
}

// ---------------- operation surface ----------------

func (a *App) RegisterUser(ctx context.Context, name, email, password string) (*models.User, error) {
	return a.Users.Register(ctx, name, email, password)
}

func (a *App) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	return a.Users.Authenticate(ctx, email, password)
}

// ListCatalog returns the catalog entries in registration order.
func (a *App) ListCatalog() []models.Ticket {
	var entries []models.Ticket
	for _, name := range a.Manager.CatalogNames() {
		if t := a.Manager.Lookup(name); t != nil {
			entries = append(entries, *t)
		}
	}
	return entries
}

func (a *App) FinalPrice(t models.Ticket) float64 {
	return a.Manager.FinalPrice(t)
}

func (a *App) ConfirmPurchase(ctx context.Context, customer *models.User, ticketNames []string, method string) (*models.PurchaseOrder, error) {
	return a.Orders.ConfirmPurchase(ctx, customer, ticketNames, method)
}

func (a *App) ListHistory(customer *models.User) []*models.PurchaseOrder {
	return a.Orders.ListHistory(customer)
}

func (a *App) EditOrder(ctx context.Context, customer *models.User, orderID, newMethod string) (*models.PurchaseOrder, error) {
	return a.Orders.EditOrder(ctx, customer, orderID, newMethod)
}

func (a *App) DeleteOrder(ctx context.Context, customer *models.User, orderID string) error {
	return a.Orders.DeleteOrder(ctx, customer, orderID)
}

func (a *App) ListActiveDiscounts() []*models.Discount {
	return a.Manager.ActiveDiscounts()
}

// ToggleDiscount flips one rule and rewrites the discounts store.
func (a *App) ToggleDiscount(ctx context.Context, name string) (*models.Discount, error) {
	d, err := a.Manager.ToggleDiscount(name)
	if err != nil {
		return nil, err
	}
	if err := a.Store.SaveDiscounts(ctx, a.Manager.Discounts()); err != nil {
		return nil, errs.Wrap(err, "save discounts")
	}
	a.Logger.LogDiscount("TOGGLE", d.Name, fmt.Sprintf("active=%t", d.Active))
	return d, nil
}

func (a *App) SalesReport() map[string]int {
	return a.Manager.SalesReport()
}

// attachHistories rebuilds each customer's purchase history from the orders
// store, keeping saved order.
func attachHistories(loadedUsers []*models.User, loadedOrders []*models.PurchaseOrder) {
	byID := make(map[string]*models.User, len(loadedUsers))
	for _, u := range loadedUsers {
		byID[u.ID] = u
	}
	for _, o := range loadedOrders {
		if u, ok := byID[o.CustomerID]; ok {
			u.AddPurchase(o)
		}
	}
}

func defaultDiscounts() []*models.Discount {
	expired := models.NewDiscount("Expired Offer", 50, "Single Race Pass")
	expired.Deactivate()
	return []*models.Discount{
		models.NewDiscount("Weekend Promo", 10, "Weekend Package"),
		models.NewDiscount("Season Special", 15, "Season Pass"),
		expired,
	}
}
