// Package orders runs the purchase workflow: price resolution, order
// construction, history upkeep and persistence.
package orders

import (
	"context"
	"fmt"

	"gp-ticketing/internal/errs"
	"gp-ticketing/internal/logger"
	"gp-ticketing/internal/models"
)

// Catalog is the slice of the ticket manager this service needs.
type Catalog interface {
	Lookup(name string) *models.Ticket
	FinalPrice(t models.Ticket) float64
	RecordSale(quantity int) error
	SalesReport() map[string]int
}

// Persistence is the slice of the store this service needs.
type Persistence interface {
	SaveOrders(ctx context.Context, orders []*models.PurchaseOrder) error
	SaveSales(ctx context.Context, sales map[string]int) error
}

// Accounts exposes the loaded users so the full orders collection can be
// rebuilt from every customer's history on save.
type Accounts interface {
	Users() []*models.User
	Persist(ctx context.Context) error
}

// Receipts renders the QR attached to each confirmed order.
type Receipts interface {
	GenerateReceipt(order *models.PurchaseOrder) ([]byte, error)
}

type Service struct {
	catalog  Catalog
	store    Persistence
	accounts Accounts
	receipts Receipts
	logger   *logger.Logger
}

func NewService(catalog Catalog, store Persistence, accounts Accounts, receipts Receipts, log *logger.Logger) *Service {
	return &Service{
		catalog:  catalog,
		store:    store,
		accounts: accounts,
		receipts: receipts,
		logger:   log,
	}
}

// ConfirmPurchase resolves the selected catalog entries, sums their final
// (discount-applied) prices, and appends the finished order to the
// customer's history. The sales counter grows by the number of admitted
// people, so a group ticket counts its whole group.
func (s *Service) ConfirmPurchase(ctx context.Context, customer *models.User, ticketNames []string, method string) (*models.PurchaseOrder, error) {
	if customer == nil || customer.Role != models.RoleCustomer {
		return nil, errs.Validation("only customers can purchase tickets")
	}
	if len(ticketNames) == 0 {
		return nil, errs.Validation("no tickets selected")
	}
	paymentMethod, err := models.ParsePaymentMethod(method)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var tickets []models.Ticket
	var total float64
	for _, name := range ticketNames {
		t := s.catalog.Lookup(name)
		if t == nil {
			return nil, errs.Validationf("invalid ticket selected: %q", name)
		}
		tickets = append(tickets, *t)
		total += s.catalog.FinalPrice(*t)
	}
	total = models.RoundCents(total)

	order, err := models.NewPurchaseOrder(customer.ID, tickets, total, paymentMethod)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if s.receipts != nil {
		receipt, err := s.receipts.GenerateReceipt(order)
		if err != nil {
			return nil, errs.Wrap(err, "generate receipt")
		}
		order.Receipt = receipt
	}

	customer.AddPurchase(order)
	if err := s.catalog.RecordSale(admitted(tickets)); err != nil {
		return nil, err
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.logger.LogOrder("CONFIRM", order.OrderID, fmt.Sprintf("%d ticket(s), AED %g, %s", len(tickets), total, paymentMethod))
	return order, nil
}

// ListHistory returns the customer's orders in insertion order.
func (s *Service) ListHistory(customer *models.User) []*models.PurchaseOrder {
	if customer == nil {
		return nil
	}
	return customer.PurchaseHistory()
}

// DeleteOrder removes the order from the history and rewrites the stores.
// Deleting an unknown id leaves the history unchanged.
func (s *Service) DeleteOrder(ctx context.Context, customer *models.User, orderID string) error {
	if customer == nil {
		return errs.Validation("no customer given")
	}
	customer.DeletePurchase(orderID)
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.logger.LogOrder("DELETE", orderID, "removed from history")
	return nil
}

// EditOrder models a correction as delete-old/create-new: the replacement
// keeps the tickets and total but gets a fresh id and timestamp.
func (s *Service) EditOrder(ctx context.Context, customer *models.User, orderID, newMethod string) (*models.PurchaseOrder, error) {
	if customer == nil {
		return nil, errs.Validation("no customer given")
	}
	paymentMethod, err := models.ParsePaymentMethod(newMethod)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var old *models.PurchaseOrder
	for _, o := range customer.PurchaseHistory() {
		if o.OrderID == orderID {
			old = o
			break
		}
	}
	if old == nil {
		return nil, errs.Mark(errs.Newf("order %s", orderID), errs.ErrNotFound)
	}

	replacement, err := models.NewPurchaseOrder(customer.ID, old.Tickets, old.TotalPrice, paymentMethod)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if s.receipts != nil {
		receipt, err := s.receipts.GenerateReceipt(replacement)
		if err != nil {
			return nil, errs.Wrap(err, "generate receipt")
		}
		replacement.Receipt = receipt
	}

	customer.DeletePurchase(orderID)
	customer.AddPurchase(replacement)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.logger.LogOrder("EDIT", orderID, "replaced by "+replacement.OrderID)
	return replacement, nil
}

// persist rewrites users, orders and sales wholesale, mirroring the
// save-after-every-mutation model. In-memory state is kept even when a
// write fails; the caller surfaces the error.
func (s *Service) persist(ctx context.Context) error {
	var all []*models.PurchaseOrder
	for _, u := range s.accounts.Users() {
		all = append(all, u.PurchaseHistory()...)
	}
	if err := s.store.SaveOrders(ctx, all); err != nil {
		s.logger.Error("ORDER", "failed to save orders: "+err.Error())
		return errs.Wrap(err, "save orders")
	}
	if err := s.store.SaveSales(ctx, s.catalog.SalesReport()); err != nil {
		s.logger.Error("ORDER", "failed to save sales: "+err.Error())
		return errs.Wrap(err, "save sales")
	}
	if err := s.accounts.Persist(ctx); err != nil {
		s.logger.Error("ORDER", "failed to save users: "+err.Error())
		return errs.Wrap(err, "save users")
	}
	return nil
}

// admitted counts people rather than line items: a group ticket admits its
// whole group.
func admitted(tickets []models.Ticket) int {
	n := 0
	for _, t := range tickets {
		if t.GroupSize > 1 {
			n += t.GroupSize
		} else {
			n++
		}
	}
	return n
}
