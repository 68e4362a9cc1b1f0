// Package ticketing holds the in-memory catalog, discount and sales state
// for one process run.
package ticketing

import (
	"time"

	"gp-ticketing/internal/errs"
	"gp-ticketing/internal/models"
)

// Manager is the single source of truth for the ticket catalog, the discount
// rules and the per-date sales counter. It is built once at startup and
// accessed sequentially.
type Manager struct {
	tickets   map[string]models.Ticket
	names     []string // catalog names in registration order
	discounts []*models.Discount
	sales     map[string]int // ISO date -> tickets sold
}

func NewManager() *Manager {
	return &Manager{
		tickets: make(map[string]models.Ticket),
		sales:   make(map[string]int),
	}
}

// Register inserts a ticket type by name, silently replacing any previous
// entry. An overwritten name keeps its original catalog position.
func (m *Manager) Register(t models.Ticket) {
	if _, exists := m.tickets[t.Name]; !exists {
		m.names = append(m.names, t.Name)
	}
	m.tickets[t.Name] = t
}

func (m *Manager) CatalogNames() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Lookup returns the catalog entry for a name, or nil when it is unknown.
func (m *Manager) Lookup(name string) *models.Ticket {
	t, ok := m.tickets[name]
	if !ok {
		return nil
	}
	return &t
}

func (m *Manager) AddDiscount(d *models.Discount) {
	m.discounts = append(m.discounts, d)
}

func (m *Manager) Discounts() []*models.Discount {
	out := make([]*models.Discount, len(m.discounts))
	copy(out, m.discounts)
	return out
}

func (m *Manager) ActiveDiscounts() []*models.Discount {
	var active []*models.Discount
	for _, d := range m.discounts {
		if d.Active {
			active = append(active, d)
		}
	}
	return active
}

// DiscountFor returns the first active rule targeting the ticket type name,
// in registration order, or nil when none applies.
func (m *Manager) DiscountFor(ticketTypeName string) *models.Discount {
	for _, d := range m.discounts {
		if d.TicketType == ticketTypeName && d.Active {
			return d
		}
	}
	return nil
}

// FinalPrice resolves the price a customer pays for one ticket: the raw
// catalog price with at most one active discount applied.
func (m *Manager) FinalPrice(t models.Ticket) float64 {
	if d := m.DiscountFor(t.Name); d != nil {
		return d.Apply(t.Price)
	}
	return t.Price
}

// ToggleDiscount flips the active flag of the first rule with the given
// name.
func (m *Manager) ToggleDiscount(name string) (*models.Discount, error) {
	for _, d := range m.discounts {
		if d.Name == name {
			if d.Active {
				d.Deactivate()
			} else {
				d.Activate()
			}
			return d, nil
		}
	}
	return nil, errs.Mark(errs.Newf("discount %q is not registered", name), errs.ErrNotFound)
}

// RecordSale adds quantity to today's counter. Quantity must be positive;
// there is no decrement operation.
func (m *Manager) RecordSale(quantity int) error {
	if quantity < 1 {
		return errs.Validationf("sale quantity must be positive, got %d", quantity)
	}
	today := time.Now().Format("2006-01-02")
	m.sales[today] += quantity
	return nil
}

// SalesReport returns a copy of the date -> sold-count mapping.
func (m *Manager) SalesReport() map[string]int {
	report := make(map[string]int, len(m.sales))
	for day, count := range m.sales {
		report[day] = count
	}
	return report
}

// SetSales replaces the counter wholesale, used to restore persisted state
// at startup.
func (m *Manager) SetSales(sales map[string]int) {
	m.sales = make(map[string]int, len(sales))
	for day, count := range sales {
		m.sales[day] = count
	}
}
