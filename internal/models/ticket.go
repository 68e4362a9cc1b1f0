package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Ticket describes a purchasable ticket type in the catalog, not an
// individual sold ticket. The catalog key is Name.
type Ticket struct {
	TicketID  string   `json:"ticket_id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Validity  string   `json:"validity"` // e.g. "One Day", "Three Days", "All Season"
	Features  []string `json:"features"`
	GroupSize int      `json:"group_size,omitempty"` // 0 unless a group ticket
}

func NewTicket(name string, price float64, validity string, features []string) Ticket {
	return Ticket{
		TicketID: uuid.NewString(),
		Name:     name,
		Price:    price,
		Validity: validity,
		Features: features,
	}
}

func (t Ticket) String() string {
	return fmt.Sprintf("%s (%s) - AED %g", t.Name, t.Validity, t.Price)
}
