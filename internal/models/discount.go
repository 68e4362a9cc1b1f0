package models

import (
	"fmt"
	"math"

	"github.com/uptrace/bun"
)

// Discount is a named percentage reduction bound to one catalog entry name,
// toggled by admins. The percentage is not clamped at construction; Apply
// floors the result at zero so the final price is never negative.
type Discount struct {
	bun.BaseModel `bun:"table:discounts"`

	Name       string  `bun:"name,notnull" json:"name"`
	Percentage float64 `bun:"percentage,notnull" json:"percentage"`
	TicketType string  `bun:"ticket_type,notnull" json:"ticket_type"`
	Active     bool    `bun:"active,notnull" json:"active"`
	Seq        int64   `bun:"seq,pk" json:"-"`
}

func NewDiscount(name string, percentage float64, ticketType string) *Discount {
	return &Discount{
		Name:       name,
		Percentage: percentage,
		TicketType: ticketType,
		Active:     true,
	}
}

// Apply returns the discounted price rounded to cents, or basePrice
// unchanged when the discount is inactive.
func (d *Discount) Apply(basePrice float64) float64 {
	if !d.Active {
		return basePrice
	}
	price := RoundCents(basePrice * (1 - d.Percentage/100))
	if price < 0 {
		return 0
	}
	return price
}

func (d *Discount) Activate()   { d.Active = true }
func (d *Discount) Deactivate() { d.Active = false }

func (d *Discount) String() string {
	status := "Active"
	if !d.Active {
		status = "Inactive"
	}
	return fmt.Sprintf("%s (%g%% off for %s) - %s", d.Name, d.Percentage, d.TicketType, status)
}

// RoundCents rounds half away from zero to 2 decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
