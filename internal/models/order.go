package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PurchaseOrder is the finalized record of one completed transaction.
// It is never edited in place: corrections delete the old order and
// create a new one.
type PurchaseOrder struct {
	bun.BaseModel `bun:"table:orders"`

	OrderID       string        `bun:"order_id,pk" json:"order_id"`
	CustomerID    string        `bun:"customer_id,notnull" json:"customer_id"`
	Tickets       []Ticket      `bun:"tickets" json:"tickets"`
	TotalPrice    float64       `bun:"total_price,notnull" json:"total_price"`
	PaymentMethod PaymentMethod `bun:"payment_method,notnull" json:"payment_method"`
	PurchasedAt   time.Time     `bun:"purchased_at,notnull" json:"purchased_at"`
	Receipt       []byte        `bun:"receipt" json:"receipt,omitempty"`
	Seq           int64         `bun:"seq,notnull" json:"-"`
}

// NewPurchaseOrder generates the order id and captures the purchase time.
// The total price is the caller's responsibility and is not checked against
// the ticket prices here.
func NewPurchaseOrder(customerID string, tickets []Ticket, totalPrice float64, method PaymentMethod) (*PurchaseOrder, error) {
	if customerID == "" {
		return nil, errors.New("customer id is required")
	}
	if len(tickets) == 0 {
		return nil, errors.New("an order needs at least one ticket")
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return nil, err
	}
	return &PurchaseOrder{
		OrderID:       uuid.NewString(),
		CustomerID:    customerID,
		Tickets:       tickets,
		TotalPrice:    totalPrice,
		PaymentMethod: method,
		PurchasedAt:   time.Now(),
	}, nil
}

func (o *PurchaseOrder) String() string {
	names := make([]string, len(o.Tickets))
	for i, t := range o.Tickets {
		names[i] = t.Name
	}
	return fmt.Sprintf("Order ID: %s | Tickets: %s | Total: AED %g | Payment: %s | Time: %s",
		o.OrderID[:8], strings.Join(names, ", "), o.TotalPrice, o.PaymentMethod,
		o.PurchasedAt.Format("2006-01-02 15:04"))
}
