package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is a customer or an admin, distinguished by the Role tag. Customers
// carry a purchase history in insertion order; admins carry a short display
// id derived once from the user id. Passwords are stored and compared in
// plain text.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID        string    `bun:"id,pk" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email,notnull" json:"email"`
	Password  string    `bun:"password,notnull" json:"-"`
	Role      Role      `bun:"role,notnull" json:"role"`
	AdminID   string    `bun:"admin_id" json:"admin_id,omitempty"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	Seq       int64     `bun:"seq,notnull" json:"-"`

	// Rebuilt from the orders store on load; customers only.
	Purchases []*PurchaseOrder `bun:"-" json:"-"`
}

func NewCustomer(name, email, password string) *User {
	return &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      RoleCustomer,
		CreatedAt: time.Now(),
	}
}

func NewAdmin(name, email, password string) *User {
	id := uuid.NewString()
	return &User{
		ID:        id,
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      RoleAdmin,
		AdminID:   "ADM-" + id[:8],
		CreatedAt: time.Now(),
	}
}

func (u *User) CheckPassword(input string) bool {
	return u.Password == input
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// AddPurchase appends to the history. Duplicate order ids are not checked.
func (u *User) AddPurchase(order *PurchaseOrder) {
	u.Purchases = append(u.Purchases, order)
}

// DeletePurchase removes every order with the given id and is a no-op when
// none match.
func (u *User) DeletePurchase(orderID string) {
	kept := u.Purchases[:0]
	for _, p := range u.Purchases {
		if p.OrderID != orderID {
			kept = append(kept, p)
		}
	}
	u.Purchases = kept
}

func (u *User) PurchaseHistory() []*PurchaseOrder {
	return u.Purchases
}

func (u *User) String() string {
	if u.Role == RoleAdmin {
		return fmt.Sprintf("Admin: %s (%s)", u.Name, u.Email)
	}
	return fmt.Sprintf("%s (%s)", u.Name, u.Email)
}
