package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups catalog products into the storefront's three sections.
type Category string

const (
	CategoryMens        Category = "mens"
	CategoryWomens      Category = "womens"
	CategoryAccessories Category = "accessories"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMens, CategoryWomens, CategoryAccessories:
		return true
	}
	return false
}

// Product is immutable once added to the catalog; products are never deleted.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Sizes       []string        `json:"sizes"`
	InStock     bool            `json:"in_stock"`
}

func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Clone returns a copy whose Sizes slice shares no memory with the original.
func (p Product) Clone() Product {
	cp := p
	cp.Sizes = append([]string(nil), p.Sizes...)
	return cp
}

// CartLine is one (product, size, quantity) entry. Lines are keyed by the
// (product id, size) pair; adding the same pair again increments Quantity
// instead of appending a duplicate.
type CartLine struct {
	Product  Product `json:"product"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l CartLine) Clone() CartLine {
	cp := l
	cp.Product = l.Product.Clone()
	return cp
}

// CloneLines deep-copies a line slice. Order snapshots rely on this to stay
// independent of later cart and catalog mutations.
func CloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return out
}

// LinesTotal sums price×quantity across lines.
func LinesTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

type ShippingAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// Next returns the status that follows s in the fulfillment sequence, or ""
// when s is terminal.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case StatusPending:
		return StatusConfirmed
	case StatusConfirmed:
		return StatusShipped
	case StatusShipped:
		return StatusDelivered
	}
	return ""
}

// CanTransitionTo reports whether to is the single allowed forward step
// from s. Backward and skipping transitions are rejected; delivered is
// terminal.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	return to != "" && s.Next() == to
}

// GuestUserID owns orders placed without a logged-in identity.
const GuestUserID = "guest"

// Order is created once at checkout and mutated only via status transitions.
// Items is a snapshot of the cart at placement time.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Items           []CartLine      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (o Order) Clone() Order {
	cp := o
	cp.Items = CloneLines(o.Items)
	return cp
}

// User is the authenticated identity for the current session.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}
