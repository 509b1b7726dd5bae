// Package models defines the storefront records: catalog products, per-user
// carts, and finalized orders with their immutable item snapshots.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// OrderStatus is the lifecycle state of a finalized order.
type OrderStatus string

const (
	OrderStatusNew      OrderStatus = "new"
	OrderStatusAccepted OrderStatus = "accepted"
	OrderStatusShipped  OrderStatus = "shipped"
	OrderStatusCanceled OrderStatus = "canceled"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusAccepted, OrderStatusShipped, OrderStatusCanceled:
		return true
	}
	return false
}

// PaymentMethod records how the customer intends to pay. The method is
// recorded only; no charge is performed.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// ParsePaymentMethod validates a raw payment method string.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch PaymentMethod(raw) {
	case PaymentCash:
		return PaymentCash, true
	case PaymentCard:
		return PaymentCard, true
	}
	return "", false
}

// StringList is a JSONB-backed ordered list of strings.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l, "StringList")
}

// Product is a catalog record. Products are created by seed or admin
// insertion and never deleted; availability gates listing only.
type Product struct {
	ID             int64         `db:"id" json:"id"`
	Title          LocalizedText `db:"title" json:"title"`
	Description    LocalizedText `db:"description" json:"description"`
	Price          int64         `db:"price" json:"price"`
	Category       string        `db:"category" json:"category"`
	Image          *string       `db:"image" json:"image,omitempty"`
	SpecialOptions StringList    `db:"special_options" json:"specialOptions,omitempty"`
	Available      bool          `db:"available" json:"available"`
	CreatedAt      time.Time     `db:"created_at" json:"-"`
}

// CartItem is one cart line: a product reference with a quantity.
type CartItem struct {
	ProductID int64             `json:"product_id"`
	Qty       int               `json:"qty"`
	Options   map[string]string `json:"options,omitempty"`
}

// CartItems is the JSONB-backed list of cart lines.
type CartItems []CartItem

// Value implements driver.Valuer.
func (items CartItems) Value() (driver.Value, error) {
	if items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(items)
}

// Scan implements sql.Scanner.
func (items *CartItems) Scan(src interface{}) error {
	return scanJSON(src, items, "CartItems")
}

// Cart holds the pending selection of one user. At most one line exists per
// product; Lang is a display hint captured at the last add.
type Cart struct {
	UserID    int64     `db:"user_id"`
	Items     CartItems `db:"items"`
	Lang      string    `db:"lang"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Add merges a product into the cart: an existing line has its quantity
// incremented, otherwise a new line with quantity 1 is appended.
func (c *Cart) Add(productID int64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Qty++
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Qty: 1})
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// OrderItem is a purchased line captured at checkout time. Title and Price
// are copied from the catalog at order creation and never recomputed.
type OrderItem struct {
	ProductID int64             `json:"product_id"`
	Title     string            `json:"title"`
	Price     int64             `json:"price"`
	Qty       int               `json:"qty"`
	Options   map[string]string `json:"options,omitempty"`
}

// OrderItems is the JSONB-backed snapshot of purchased lines.
type OrderItems []OrderItem

// Value implements driver.Valuer.
func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(items)
}

// Scan implements sql.Scanner.
func (items *OrderItems) Scan(src interface{}) error {
	return scanJSON(src, items, "OrderItems")
}

// Total sums unit price times quantity over the snapshot.
func (items OrderItems) Total() int64 {
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Qty)
	}
	return total
}

// Order is immutable once created except for Status.
type Order struct {
	ID            int64         `db:"id"`
	UserID        int64         `db:"user_id"`
	Name          string        `db:"name"`
	Phone         string        `db:"phone"`
	Address       string        `db:"address"`
	Items         OrderItems    `db:"items"`
	Total         int64         `db:"total"`
	PaymentMethod PaymentMethod `db:"payment_method"`
	Status        OrderStatus   `db:"status"`
	Lang          string        `db:"lang"`
	CreatedAt     time.Time     `db:"created_at"`
}
