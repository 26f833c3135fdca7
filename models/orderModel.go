package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderPaid      = "paid"
)

var OrderStatuses = []string{OrderPending, OrderPreparing, OrderReady, OrderServed, OrderPaid}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Order struct {
	ID             primitive.ObjectID `bson:"_id" json:"-"`
	Order_id       string             `json:"id"`
	Table_id       string             `json:"table_id"`
	Items          []OrderLine        `json:"items"`
	Total_amount   float64            `json:"total_amount"` // Sum of line price * quantity
	Status         string             `json:"status"`
	Tax_rate       float64            `json:"tax_rate"` // Percent, set when paid
	Tax_amount     float64            `json:"tax_amount"`
	Final_total    float64            `json:"final_total"`
	Payment_method string             `json:"payment_method"`
	Created_at     time.Time          `json:"created_at"`
	Updated_at     time.Time          `json:"updated_at"`
}

func (o Order) IsPaid() bool {
	return o.Status == OrderPaid
}

// OrderLine snapshots the menu item name and unit price at order time.
type OrderLine struct {
	Menu_item_id   string  `json:"menu_item_id"`
	Menu_item_name string  `json:"menu_item_name"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
}

// Valid reports whether the line can be carried into a cart or an order
// request. Lines with a missing id or name, a non-positive price, or a
// non-positive quantity, are dropped wherever lines cross a boundary. Menu
// items failing it are refused when added to a cart, so a submitted cart
// never loses entries silently.
func (l OrderLine) Valid() bool {
	return l.Menu_item_id != "" && l.Menu_item_name != "" && l.Price > 0 && l.Quantity > 0
}

type OrderItemRequest struct {
	Menu_item_id string `json:"menu_item_id"`
	Quantity     int    `json:"quantity"`
}

// OrderRequest is the body of POST /orders and PUT /orders/:id. Prices are
// never sent; the backend snapshots them from the menu.
type OrderRequest struct {
	Table_id string             `json:"table_id" validate:"required"`
	Items    []OrderItemRequest `json:"items" validate:"required,min=1"`
}

type OrderCreated struct {
	Order_id     string  `json:"order_id"`
	Total_amount float64 `json:"total_amount"`
}

// StatusUpdate is the body of PUT /orders/:id/status. The payment fields
// are only meaningful on the transition to paid.
type StatusUpdate struct {
	Status         string   `json:"status" validate:"required,oneof=pending preparing ready served paid"`
	Tax_rate       *float64 `json:"tax_rate,omitempty" validate:"omitempty,gte=0"`
	Tax_amount     *float64 `json:"tax_amount,omitempty" validate:"omitempty,gte=0"`
	Final_total    *float64 `json:"final_total,omitempty" validate:"omitempty,gte=0"`
	Payment_method *string  `json:"payment_method,omitempty"`
}
