package entity

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// OrderItem is a line item snapshot taken at checkout time.
// Stored as JSONB on the order row.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	Base
	UserID      uuid.UUID   `db:"user_id"`
	Items       []OrderItem `db:"items"`
	TotalAmount float64     `db:"total_amount"`
	Status      OrderStatus `db:"status"`
}
