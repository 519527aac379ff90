package model

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID        string      `db:"id" json:"id"`
	UserID    string      `db:"user_id" json:"userId"`
	Total     float64     `db:"total" json:"total"`
	Status    OrderStatus `db:"status" json:"status"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
}

// RecentOrder is an order annotated with the resolved customer display name,
// as shown on the admin dashboard.
type RecentOrder struct {
	ID       string      `db:"id" json:"id"`
	Customer string      `db:"customer" json:"customer"`
	Total    float64     `db:"total" json:"total"`
	Status   OrderStatus `db:"status" json:"status"`
	Date     string      `db:"-" json:"date"`
}
