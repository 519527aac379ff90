package model

import "time"

// CartLine is one (session, product) entry. Name, price and image are
// snapshotted at add time; later catalog changes do not touch existing lines.
type CartLine struct {
	ID        string    `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"sessionId"`
	ProductID string    `db:"product_id" json:"productId"`
	Quantity  int       `db:"quantity" json:"quantity"`
	Name      string    `db:"name" json:"name"`
	Price     float64   `db:"price" json:"price"`
	ImageURL  string    `db:"image_url" json:"image"`
	CreatedAt time.Time `db:"created_at" json:"addedAt"`
}

type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}
