package model

import "time"

// WishlistEntry is unique per (user, product); a duplicate add is rejected,
// never merged.
type WishlistEntry struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	ProductID string    `db:"product_id" json:"productId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// WishlistItem is an entry joined with its product for listing.
type WishlistItem struct {
	WishlistEntry
	Product *Product `json:"product"`
}
