package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
	ProductDraft    ProductStatus = "draft"
)

// Categories is the fixed storefront category set, in display order.
var Categories = []string{"Electronics", "Fashion", "Home & Living", "Sports", "Books", "Toys"}

// StringList is stored as JSONB in Postgres.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

type Product struct {
	BaseModel
	Name          string        `db:"name" json:"name"`
	Description   string        `db:"description" json:"description"`
	Price         float64       `db:"price" json:"price"`
	OriginalPrice *float64      `db:"original_price" json:"originalPrice,omitempty"`
	Rating        float64       `db:"rating" json:"rating"`
	ReviewsCount  int           `db:"reviews_count" json:"reviews"`
	Badge         *string       `db:"badge" json:"badge,omitempty"`
	Category      string        `db:"category" json:"category"`
	ImageURL      string        `db:"image_url" json:"image"`
	Stock         int           `db:"stock" json:"stock"`
	SalesCount    int           `db:"sales_count" json:"salesCount"`
	Features      StringList    `db:"features" json:"features"`
	Tags          StringList    `db:"tags" json:"tags,omitempty"`
	Status        ProductStatus `db:"status" json:"status"`
}

// Validate enforces the catalog invariants on create/update.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrInvalid)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock must be >= 0", ErrInvalid)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalid)
	}
	return nil
}
