package dto

// Sort keys accepted by both the listing and the search paths.
const (
	SortPriceLow    = "price-low"
	SortPriceHigh   = "price-high"
	SortRating      = "rating"
	SortName        = "name"
	SortNewest      = "newest"
	SortBestselling = "bestselling"
	SortRelevance   = "relevance"
)

// ListFilters drives the catalog listing path: an empty Search matches
// everything, Category is a case-insensitive exact match ("" and "all" mean no
// filter).
type ListFilters struct {
	Category string
	Search   string
	Sort     string
	Page     int
	Limit    int
}

// SearchFilters drives the search path: active products only, text match on
// name/description substring or exact tag, category set membership, inclusive
// price range, minimum rating, optional in-stock filter.
type SearchFilters struct {
	Query      string
	Categories []string
	MinPrice   float64
	MaxPrice   float64
	MinRating  float64
	InStock    bool
	SortBy     string
	Page       int
	Limit      int
}

type CreateProductInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Badge         string   `json:"badge"`
	Category      string   `json:"category"`
	ImageURL      string   `json:"image"`
	Stock         int      `json:"stock"`
	Features      []string `json:"features"`
	Tags          []string `json:"tags"`
}
