package dto

import (
	"math"

	"github.com/Heybro1122/ShopHub/internal/model"
)

// TotalPages is the page count shared by both query paths.
func TotalPages(total, limit int) int {
	if limit < 1 {
		limit = 1
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type ListResult struct {
	Products   []model.Product `json:"products"`
	Pagination Pagination      `json:"pagination"`
	Categories []string        `json:"categories"`
}

type SearchResult struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	Pages    int             `json:"pages"`
	HasMore  bool            `json:"hasMore"`
}
