package dto

import "github.com/Heybro1122/ShopHub/internal/model"

type AddItemInput struct {
	SessionID string
	ProductID string
	Quantity  int
}

type Cart struct {
	Items   []model.CartLine  `json:"items"`
	Summary model.CartSummary `json:"summary"`
	Count   int               `json:"count"`
}
