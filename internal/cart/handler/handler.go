package handler

import (
	"errors"
	"net/http"

	"github.com/Heybro1122/ShopHub/internal/cart"
	"github.com/Heybro1122/ShopHub/internal/cart/dto"
	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/Heybro1122/ShopHub/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// defaultSession scopes carts for anonymous visitors that carry no session id.
const defaultSession = "default"

type CartHandler struct {
	uc     cart.UseCase
	logger logger.ZapLogger
}

func NewCartHandler(uc cart.UseCase, log logger.ZapLogger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: log,
	}
}

// Get handles GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	sessionID := c.DefaultQuery("sessionId", defaultSession)

	result, err := h.uc.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to fetch cart", zap.String("session_id", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	if result.Items == nil {
		result.Items = []model.CartLine{}
	}
	c.JSON(http.StatusOK, result)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	SessionID string `json:"sessionId"`
}

// Add handles POST /api/cart
func (h *CartHandler) Add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.SessionID == "" {
		req.SessionID = defaultSession
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	count, err := h.uc.Add(c.Request.Context(), &dto.AddItemInput{
		SessionID: req.SessionID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.logger.Error("failed to add cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Item added to cart",
		"cartCount": count,
	})
}

type updateItemRequest struct {
	CartItemID string `json:"cartItemId"`
	Quantity   int    `json:"quantity"`
	SessionID  string `json:"sessionId"`
}

// Update handles PUT /api/cart
func (h *CartHandler) Update(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.SessionID == "" {
		req.SessionID = defaultSession
	}

	err := h.uc.SetQuantity(c.Request.Context(), req.SessionID, req.CartItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		h.logger.Error("failed to update cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully"})
}

// Delete handles DELETE /api/cart. Without a cartItemId the whole session cart
// is cleared.
func (h *CartHandler) Delete(c *gin.Context) {
	sessionID := c.DefaultQuery("sessionId", defaultSession)
	lineID := c.Query("cartItemId")

	var err error
	if lineID != "" {
		err = h.uc.Remove(c.Request.Context(), sessionID, lineID)
	} else {
		err = h.uc.Clear(c.Request.Context(), sessionID)
	}
	if err != nil {
		h.logger.Error("failed to remove cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}
