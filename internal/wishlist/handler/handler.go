package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Heybro1122/ShopHub/internal/auth"
	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/Heybro1122/ShopHub/internal/wishlist"
	"github.com/Heybro1122/ShopHub/pkg/logger"
)

type WishlistHandler struct {
	usecase wishlist.UseCase
	logger  logger.ZapLogger
}

func NewWishlistHandler(usecase wishlist.UseCase, logger logger.ZapLogger) *WishlistHandler {
	return &WishlistHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// List godoc
// GET /api/wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	userID := auth.GetUserID(c)

	items, err := h.usecase.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to fetch wishlist", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

// Add godoc
// POST /api/wishlist
func (h *WishlistHandler) Add(c *gin.Context) {
	userID := auth.GetUserID(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	item, err := h.usecase.Add(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, model.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Already in wishlist"})
		default:
			h.logger.Error("failed to add to wishlist", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Delete godoc
// DELETE /api/wishlist?productId=...
// Without a productId the whole wishlist is cleared.
func (h *WishlistHandler) Delete(c *gin.Context) {
	userID := auth.GetUserID(c)

	productID := c.Query("productId")
	if productID == "" {
		if err := h.usecase.Clear(c.Request.Context(), userID); err != nil {
			h.logger.Error("failed to clear wishlist", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist cleared"})
		return
	}

	if err := h.usecase.Remove(c.Request.Context(), userID, productID); err != nil {
		h.logger.Error("failed to remove from wishlist", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
}
