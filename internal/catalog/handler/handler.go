package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Heybro1122/ShopHub/internal/catalog"
	"github.com/Heybro1122/ShopHub/internal/catalog/dto"
	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/Heybro1122/ShopHub/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Documented fail-closed defaults for numeric query parameters.
const (
	defaultListLimit   = 8
	defaultSearchLimit = 12
	defaultMinPrice    = 0
	defaultMaxPrice    = 1000
)

type ProductHandler struct {
	uc     catalog.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc catalog.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

// List handles GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	filters := &dto.ListFilters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
		Page:     parseIntDefault(c.Query("page"), 1),
		Limit:    parseIntDefault(c.Query("limit"), defaultListLimit),
	}

	result, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get handles GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, related, err := h.uc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.logger.Error("failed to get product", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	if related == nil {
		related = []model.Product{}
	}
	c.JSON(http.StatusOK, gin.H{
		"product":         product,
		"relatedProducts": related,
	})
}

// Search handles GET /api/search
func (h *ProductHandler) Search(c *gin.Context) {
	filters := &dto.SearchFilters{
		Query:      c.Query("q"),
		Categories: splitCSV(c.Query("category")),
		MinPrice:   parseFloatDefault(c.Query("minPrice"), defaultMinPrice),
		MaxPrice:   parseFloatDefault(c.Query("maxPrice"), defaultMaxPrice),
		MinRating:  parseFloatDefault(c.Query("rating"), 0),
		InStock:    c.Query("inStock") == "true",
		SortBy:     c.DefaultQuery("sortBy", dto.SortRelevance),
		Page:       parseIntDefault(c.Query("page"), 1),
		Limit:      parseIntDefault(c.Query("limit"), defaultSearchLimit),
	}

	result, err := h.uc.SearchProducts(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Create handles POST /api/products (admin only)
func (h *ProductHandler) Create(c *gin.Context) {
	var input dto.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, model.ErrInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Malformed numeric parameters fall back to their defaults instead of turning
// into a 400; negative or zero values are treated the same way.
func parseIntDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func parseFloatDefault(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
