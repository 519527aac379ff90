package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Heybro1122/ShopHub/internal/catalog/dto"
	"github.com/Heybro1122/ShopHub/internal/catalog/repository"
	"github.com/Heybro1122/ShopHub/internal/catalog/usecase"
	"github.com/Heybro1122/ShopHub/pkg/logger"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := usecase.NewProductUseCase(repository.NewMemoryRepository(), nil, nil, logger.NewNop())
	h := NewProductHandler(uc, logger.NewNop())

	r := gin.New()
	r.GET("/api/products", h.List)
	r.GET("/api/products/:id", h.Get)
	r.GET("/api/search", h.Search)
	r.POST("/api/products", h.Create)
	return r
}

func do(t *testing.T, r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var fields map[string]json.RawMessage
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
	}
	return w, fields
}

func TestList(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var result dto.ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Products, 8)
	assert.Equal(t, 8, result.Pagination.Limit, "list limit defaults to 8")
	assert.NotEmpty(t, result.Categories)
}

func TestList_MalformedParamsFallBack(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products?page=banana&limit=-3", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var result dto.ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, 8, result.Pagination.Limit)
}

func TestGet(t *testing.T) {
	r := newTestRouter()

	w, fields := do(t, r, http.MethodGet, "/api/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, fields, "product")
	assert.Contains(t, fields, "relatedProducts")
}

func TestGet_NotFound(t *testing.T) {
	r := newTestRouter()

	w, fields := do(t, r, http.MethodGet, "/api/products/999", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `"Product not found"`, string(fields["error"]))
}

func TestSearch(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=headphones", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var result dto.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Wireless Headphones Pro", result.Products[0].Name)
}

func TestSearch_BlankQueryReturnsNothing(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var result dto.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Products)
}

func TestSearch_PriceCeilingDefault(t *testing.T) {
	r := newTestRouter()

	// The default 0..1000 window covers the whole fixture catalog; narrowing
	// maxPrice trims the expensive items.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=wireless&maxPrice=200", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var result dto.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Total) // only the 159.99 speaker
}

func TestCreate(t *testing.T) {
	r := newTestRouter()

	w, fields := do(t, r, http.MethodPost, "/api/products",
		`{"name":"Reading Lamp","price":24.99,"category":"Home & Living","stock":3}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, fields, "id")
}

func TestCreate_Invalid(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"missing name", `{"price":5}`},
		{"negative price", `{"name":"X","price":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := do(t, r, http.MethodPost, "/api/products", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
