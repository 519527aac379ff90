package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Heybro1122/ShopHub/internal/dashboard"
	"github.com/Heybro1122/ShopHub/pkg/logger"
)

type DashboardHandler struct {
	usecase dashboard.UseCase
	logger  logger.ZapLogger
}

func NewDashboardHandler(usecase dashboard.UseCase, logger logger.ZapLogger) *DashboardHandler {
	return &DashboardHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// Get godoc
// GET /api/admin/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	snapshot, err := h.usecase.ComputeSnapshot(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to compute dashboard snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard data"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
