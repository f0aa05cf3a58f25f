package handlers

import (
	"net/http"

	"quiroclinic-backend/internal/auth"
	"quiroclinic-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for dashboard statistics
type DashboardHandler struct {
	service service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats handles GET /api/v1/dashboard
// @Summary Dashboard statistics
// @Description Organization-scoped counts of patients, measures, users and measures created in the last 24 hours
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardStatsResponse "Successfully retrieved statistics"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	stats, err := h.service.Stats(caller)
	if err != nil {
		respondError(c, err, "Failed to get dashboard statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}
