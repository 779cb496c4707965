package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postboard/postboard-backend/types"
)

type HealthHandler struct {
	healthService HealthServiceInterface
}

func NewHealthHandler(healthService HealthServiceInterface) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// LivenessCheck godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} types.HealthComponent
// @Router /health/liveness [get]
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthComponent{Status: types.HealthStatusUp})
}

// ReadinessCheck godoc
// @Summary Readiness probe
// @Description Ready when the database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} types.HealthComponent
// @Failure 503 {object} types.HealthComponent
// @Router /health/readiness [get]
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	db := h.healthService.CheckDatabase(c.Request.Context())
	if db.Status == types.HealthStatusDown {
		c.JSON(http.StatusServiceUnavailable, db)
		return
	}
	c.JSON(http.StatusOK, db)
}

// DetailedHealth godoc
// @Summary Health of every dependency
// @Tags health
// @Produce json
// @Success 200 {object} types.HealthCheck
// @Failure 503 {object} types.HealthCheck
// @Router /health [get]
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	health := h.healthService.CheckHealth(c.Request.Context())
	if health.Status == types.HealthStatusDown {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}
