package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketdash/internal/view"
)

// HealthHandler: liveness is unconditional; readiness means at least one
// upstream source has delivered data since boot. There is no database to
// ping in this layer.
type HealthHandler struct {
	View *view.Builder
}

func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", h.health)
	r.GET("/readyz", h.ready)
}

// @Summary Health check
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Readiness check
// @Tags health
// @Success 200 {object} map[string]string
// @Router /readyz [get]
func (h *HealthHandler) ready(c *gin.Context) {
	if h.View == nil || !h.View.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "no_upstream_data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
