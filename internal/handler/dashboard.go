package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketdash/internal/feed"
	"marketdash/internal/view"
)

// DashboardHandler serves the server-rendered view state: everything the
// landing page needs in one payload, derived from the poller snapshots.
type DashboardHandler struct {
	View *view.Builder
}

func (h *DashboardHandler) Register(r *gin.Engine) {
	group := r.Group("/api/dashboard")
	group.GET("", h.dashboard)
	group.GET("/strategies", h.strategies)
	group.POST("/tab/:tab", h.setTab)
}

// @Summary Full dashboard view state
// @Tags dashboard
// @Success 200 {object} view.DashboardView
// @Router /api/dashboard [get]
func (h *DashboardHandler) dashboard(c *gin.Context) {
	Ok(c, h.View.Dashboard(), nil)
}

// @Summary Full ranked strategy listing
// @Tags dashboard
// @Success 200 {object} rank.BoardView
// @Router /api/dashboard/strategies [get]
func (h *DashboardHandler) strategies(c *gin.Context) {
	Ok(c, h.View.StrategiesPage(), nil)
}

// @Summary Switch the active events tab
// @Tags dashboard
// @Param tab path string true "new_market or price_jump"
// @Success 200 {object} feed.PanelView
// @Router /api/dashboard/tab/{tab} [post]
func (h *DashboardHandler) setTab(c *gin.Context) {
	tab := feed.Tab(c.Param("tab"))
	switch tab {
	case feed.TabNewMarkets, feed.TabPriceJumps:
	default:
		Error(c, http.StatusBadRequest, "unknown tab", nil)
		return
	}
	// Tab selection is pure view state; no fetch happens here and both
	// feeds keep polling regardless.
	h.View.Feeds.SetActiveTab(tab)
	Ok(c, h.View.Feeds.View(), nil)
}
