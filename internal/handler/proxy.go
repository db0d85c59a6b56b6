package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketdash/internal/client/dataplane"
	"marketdash/internal/metrics"
)

// ProxyHandler forwards dashboard read endpoints to the data-plane API.
// The credential is injected as a header on the upstream hop; callers of
// this gateway never see or supply it. Responses are never cached: every
// call reaches the upstream live.
type ProxyHandler struct {
	Client  *dataplane.Client
	Logger  *zap.Logger
	Metrics *metrics.Recorder
}

func (h *ProxyHandler) Register(r *gin.Engine) {
	r.GET("/api/market-events", h.marketEvents)
	r.GET("/api/stream-lag", h.streamLag)
	r.GET("/api/stats", h.stats)
	r.GET("/api/strategies", h.strategies)
}

// @Summary Live market-event feed
// @Tags proxy
// @Param type query string false "event type filter"
// @Param limit query int false "page size (default 20)"
// @Param hours query int false "time window in hours, 0 = unbounded (default 0)"
// @Param min_ret query number false "minimum absolute return"
// @Success 200 {array} models.MarketEvent
// @Router /api/market-events [get]
func (h *ProxyHandler) marketEvents(c *gin.Context) {
	// Caller-supplied parameters forward verbatim; defaults apply only
	// to what the caller omitted.
	query := url.Values(c.Request.URL.Query())
	if query.Get("hours") == "" {
		query.Set("hours", "0")
	}
	if query.Get("limit") == "" {
		query.Set("limit", "20")
	}
	h.forward(c, "market events", "/api/market-events", query)
}

// @Summary Stream lag snapshot
// @Tags proxy
// @Success 200 {object} models.StreamLagSnapshot
// @Router /api/stream-lag [get]
func (h *ProxyHandler) streamLag(c *gin.Context) {
	h.forward(c, "stream lag", "/api/stream-lag", nil)
}

// @Summary Aggregate pipeline stats
// @Tags proxy
// @Success 200 {object} models.StatsResponse
// @Router /api/stats [get]
func (h *ProxyHandler) stats(c *gin.Context) {
	h.forward(c, "stats", "/api/stats", nil)
}

// @Summary Per-strategy paper-trading summaries
// @Tags proxy
// @Success 200 {array} models.StrategySummary
// @Router /api/strategies [get]
func (h *ProxyHandler) strategies(c *gin.Context) {
	h.forward(c, "strategies", "/api/strategies", nil)
}

func (h *ProxyHandler) forward(c *gin.Context, name, path string, query url.Values) {
	c.Header("Cache-Control", "no-store")

	status, body, err := h.Client.Forward(c.Request.Context(), path, query)
	if err != nil {
		h.fail(c, name, err)
		return
	}

	if status < 200 || status > 299 {
		// Upstream HTTP errors pass through with their original status
		// and body. No retry; the next poll tick is the retry.
		if h.Metrics != nil {
			h.Metrics.RecordProxyRequest(path, status)
		}
		c.JSON(status, gin.H{
			"error": fmt.Sprintf("API error: %s", http.StatusText(status)),
			"body":  string(body),
		})
		return
	}

	if !json.Valid(body) {
		h.fail(c, name, fmt.Errorf("invalid JSON from upstream"))
		return
	}

	if h.Metrics != nil {
		h.Metrics.RecordProxyRequest(path, http.StatusOK)
	}
	c.Data(http.StatusOK, "application/json", body)
}

// fail normalizes transport and parse failures to a fixed 500 envelope;
// the raw error never escapes as a bare response.
func (h *ProxyHandler) fail(c *gin.Context, name string, err error) {
	if h.Logger != nil {
		h.Logger.Warn("proxy fetch failed",
			zap.String("endpoint", name),
			zap.Error(err),
		)
	}
	if h.Metrics != nil {
		h.Metrics.RecordProxyRequest(c.FullPath(), http.StatusInternalServerError)
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   fmt.Sprintf("Failed to fetch %s", name),
		"details": err.Error(),
	})
}
