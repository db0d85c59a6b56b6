package handler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nhooyr.io/websocket"

	"marketdash/internal/metrics"
	"marketdash/internal/view"
)

// LiveHandler pushes the dashboard view over a websocket once per tick.
// The tick is what keeps "time ago" labels advancing between polls; the
// payload itself only changes when a poller lands new data.
type LiveHandler struct {
	View     *view.Builder
	Logger   *zap.Logger
	Metrics  *metrics.Recorder
	Interval time.Duration
}

func (h *LiveHandler) Register(r *gin.Engine) {
	r.GET("/api/live", h.stream)
}

// @Summary Live dashboard stream
// @Tags dashboard
// @Success 101 {string} string "websocket upgrade"
// @Router /api/live [get]
func (h *LiveHandler) stream(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("websocket accept failed", zap.Error(err))
		}
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if h.Metrics != nil {
		defer h.Metrics.LiveClientConnected()()
	}

	interval := h.Interval
	if interval <= 0 {
		interval = time.Second
	}

	ctx := c.Request.Context()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := h.push(ctx, conn); err != nil {
			if !errors.Is(err, context.Canceled) && h.Logger != nil {
				h.Logger.Debug("live client gone", zap.Error(err))
			}
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (h *LiveHandler) push(ctx context.Context, conn *websocket.Conn) error {
	payload, err := json.Marshal(h.View.Dashboard())
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, payload)
}
