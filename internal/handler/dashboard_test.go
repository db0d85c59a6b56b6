package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"marketdash/internal/classify"
	"marketdash/internal/client/dataplane"
	"marketdash/internal/feed"
	"marketdash/internal/models"
	"marketdash/internal/rank"
	"marketdash/internal/view"
)

type staticFetcher struct{}

func (staticFetcher) MarketEvents(context.Context, dataplane.EventsQuery) ([]models.MarketEvent, error) {
	return nil, nil
}

func newDashboardRig() (*view.Builder, *gin.Engine) {
	clock := func() time.Time { return time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC) }
	feeds := feed.NewController(staticFetcher{}, nil, 20, clock)
	builder := view.NewBuilder(classify.DefaultLagPolicy(), feeds, &rank.Board{}, clock)

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	(&DashboardHandler{View: builder}).Register(engine)
	(&HealthHandler{View: builder}).Register(engine)
	return builder, engine
}

func TestDashboardEnvelope(t *testing.T) {
	builder, engine := newDashboardRig()
	builder.ApplyStats(&models.StatsResponse{Events24h: 42})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Code    int                `json:"code"`
		Message string             `json:"message"`
		Data    view.DashboardView `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != 0 || resp.Message != "ok" {
		t.Fatalf("envelope = %d/%q", resp.Code, resp.Message)
	}
	if resp.Data.Hero.EventsProcessed != 42 {
		t.Fatalf("hero events = %d", resp.Data.Hero.EventsProcessed)
	}
}

func TestSetTabRejectsUnknown(t *testing.T) {
	_, engine := newDashboardRig()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/dashboard/tab/bogus", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/dashboard/tab/price_jump", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestReadinessFlips(t *testing.T) {
	builder, engine := newDashboardRig()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz before data = %d, want 503", w.Code)
	}

	builder.ApplyStreamLag(&models.StreamLagSnapshot{GeneratedAt: time.Now().UTC()})
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz after data = %d, want 200", w.Code)
	}
}
