package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketdash/internal/classify"
	"marketdash/internal/client/dataplane"
	"marketdash/internal/feed"
	"marketdash/internal/models"
	"marketdash/internal/rank"
)

type noopFetcher struct{}

func (noopFetcher) MarketEvents(context.Context, dataplane.EventsQuery) ([]models.MarketEvent, error) {
	return nil, nil
}

func testClock() func() time.Time {
	fixed := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return fixed }
}

func newTestBuilder() *Builder {
	clock := testClock()
	feeds := feed.NewController(noopFetcher{}, nil, 20, clock)
	return NewBuilder(classify.DefaultLagPolicy(), feeds, &rank.Board{}, clock)
}

func TestHeroHardErrorOnlyWithoutStats(t *testing.T) {
	b := newTestBuilder()

	b.ApplyStatsError(errors.New("upstream unreachable"))
	v := b.Dashboard()
	if v.Hero.Error == "" {
		t.Fatalf("expected hero error while stats never loaded")
	}
	if v.Stats != nil {
		t.Fatalf("stats grid rendered without data")
	}

	b.ApplyStats(&models.StatsResponse{Events24h: 1234, ActiveMarkets: 10})
	b.ApplyStatsError(errors.New("transient"))
	v = b.Dashboard()
	if v.Hero.Error != "" {
		t.Fatalf("hero error shown despite cached stats: %q", v.Hero.Error)
	}
	if v.Hero.EventsProcessed != 1234 {
		t.Fatalf("events processed = %d", v.Hero.EventsProcessed)
	}
	if v.Stats == nil || !v.Stats.Stale {
		t.Fatalf("cached stats should render with stale flag: %+v", v.Stats)
	}
}

func TestLagBadgesSentinelWithoutSnapshot(t *testing.T) {
	b := newTestBuilder()
	b.ApplyStats(&models.StatsResponse{})

	v := b.Dashboard()
	if v.Stats.Lag.Quotes.Label != classify.NoLagData {
		t.Fatalf("quotes badge = %+v, want sentinel", v.Stats.Lag.Quotes)
	}
	if v.Stats.LagSnapshotAt != nil {
		t.Fatalf("lag timestamp should be absent without a snapshot")
	}
}

func TestLagBadgesFromSnapshot(t *testing.T) {
	b := newTestBuilder()
	b.ApplyStats(&models.StatsResponse{})
	q, tr := 3.2, 45.0
	b.ApplyStreamLag(&models.StreamLagSnapshot{
		QuotesLagSec: &q,
		TradesLagSec: &tr,
		GeneratedAt:  time.Date(2026, 2, 3, 11, 59, 0, 0, time.UTC),
	})

	v := b.Dashboard()
	if v.Stats.Lag.Quotes.Label != "3.20s" || v.Stats.Lag.Quotes.Level != classify.LevelOK {
		t.Fatalf("quotes badge = %+v", v.Stats.Lag.Quotes)
	}
	if v.Stats.Lag.Trades.Level != classify.LevelWarn {
		t.Fatalf("trades badge = %+v", v.Stats.Lag.Trades)
	}
	if v.Stats.Lag.Features.Label != classify.NoLagData {
		t.Fatalf("features badge = %+v, want sentinel for absent stream", v.Stats.Lag.Features)
	}
	if v.Stats.LagSnapshotAt == nil {
		t.Fatalf("lag snapshot timestamp missing")
	}
}

func TestReadyAfterAnySource(t *testing.T) {
	b := newTestBuilder()
	if b.Ready() {
		t.Fatalf("builder ready before any poll")
	}
	b.ApplyStreamLag(&models.StreamLagSnapshot{})
	if !b.Ready() {
		t.Fatalf("builder not ready after a successful poll")
	}
}
