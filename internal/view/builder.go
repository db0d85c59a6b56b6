package view

import (
	"time"

	"marketdash/internal/classify"
	"marketdash/internal/feed"
	"marketdash/internal/models"
	"marketdash/internal/rank"
)

// Builder composes the full dashboard render state from the per-endpoint
// snapshots. Each source is refreshed by its own poller and may be
// inconsistent with the others at any instant; the builder just reads
// whatever each holder has right now.
type Builder struct {
	LagPolicy classify.LagPolicy
	Feeds     *feed.Controller
	Board     *rank.Board

	now   func() time.Time
	stats latest[models.StatsResponse]
	lag   latest[models.StreamLagSnapshot]
}

func NewBuilder(lagPolicy classify.LagPolicy, feeds *feed.Controller, board *rank.Board, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{
		LagPolicy: lagPolicy,
		Feeds:     feeds,
		Board:     board,
		now:       now,
	}
}

// ApplyStats installs a fresh stats snapshot.
func (b *Builder) ApplyStats(s *models.StatsResponse) {
	b.stats.setOK(s, b.now())
}

// ApplyStatsError records a failed stats poll.
func (b *Builder) ApplyStatsError(err error) {
	b.stats.setErr(err)
}

// ApplyStreamLag installs a fresh lag snapshot.
func (b *Builder) ApplyStreamLag(s *models.StreamLagSnapshot) {
	b.lag.setOK(s, b.now())
}

// ApplyStreamLagError records a failed lag poll.
func (b *Builder) ApplyStreamLagError(err error) {
	b.lag.setErr(err)
}

// Ready reports whether any source has delivered data at least once.
func (b *Builder) Ready() bool {
	return b.stats.hasValue() || b.lag.hasValue() || b.Feeds.Loaded() || b.Board.Loaded()
}

// HeroView is the headline: events processed in the last 24h, and a hard
// error flag that only shows while stats have never loaded.
type HeroView struct {
	EventsProcessed int64  `json:"events_processed"`
	Error           string `json:"error,omitempty"`
}

// LagBadges are the three per-stream lag readings.
type LagBadges struct {
	Quotes   classify.Band `json:"quotes"`
	Trades   classify.Band `json:"trades"`
	Features classify.Band `json:"features"`
}

// StatsGridView is the stats section. Nil lag timestamps mean the lag
// snapshot has not loaded yet; the badges then show the no-data sentinel.
type StatsGridView struct {
	ActiveMarkets      int64     `json:"active_markets"`
	Events24h          int64     `json:"events_24h"`
	StrategiesCount    int64     `json:"strategies_count"`
	FeaturesPerMinute  float64   `json:"features_per_minute"`
	IngestQuotesPerMin float64   `json:"ingest_quotes_per_min"`
	IngestTradesPerMin float64   `json:"ingest_trades_per_min"`
	Lag                LagBadges `json:"lag"`
	Stale              bool      `json:"stale"`

	// Upstream-issued snapshot timestamps, shown verbatim.
	SnapshotAt    time.Time  `json:"snapshot_at"`
	LagSnapshotAt *time.Time `json:"lag_snapshot_at,omitempty"`
}

// StrategiesView is the leaderboard section.
type StrategiesView struct {
	rank.BoardView
}

// DashboardView is the whole landing page state.
type DashboardView struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Hero        HeroView       `json:"hero"`
	Stats       *StatsGridView `json:"stats,omitempty"`
	Events      feed.PanelView `json:"events"`
	Strategies  StrategiesView `json:"strategies"`
}

// Dashboard renders the landing page from the current snapshots.
func (b *Builder) Dashboard() DashboardView {
	v := DashboardView{
		GeneratedAt: b.now().UTC(),
		Events:      b.Feeds.View(),
		Strategies:  StrategiesView{BoardView: b.Board.View()},
	}

	stats, statsStale, statsErr, _ := b.stats.get()
	if stats == nil {
		// Hard error only while no stats have ever loaded; otherwise the
		// previous snapshot keeps rendering.
		v.Hero = HeroView{Error: statsErr}
		return v
	}

	v.Hero = HeroView{EventsProcessed: stats.Events24h}
	grid := &StatsGridView{
		ActiveMarkets:      stats.ActiveMarkets,
		Events24h:          stats.Events24h,
		StrategiesCount:    stats.StrategiesCount,
		FeaturesPerMinute:  stats.FeaturesPerMinute,
		IngestQuotesPerMin: stats.IngestQuotesPerMin,
		IngestTradesPerMin: stats.IngestTradesPerMin,
		Stale:              statsStale,
		SnapshotAt:         stats.GeneratedAt,
	}

	lag, _, _, _ := b.lag.get()
	if lag != nil {
		grid.Lag = LagBadges{
			Quotes:   b.LagPolicy.Lag(lag.QuotesLagSec),
			Trades:   b.LagPolicy.Lag(lag.TradesLagSec),
			Features: b.LagPolicy.Lag(lag.FeaturesLagSec),
		}
		ts := lag.GeneratedAt
		grid.LagSnapshotAt = &ts
	} else {
		grid.Lag = LagBadges{
			Quotes:   b.LagPolicy.Lag(nil),
			Trades:   b.LagPolicy.Lag(nil),
			Features: b.LagPolicy.Lag(nil),
		}
	}

	v.Stats = grid
	return v
}

// StrategiesPage renders the dedicated strategy listing: the full ranked
// list, no top-N projection.
func (b *Builder) StrategiesPage() rank.BoardView {
	return b.Board.View()
}
