package models

import "time"

// StatsResponse is the upstream aggregate counter snapshot. It is
// computed upstream on a slow cadence and is safe to cache between polls.
type StatsResponse struct {
	ActiveMarkets   int64   `json:"active_markets"`
	Events24h       int64   `json:"events_24h"`
	OpenPositions   int64   `json:"open_positions"`
	TotalPnL        float64 `json:"total_pnl"`
	StrategiesCount int64   `json:"strategies_count"`

	IngestQuotesPerMin float64 `json:"ingest_quotes_per_min"`
	IngestTradesPerMin float64 `json:"ingest_trades_per_min"`
	FeaturesPerMinute  float64 `json:"features_per_minute"`

	DBSize              string `json:"db_size"`
	ApproxQuotesTotal   int64  `json:"approx_quotes_total"`
	ApproxTradesTotal   int64  `json:"approx_trades_total"`
	ApproxFeaturesTotal int64  `json:"approx_features_total"`

	GeneratedAt       time.Time        `json:"generated_at"`
	WriterQueueDepths map[string]int64 `json:"writer_queue_depths,omitempty"`
}
