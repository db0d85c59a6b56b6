package models

import "time"

// StrategySummary is one paper-trading strategy row from the upstream
// /api/strategies leaderboard. name is the unique key. total_pnl is
// supplied by the upstream as its own column; it is not guaranteed to
// equal realized + unrealized, so it is never recomputed here.
type StrategySummary struct {
	Name          string     `json:"name"`
	RealizedPnL   float64    `json:"realized_pnl"`
	UnrealizedPnL float64    `json:"unrealized_pnl"`
	TotalPnL      float64    `json:"total_pnl"`
	Fills24h      int64      `json:"fills_24h"`
	LastTradeAt   *time.Time `json:"last_trade_at,omitempty"`
}
