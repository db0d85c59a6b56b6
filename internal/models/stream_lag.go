package models

import "time"

// StreamLagSnapshot reports the age of the most recent record in each
// upstream data stream. generated_at is issued by the upstream when the
// snapshot was computed, never locally. A missing or non-positive lag
// means "no data for that stream", not "zero lag".
type StreamLagSnapshot struct {
	QuotesLagSec   *float64  `json:"quotes_lag_sec,omitempty"`
	TradesLagSec   *float64  `json:"trades_lag_sec,omitempty"`
	FeaturesLagSec *float64  `json:"features_lag_sec,omitempty"`
	GeneratedAt    time.Time `json:"generated_at"`
}
