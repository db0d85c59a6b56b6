package models

import "time"

// Event types currently emitted by the data plane.
const (
	EventTypeNewMarket    = "new_market"
	EventTypeStateExtreme = "state_extreme"
)

// MarketEvent is one row of the upstream /api/market-events feed.
// old_value and new_value are omitted upstream for events that carry no
// price delta, so they stay pointers: nil means absent, not zero.
type MarketEvent struct {
	TokenID    string         `json:"token_id"`
	EventType  string         `json:"event_type"`
	OldValue   *float64       `json:"old_value,omitempty"`
	NewValue   *float64       `json:"new_value,omitempty"`
	DetectedAt time.Time      `json:"detected_at"`
	Question   string         `json:"question"`
	Metadata   *EventMetadata `json:"metadata,omitempty"`
}

// EventMetadata is the sparse feature bag the upstream attaches to an
// event. Every field is independently optional; unknown keys are ignored.
// Read it through the accessors on MarketEvent so "missing" is never
// confused with a zero value.
type EventMetadata struct {
	Ret1M          *float64 `json:"ret_1m,omitempty"`
	Zscore5M       *float64 `json:"zscore_5m,omitempty"`
	MeanRevertHint *string  `json:"mean_revert_hint,omitempty"`
}

// Ret1M returns the 1-minute return from metadata, if present.
func (e MarketEvent) Ret1M() (float64, bool) {
	if e.Metadata == nil || e.Metadata.Ret1M == nil {
		return 0, false
	}
	return *e.Metadata.Ret1M, true
}

// Zscore5M returns the 5-minute z-score from metadata, if present.
func (e MarketEvent) Zscore5M() (float64, bool) {
	if e.Metadata == nil || e.Metadata.Zscore5M == nil {
		return 0, false
	}
	return *e.Metadata.Zscore5M, true
}

// MeanRevertHint returns the mean-reversion annotation, if present.
func (e MarketEvent) MeanRevertHint() (string, bool) {
	if e.Metadata == nil || e.Metadata.MeanRevertHint == nil || *e.Metadata.MeanRevertHint == "" {
		return "", false
	}
	return *e.Metadata.MeanRevertHint, true
}

// Title is the display name for an event row; markets without a resolved
// question fall back to the raw token id.
func (e MarketEvent) Title() string {
	if e.Question != "" {
		return e.Question
	}
	return e.TokenID
}
