package feed

import (
	"fmt"
	"strings"
	"time"

	"marketdash/internal/classify"
	"marketdash/internal/models"
)

// EventRow is one rendered event line.
type EventRow struct {
	TokenID     string              `json:"token_id"`
	Title       string              `json:"title"`
	DisplayType string              `json:"display_type"`
	TimeAgo     string              `json:"time_ago"`
	OldValue    *float64            `json:"old_value,omitempty"`
	NewValue    *float64            `json:"new_value,omitempty"`
	PctChange   *float64            `json:"pct_change"`
	Direction   *classify.Direction `json:"direction"`

	// Shown only when no percent change could be derived: the raw
	// z-score that triggered the event, plus any mean-reversion hint.
	Zscore5M       *float64 `json:"zscore_5m,omitempty"`
	MeanRevertHint string   `json:"mean_revert_hint,omitempty"`
}

// TabSummary is one tab header with its live event count.
type TabSummary struct {
	Tab   Tab    `json:"tab"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PanelView is the render state of the live-events panel.
//
// Visible is false when the active feed loaded successfully but has
// nothing to show; the panel disappears entirely rather than rendering a
// "no events" placeholder. Error is set only when the active feed has
// never loaded; once a feed has data, later failures keep the data and
// set Stale instead.
type PanelView struct {
	Visible   bool         `json:"visible"`
	ActiveTab Tab          `json:"active_tab"`
	Tabs      []TabSummary `json:"tabs"`
	Rows      []EventRow   `json:"rows"`
	Stale     bool         `json:"stale"`
	Error     string       `json:"error,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// View renders the panel for the active tab against the shared clock.
func (c *Controller) View() PanelView {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	active := c.feeds[c.activeTab]

	v := PanelView{
		ActiveTab: c.activeTab,
		Tabs: []TabSummary{
			{Tab: TabNewMarkets, Label: "New markets", Count: len(c.feeds[TabNewMarkets].events)},
			{Tab: TabPriceJumps, Label: "Price jumps", Count: len(c.feeds[TabPriceJumps].events)},
		},
		Stale:     active.stale,
		UpdatedAt: active.updatedAt,
	}

	if !active.loaded {
		v.Error = active.lastErr
		return v
	}
	if len(active.events) == 0 {
		return v
	}

	v.Visible = true
	v.Rows = make([]EventRow, 0, len(active.events))
	for _, ev := range active.events {
		v.Rows = append(v.Rows, renderRow(ev, now))
	}
	return v
}

func renderRow(ev models.MarketEvent, now time.Time) EventRow {
	cls := classify.Event(ev)
	row := EventRow{
		TokenID:     ev.TokenID,
		Title:       ev.Title(),
		DisplayType: displayType(ev.EventType),
		TimeAgo:     timeAgo(now, ev.DetectedAt),
		PctChange:   cls.PctChange,
		Direction:   cls.Direction,
	}
	if ev.EventType != models.EventTypeNewMarket {
		row.OldValue = ev.OldValue
		row.NewValue = ev.NewValue
	}
	if cls.PctChange == nil {
		if zs, ok := ev.Zscore5M(); ok {
			row.Zscore5M = &zs
		}
	}
	if hint, ok := ev.MeanRevertHint(); ok {
		row.MeanRevertHint = hint
	}
	return row
}

// displayType maps raw event types to their human names: state_extreme
// reads as "price jump", anything else just drops the underscores.
func displayType(eventType string) string {
	if eventType == models.EventTypeStateExtreme {
		return "price jump"
	}
	return strings.ReplaceAll(eventType, "_", " ")
}

// timeAgo renders whole elapsed minutes, matching the feed's cadence.
func timeAgo(now, detected time.Time) string {
	if detected.IsZero() {
		return ""
	}
	mins := int(now.Sub(detected).Minutes())
	if mins < 0 {
		mins = 0
	}
	return fmt.Sprintf("%dm ago", mins)
}
