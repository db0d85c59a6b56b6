package classify

import (
	"fmt"
	"math"
	"time"
)

// Level grades a lag reading for display.
type Level string

const (
	LevelOK   Level = "ok"
	LevelWarn Level = "warn"
	LevelBad  Level = "bad"
)

// NoLagData is the label shown when a stream has no lag reading at all.
const NoLagData = "—"

// Band is a display-ready lag reading: a formatted label plus severity.
type Band struct {
	Label string `json:"label"`
	Level Level  `json:"level"`
}

// LagPolicy holds the severity thresholds for stream lag. Earlier
// revisions of the dashboard disagreed on the banding (whole seconds vs
// much tighter millisecond cutoffs), so the thresholds are configuration,
// not constants. The default is the seconds scheme: normal ingest lag is
// 1-4s, and sustained lag past two minutes means the pipeline is in real
// trouble.
type LagPolicy struct {
	WarnAfter time.Duration
	BadAfter  time.Duration
}

// DefaultLagPolicy returns the seconds-based banding: ok below 5s, warn
// from 5s to 120s, bad from 120s on.
func DefaultLagPolicy() LagPolicy {
	return LagPolicy{
		WarnAfter: 5 * time.Second,
		BadAfter:  2 * time.Minute,
	}
}

// Lag formats a lag value in seconds into a banded label.
//
// nil or non-positive input is "no data", rendered as the sentinel at
// level ok; it never claims the stream achieved zero lag. Sub-second
// values render in milliseconds, everything else in seconds with two
// decimals below 10s and one decimal from 10s on.
func (p LagPolicy) Lag(sec *float64) Band {
	if sec == nil || *sec <= 0 {
		return Band{Label: NoLagData, Level: LevelOK}
	}
	s := *sec
	band := Band{Label: formatLagSeconds(s), Level: LevelOK}
	switch {
	case s >= p.BadAfter.Seconds():
		band.Level = LevelBad
	case s >= p.WarnAfter.Seconds():
		band.Level = LevelWarn
	}
	return band
}

func formatLagSeconds(s float64) string {
	if s < 1 {
		ms := s * 1000
		if ms < 10 {
			return fmt.Sprintf("%.1fms", ms)
		}
		return fmt.Sprintf("%dms", int(math.Round(ms)))
	}
	if s < 10 {
		return fmt.Sprintf("%.2fs", s)
	}
	return fmt.Sprintf("%.1fs", s)
}
