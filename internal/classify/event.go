package classify

import (
	"math"

	"marketdash/internal/models"
)

// Direction of a classified price move.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// flatEpsilonPct guards against float noise: a move below a hundredth of
// a percent is not a displayable change.
const flatEpsilonPct = 0.01

// EventClassification is the derived percent change and direction for one
// market event. Both fields nil means unclassified: the event carried no
// usable price information. That is a neutral display state, not an error.
type EventClassification struct {
	PctChange *float64   `json:"pct_change"`
	Direction *Direction `json:"direction"`
}

// Unclassified reports whether the event produced no direction at all.
func (c EventClassification) Unclassified() bool {
	return c.PctChange == nil && c.Direction == nil
}

// Event derives the percent change and direction for one market event.
//
// The fallback chain is ordered and the order is load-bearing:
//  1. new_market events carry no price delta by definition.
//  2. old_value/new_value when both are present and old_value > 0.
//  3. metadata ret_1m, so z-score driven state_extreme rows without
//     old/new values still classify.
//  4. otherwise unclassified.
func Event(ev models.MarketEvent) EventClassification {
	if ev.EventType == models.EventTypeNewMarket {
		return EventClassification{}
	}

	if ev.OldValue != nil && ev.NewValue != nil && *ev.OldValue > 0 {
		raw := *ev.NewValue - *ev.OldValue
		pct := raw / *ev.OldValue * 100
		if math.Abs(pct) < flatEpsilonPct {
			return flat()
		}
		if raw > 0 {
			return directional(pct, DirectionUp)
		}
		return directional(pct, DirectionDown)
	}

	if ret, ok := ev.Ret1M(); ok {
		pct := ret * 100
		if math.Abs(pct) < flatEpsilonPct {
			return flat()
		}
		if pct > 0 {
			return directional(pct, DirectionUp)
		}
		return directional(pct, DirectionDown)
	}

	return EventClassification{}
}

func flat() EventClassification {
	dir := DirectionFlat
	return EventClassification{Direction: &dir}
}

func directional(pct float64, dir Direction) EventClassification {
	return EventClassification{PctChange: &pct, Direction: &dir}
}
