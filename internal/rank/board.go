package rank

import (
	"sync"
	"time"

	"marketdash/internal/models"
)

// Board holds the latest strategy ranking together with the
// stale-while-error display policy: a failed refresh never blanks a
// previously working leaderboard. Updates replace the whole snapshot.
type Board struct {
	mu        sync.RWMutex
	ranked    []RankedStrategy
	loaded    bool
	stale     bool
	lastErr   string
	updatedAt time.Time
}

// BoardView is the render state for the strategy leaderboard.
//
// Exactly one of the following holds: Error is set and the board has
// never loaded (hard error, nothing to show); or Ranked carries the most
// recent successful snapshot, with Stale set when a newer poll has since
// failed.
type BoardView struct {
	Ranked    []RankedStrategy `json:"ranked"`
	Top       []RankedStrategy `json:"top"`
	Totals    Totals           `json:"totals"`
	Stale     bool             `json:"stale"`
	Error     string           `json:"error,omitempty"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ApplySuccess replaces the board with a freshly ranked snapshot and
// clears any stale or error markers.
func (b *Board) ApplySuccess(list []models.StrategySummary, at time.Time) {
	ranked := Rank(list)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ranked = ranked
	b.loaded = true
	b.stale = false
	b.lastErr = ""
	b.updatedAt = at
}

// ApplyError records a failed refresh. If a prior snapshot exists it is
// kept and marked stale; otherwise the board surfaces a hard error.
func (b *Board) ApplyError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastErr = err.Error()
	if b.loaded {
		b.stale = true
	}
}

// Loaded reports whether the board has ever held a successful snapshot.
func (b *Board) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded
}

// View renders the current board state.
func (b *Board) View() BoardView {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.loaded {
		return BoardView{Error: b.lastErr}
	}
	v := BoardView{
		Ranked:    b.ranked,
		Top:       Top(b.ranked, TopCount),
		Totals:    SumTotals(b.ranked),
		Stale:     b.stale,
		UpdatedAt: b.updatedAt,
	}
	return v
}
