package rank

import (
	"errors"
	"testing"
	"time"

	"marketdash/internal/models"
)

func summaries() []models.StrategySummary {
	return []models.StrategySummary{
		{Name: "A", TotalPnL: 5, Fills24h: 3},
		{Name: "B", TotalPnL: -3, Fills24h: 0},
		{Name: "C", TotalPnL: 5, Fills24h: 0},
	}
}

func TestRankDescendingWithNameTiebreak(t *testing.T) {
	ranked := Rank(summaries())
	want := []string{"A", "C", "B"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Fatalf("rank %d = %s, want %s", i+1, ranked[i].Name, name)
		}
		if ranked[i].Rank != i+1 {
			t.Fatalf("rank field = %d, want %d", ranked[i].Rank, i+1)
		}
	}
}

func TestTopTwoExcludesLoser(t *testing.T) {
	top := Top(Rank(summaries()), TopCount)
	if len(top) != 2 {
		t.Fatalf("len(top) = %d, want 2", len(top))
	}
	for _, s := range top {
		if s.Name == "B" {
			t.Fatalf("B (total_pnl=-3) must not outrank a 5-valued entry")
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := summaries()
	Rank(in)
	if in[0].Name != "A" || in[1].Name != "B" || in[2].Name != "C" {
		t.Fatalf("input reordered: %v", in)
	}
}

func TestActivityClassification(t *testing.T) {
	ranked := Rank(summaries())
	byName := map[string]Activity{}
	for _, s := range ranked {
		byName[s.Name] = s.Activity
	}
	if byName["A"] != ActivityActive {
		t.Fatalf("A activity = %s, want active", byName["A"])
	}
	if byName["B"] != ActivityIdle || byName["C"] != ActivityIdle {
		t.Fatalf("zero-fill strategies must be idle: %v", byName)
	}
}

func TestSumTotals(t *testing.T) {
	ranked := Rank([]models.StrategySummary{
		{Name: "x", RealizedPnL: 0.1, UnrealizedPnL: 0.2, TotalPnL: 0.3, Fills24h: 1},
		{Name: "y", RealizedPnL: 0.2, UnrealizedPnL: 0.1, TotalPnL: 0.3, Fills24h: 2},
	})
	totals := SumTotals(ranked)
	if totals.Total != 0.6 {
		t.Fatalf("total = %v, want 0.6", totals.Total)
	}
	if totals.Realized != 0.3 || totals.Unrealized != 0.3 {
		t.Fatalf("component totals = %v / %v, want 0.3 / 0.3", totals.Realized, totals.Unrealized)
	}
	if totals.Fills24h != 3 {
		t.Fatalf("fills = %d, want 3", totals.Fills24h)
	}
}

func TestBoardStaleWhileError(t *testing.T) {
	b := &Board{}
	now := time.Now().UTC()

	b.ApplySuccess(summaries(), now)
	v := b.View()
	if v.Stale || v.Error != "" {
		t.Fatalf("fresh board unexpectedly stale or errored: %+v", v)
	}
	if len(v.Ranked) != 3 || len(v.Top) != 2 {
		t.Fatalf("view sizes = %d/%d, want 3/2", len(v.Ranked), len(v.Top))
	}

	b.ApplyError(errors.New("upstream 502"))
	v = b.View()
	if !v.Stale {
		t.Fatalf("expected stale flag after failed poll")
	}
	if len(v.Ranked) != 3 {
		t.Fatalf("prior snapshot discarded on failure: %d rows", len(v.Ranked))
	}
	if v.Error != "" {
		t.Fatalf("stale view should not carry a hard error, got %q", v.Error)
	}

	b.ApplySuccess(summaries()[:1], now.Add(time.Minute))
	v = b.View()
	if v.Stale {
		t.Fatalf("stale flag must clear on next success")
	}
	if len(v.Ranked) != 1 {
		t.Fatalf("snapshot not replaced, %d rows", len(v.Ranked))
	}
}

func TestBoardHardErrorWithoutPriorData(t *testing.T) {
	b := &Board{}
	b.ApplyError(errors.New("connection refused"))
	v := b.View()
	if v.Error == "" {
		t.Fatalf("expected hard error when no snapshot ever loaded")
	}
	if len(v.Ranked) != 0 || len(v.Top) != 0 {
		t.Fatalf("hard-error view must not render a partial list: %+v", v)
	}
}
