package classify

import (
	"testing"
	"time"
)

func fptr(v float64) *float64 { return &v }

func TestLagNoData(t *testing.T) {
	p := DefaultLagPolicy()
	tests := []struct {
		name string
		in   *float64
	}{
		{"nil", nil},
		{"zero", fptr(0)},
		{"negative", fptr(-3.5)},
	}
	for _, tt := range tests {
		band := p.Lag(tt.in)
		if band.Label != NoLagData {
			t.Fatalf("%s: label = %q, want sentinel", tt.name, band.Label)
		}
		if band.Level != LevelOK {
			t.Fatalf("%s: level = %q, want ok", tt.name, band.Level)
		}
	}
}

func TestLagFormatting(t *testing.T) {
	p := DefaultLagPolicy()
	tests := []struct {
		sec   float64
		label string
		level Level
	}{
		{0.0005, "0.5ms", LevelOK},
		{0.009, "9.0ms", LevelOK},
		{0.25, "250ms", LevelOK},
		{1.5, "1.50s", LevelOK},
		{3.2, "3.20s", LevelOK},
		{7.5, "7.50s", LevelWarn},
		{45, "45.0s", LevelWarn},
		{119.9, "119.9s", LevelWarn},
		{120, "120.0s", LevelBad},
		{180, "180.0s", LevelBad},
	}
	for _, tt := range tests {
		band := p.Lag(fptr(tt.sec))
		if band.Label != tt.label {
			t.Fatalf("Lag(%v) label = %q, want %q", tt.sec, band.Label, tt.label)
		}
		if band.Level != tt.level {
			t.Fatalf("Lag(%v) level = %q, want %q", tt.sec, band.Level, tt.level)
		}
	}
}

func TestLagPolicyOverride(t *testing.T) {
	tight := LagPolicy{WarnAfter: 200 * time.Millisecond, BadAfter: time.Second}
	if got := tight.Lag(fptr(0.5)); got.Level != LevelWarn {
		t.Fatalf("tight policy at 500ms: level = %q, want warn", got.Level)
	}
	if got := tight.Lag(fptr(2)); got.Level != LevelBad {
		t.Fatalf("tight policy at 2s: level = %q, want bad", got.Level)
	}
	if got := tight.Lag(fptr(0.05)); got.Level != LevelOK {
		t.Fatalf("tight policy at 50ms: level = %q, want ok", got.Level)
	}
}
