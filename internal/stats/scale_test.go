package stats

import "testing"

func TestNiceScale(t *testing.T) {
	cases := []struct {
		max   float64
		bound float64
		step  float64
	}{
		{max: 367, bound: 400, step: 50},
		{max: 100, bound: 100, step: 10},
		{max: 93, bound: 100, step: 10},
		{max: 2, bound: 2, step: 0.2},
		{max: 3.1, bound: 3.5, step: 0.5},
		{max: 0, bound: 0, step: 0},
	}
	for _, tc := range cases {
		bound, step := NiceScale(tc.max, DefaultTickCount)
		if !closeTo(bound, tc.bound) || !closeTo(step, tc.step) {
			t.Fatalf("NiceScale(%v) = (%v, %v), want (%v, %v)", tc.max, bound, step, tc.bound, tc.step)
		}
	}
}

func TestTicks(t *testing.T) {
	ticks := Ticks(400, 50)
	if len(ticks) != 9 {
		t.Fatalf("expected 9 ticks, got %d", len(ticks))
	}
	if ticks[0] != 0 || ticks[8] != 400 {
		t.Fatalf("unexpected tick range: %v", ticks)
	}
	if got := Ticks(0, 0); len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected single zero tick, got %v", got)
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
