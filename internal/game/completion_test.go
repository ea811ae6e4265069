package game

import "testing"

func TestCompletionPercent(t *testing.T) {
	g := NewGrid(4) // 16 cells

	if got := Completion(g); got != 0 {
		t.Errorf("Empty grid should be 0%%, got %.2f", got)
	}

	g.Set(0, 0, 1)
	if got := Completion(g); got != 6.25 {
		t.Errorf("1/16 colored should be 6.25%%, got %.2f", got)
	}

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g.Set(r, c, 1)
		}
	}
	if got := Completion(g); got != 100.0 {
		t.Errorf("Full grid should be 100%%, got %.2f", got)
	}
}

func TestCompletionThresholds(t *testing.T) {
	cases := []struct {
		percent  float64
		complete bool
		perfect  bool
	}{
		{0, false, false},
		{94.9, false, false},
		{95.0, true, false},
		{97.2, true, false},
		{99.99, true, false},
		{100.0, true, true},
	}

	for _, tc := range cases {
		if got := IsComplete(tc.percent); got != tc.complete {
			t.Errorf("IsComplete(%.2f) = %v, want %v", tc.percent, got, tc.complete)
		}
		if got := IsPerfect(tc.percent); got != tc.perfect {
			t.Errorf("IsPerfect(%.2f) = %v, want %v", tc.percent, got, tc.perfect)
		}
	}
}
