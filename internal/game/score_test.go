package game

import "testing"

func TestComputeScore(t *testing.T) {
	cases := []struct {
		name       string
		maxTaps    int
		tapsUsed   int
		completion float64
		elapsed    int
		want       int
	}{
		{
			// 1000 + 0 tap bonus + 1000 coverage + 240 time + 500 perfect
			name:    "perfect board all taps spent",
			maxTaps: 10, tapsUsed: 10, completion: 100.0, elapsed: 60,
			want: 2740,
		},
		{
			// 1000 + 2*50 + floor(97.2*10)=972 + 240, no perfect bonus
			name:    "complete but not perfect",
			maxTaps: 10, tapsUsed: 8, completion: 97.2, elapsed: 60,
			want: 2312,
		},
		{
			// 1000 + 0 + 250 + 0 time (slow play)
			name:    "out of taps and slow",
			maxTaps: 5, tapsUsed: 5, completion: 25.0, elapsed: 400,
			want: 1250,
		},
		{
			// Time bonus boundary: exactly 300 seconds earns nothing
			name:    "time bonus boundary",
			maxTaps: 5, tapsUsed: 5, completion: 0, elapsed: 300,
			want: 1000,
		},
		{
			// 1000 + 5*50 + 1000 + 300 + 500: fastest possible perfect
			name:    "instant perfect with spare taps",
			maxTaps: 6, tapsUsed: 1, completion: 100.0, elapsed: 0,
			want: 3050,
		},
		{
			// Fractional coverage floors: floor(95.83*10) = 958
			name:    "fractional coverage floors",
			maxTaps: 4, tapsUsed: 4, completion: 95.83, elapsed: 300,
			want: 1958,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeScore(tc.maxTaps, tc.tapsUsed, tc.completion, tc.elapsed)
			if got != tc.want {
				t.Errorf("ComputeScore(%d, %d, %.2f, %d) = %d, want %d",
					tc.maxTaps, tc.tapsUsed, tc.completion, tc.elapsed, got, tc.want)
			}
		})
	}
}

func TestComputeScoreDeterministic(t *testing.T) {
	first := ComputeScore(10, 7, 96.5, 123)
	for i := 0; i < 10; i++ {
		if got := ComputeScore(10, 7, 96.5, 123); got != first {
			t.Fatalf("ComputeScore not deterministic: %d vs %d", got, first)
		}
	}
}

func TestComputeScoreInvalidInputsPanic(t *testing.T) {
	cases := []struct {
		name       string
		maxTaps    int
		tapsUsed   int
		completion float64
		elapsed    int
	}{
		{"negative maxTaps", -1, 0, 0, 0},
		{"negative tapsUsed", 5, -1, 0, 0},
		{"negative completion", 5, 0, -0.1, 0},
		{"negative elapsed", 5, 0, 0, -1},
		{"tapsUsed exceeds maxTaps", 5, 6, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic")
				}
			}()
			ComputeScore(tc.maxTaps, tc.tapsUsed, tc.completion, tc.elapsed)
		})
	}
}
