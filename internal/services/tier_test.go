package services

import "testing"

func TestDefaultTierBandsValid(t *testing.T) {
	if !DefaultTierBands().Valid() {
		t.Fatal("default bands failed validation")
	}
}

func TestTierBandsValidRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name  string
		bands TierBands
	}{
		{"empty", TierBands{}},
		{"no zero floor", TierBands{{Rank: 2, MinPercent: 50}, {Rank: 1, MinPercent: 10}}},
		{"not descending", TierBands{{Rank: 2, MinPercent: 40}, {Rank: 1, MinPercent: 60}}},
		{"duplicate threshold", TierBands{{Rank: 2, MinPercent: 50}, {Rank: 1, MinPercent: 50}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.bands.Valid() {
				t.Errorf("Valid() = true for %s", tc.name)
			}
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	bands := DefaultTierBands()
	cases := []struct {
		percentage int
		wantRank   int
	}{
		{100, 5},
		{80, 5},
		{79, 4},
		{65, 4},
		{64, 3},
		{50, 3},
		{49, 2},
		{35, 2},
		{34, 1},
		{0, 1},
	}
	for _, tc := range cases {
		if got := bands.Classify(tc.percentage); got.Rank != tc.wantRank {
			t.Errorf("Classify(%d).Rank = %d, want %d", tc.percentage, got.Rank, tc.wantRank)
		}
	}
}

func TestClassifyClampsOutOfRange(t *testing.T) {
	bands := DefaultTierBands()
	if got := bands.Classify(-10); got.Rank != 1 {
		t.Errorf("Classify(-10).Rank = %d, want 1", got.Rank)
	}
	if got := bands.Classify(250); got.Rank != 5 {
		t.Errorf("Classify(250).Rank = %d, want 5", got.Rank)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	bands := DefaultTierBands()
	prev := 0
	for p := 0; p <= 100; p++ {
		rank := bands.Classify(p).Rank
		if rank < prev {
			t.Fatalf("rank dropped from %d to %d at percentage %d", prev, rank, p)
		}
		prev = rank
	}
}
