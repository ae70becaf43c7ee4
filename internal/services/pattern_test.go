package services

import "testing"

func TestAnalyzePatternCounts(t *testing.T) {
	answers := AnswerSet{
		"q1": {Score: 3},
		"q2": {Score: 3},
		"q3": {Score: 2},
		"q4": {Score: 1},
	}
	p := AnalyzePattern(answers)
	if p.HighScoreCount != 2 || p.MediumScoreCount != 1 || p.LowScoreCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", p.HighScoreCount, p.MediumScoreCount, p.LowScoreCount)
	}
	if p.TotalAnswers != 4 {
		t.Errorf("TotalAnswers = %d, want 4", p.TotalAnswers)
	}
}

func TestAnalyzePatternConsistency(t *testing.T) {
	cases := []struct {
		name    string
		answers AnswerSet
		want    string
	}{
		{
			// σ = 0
			"identical answers",
			AnswerSet{"q1": {Score: 2}, "q2": {Score: 2}, "q3": {Score: 2}},
			ConsistencyHigh,
		},
		{
			// scores 1,1,3,3 → σ = 1
			"polarized answers",
			AnswerSet{"q1": {Score: 1}, "q2": {Score: 1}, "q3": {Score: 3}, "q4": {Score: 3}},
			ConsistencyLow,
		},
		{
			// scores 1,2,2,3 → σ ≈ 0.707
			"mixed answers",
			AnswerSet{"q1": {Score: 1}, "q2": {Score: 2}, "q3": {Score: 2}, "q4": {Score: 3}},
			ConsistencyMedium,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AnalyzePattern(tc.answers).Consistency; got != tc.want {
				t.Errorf("Consistency = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAnalyzePatternEmpty(t *testing.T) {
	p := AnalyzePattern(AnswerSet{})
	if p.Consistency != ConsistencyUnknown {
		t.Errorf("Consistency = %q, want %q", p.Consistency, ConsistencyUnknown)
	}
	if p.TotalAnswers != 0 {
		t.Errorf("TotalAnswers = %d, want 0", p.TotalAnswers)
	}
}
