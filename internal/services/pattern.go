package services

import "math"

// Consistency labels derived from the standard deviation of answer weights.
const (
	ConsistencyHigh    = "high"
	ConsistencyMedium  = "medium"
	ConsistencyLow     = "low"
	ConsistencyUnknown = "unknown"
)

// AnswerPattern is descriptive flavor for the narrative only; it carries no
// weight in the score itself.
type AnswerPattern struct {
	HighScoreCount   int    `json:"high_score_count"`
	MediumScoreCount int    `json:"medium_score_count"`
	LowScoreCount    int    `json:"low_score_count"`
	TotalAnswers     int    `json:"total_answers"`
	Consistency      string `json:"consistency"`
}

// AnalyzePattern counts answers at each weight level and labels consistency
// from the population standard deviation of the weights (σ<0.5 high, σ>0.8
// low, otherwise medium).
func AnalyzePattern(answers AnswerSet) AnswerPattern {
	if len(answers) == 0 {
		return AnswerPattern{Consistency: ConsistencyUnknown}
	}

	p := AnswerPattern{TotalAnswers: len(answers)}
	sum := 0.0
	for _, a := range answers {
		switch a.Score {
		case 3:
			p.HighScoreCount++
		case 2:
			p.MediumScoreCount++
		case 1:
			p.LowScoreCount++
		}
		sum += float64(a.Score)
	}

	mean := sum / float64(len(answers))
	variance := 0.0
	for _, a := range answers {
		d := float64(a.Score) - mean
		variance += d * d
	}
	variance /= float64(len(answers))
	sigma := math.Sqrt(variance)

	switch {
	case sigma < 0.5:
		p.Consistency = ConsistencyHigh
	case sigma > 0.8:
		p.Consistency = ConsistencyLow
	default:
		p.Consistency = ConsistencyMedium
	}
	return p
}
