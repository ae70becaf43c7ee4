package services

import "math"

// MaxOptionWeight is the highest score weight any option carries.
const MaxOptionWeight = 3

// ScoredResult is derived from a completed answer set, never stored on its own.
type ScoredResult struct {
	TotalScore int `json:"total_score"`
	MaxScore   int `json:"max_score"`
	Percentage int `json:"percentage"`
}

// Score sums the captured answer weights over the question list and converts
// them to a percentage (round half up). The stored weight is trusted even if
// it no longer matches the question's option table, since it was captured at
// answer time.
func Score(answers AnswerSet, questions []*Question) (*ScoredResult, error) {
	if len(questions) == 0 {
		return nil, NewValidationError("no questions to score")
	}
	if len(answers) == 0 {
		return nil, NewValidationError("測驗答案不能為空")
	}

	total := 0
	for _, q := range questions {
		ans, ok := answers[q.ID]
		if !ok {
			return nil, NewValidationError("missing answer for question " + q.ID)
		}
		total += ans.Score
	}

	maxScore := len(questions) * MaxOptionWeight
	percentage := int(math.Round(float64(total) / float64(maxScore) * 100))

	return &ScoredResult{
		TotalScore: total,
		MaxScore:   maxScore,
		Percentage: percentage,
	}, nil
}
