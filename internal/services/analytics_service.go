package services

import "sort"

// AnalyticsStore exposes the aggregate views the analytics summary reads.
type AnalyticsStore interface {
	ListQuestions(category Category) ([]*Question, error)
	ListSessions(category Category) ([]*TestSession, error)
}

type AnalyticsService struct {
	store AnalyticsStore
	bands TierBands
}

// AnalyticsSummary aggregates every session of one category.
type AnalyticsSummary struct {
	Category       Category       `json:"category"`
	TotalSessions  int            `json:"total_sessions"`
	PaidSessions   int            `json:"paid_sessions"`
	MeanPercentage float64        `json:"mean_percentage"`
	TierHistogram  map[string]int `json:"tier_histogram"`
	Alpha          float64        `json:"alpha"`
	N              int            `json:"n"`
}

func NewAnalyticsService(store AnalyticsStore, bands TierBands) *AnalyticsService {
	return &AnalyticsService{store: store, bands: bands}
}

// Summary computes score distribution and internal consistency (Cronbach's
// alpha over sessions with a complete answer matrix) for a category.
func (s *AnalyticsService) Summary(category Category) (*AnalyticsSummary, error) {
	questions, err := s.store.ListQuestions(category)
	if err != nil {
		return nil, err
	}
	sessions, err := s.store.ListSessions(category)
	if err != nil {
		return nil, err
	}

	summary := &AnalyticsSummary{
		Category:      category,
		TotalSessions: len(sessions),
		TierHistogram: map[string]int{},
	}

	sum := 0.0
	scoredCount := 0
	for _, sess := range sessions {
		if sess.IsPaid {
			summary.PaidSessions++
		}
		pct := sessionPercentage(sess.Answers)
		if len(sess.Answers) == 0 {
			continue
		}
		sum += float64(pct)
		scoredCount++
		summary.TierHistogram[s.bands.Classify(pct).Label]++
	}
	if scoredCount > 0 {
		summary.MeanPercentage = sum / float64(scoredCount)
	}

	matrix := buildAnswerMatrix(questions, sessions)
	summary.Alpha = cronbachAlpha(matrix)
	summary.N = len(matrix)
	return summary, nil
}

// buildAnswerMatrix keeps only sessions that answered every question of the
// category, shaped [nSessions][nQuestions] in sorted question-id order.
func buildAnswerMatrix(questions []*Question, sessions []*TestSession) [][]float64 {
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	sort.Strings(ids)

	matrix := make([][]float64, 0, len(sessions))
	for _, sess := range sessions {
		row := make([]float64, 0, len(ids))
		complete := true
		for _, id := range ids {
			ans, ok := sess.Answers[id]
			if !ok {
				complete = false
				break
			}
			row = append(row, float64(ans.Score))
		}
		if complete && len(row) > 0 {
			matrix = append(matrix, row)
		}
	}
	return matrix
}

// cronbachAlpha computes Cronbach's alpha for a [nSessions][nItems] matrix
// using population variance throughout, clamped to [0,1].
func cronbachAlpha(matrix [][]float64) float64 {
	n := len(matrix)
	if n == 0 {
		return 0
	}
	k := len(matrix[0])
	if k < 2 {
		return 0
	}

	means := make([]float64, k)
	totals := make([]float64, n)
	for i, row := range matrix {
		if len(row) != k {
			return 0
		}
		for j, v := range row {
			means[j] += v
			totals[i] += v
		}
	}
	for j := range means {
		means[j] /= float64(n)
	}

	var sumItemVars float64
	for j := 0; j < k; j++ {
		var sum float64
		for i := 0; i < n; i++ {
			d := matrix[i][j] - means[j]
			sum += d * d
		}
		sumItemVars += sum / float64(n)
	}

	var totalMean float64
	for _, t := range totals {
		totalMean += t
	}
	totalMean /= float64(n)
	var totalVar float64
	for _, t := range totals {
		d := t - totalMean
		totalVar += d * d
	}
	totalVar /= float64(n)
	if totalVar == 0 {
		return 0
	}

	kf := float64(k)
	alpha := (kf / (kf - 1.0)) * (1.0 - (sumItemVars / totalVar))
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}
