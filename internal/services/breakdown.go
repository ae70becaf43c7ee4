package services

import (
	"math"
	"math/rand"
	"sort"
)

// DimensionScore is one axis of the radar-chart visualization.
type DimensionScore struct {
	Subject  string `json:"subject"`
	Score    int    `json:"score"`
	FullMark int    `json:"full_mark"`
}

// BreakdownOptions controls the otherwise deterministic dimension breakdown.
// Jitter adds ±5 of visual noise to category-specific charts (demo mode only);
// it is never applied to the combined category and defaults to off.
type BreakdownOptions struct {
	Jitter bool
	Rand   *rand.Rand
}

var dimensionNames = map[Category][]string{
	CategoryAll:          {"溝通能力", "情緒管理", "適應能力", "領導能力", "問題解決", "人際關係"},
	CategoryFamily:       {"家庭溝通", "責任分擔", "親子關係", "衝突處理", "情感支持"},
	CategoryRelationship: {"情感表達", "親密建立", "信任建設", "衝突解決", "承諾履行"},
	CategoryWork:         {"壓力管理", "團隊合作", "工作效率", "職場適應", "目標達成"},
	CategoryPersonal:     {"自我認知", "情緒智商", "成長思維", "決策能力", "目標設定"},
}

// DimensionNames returns the fixed dimension-name list for a category.
func DimensionNames(category Category) []string {
	if names, ok := dimensionNames[category]; ok {
		return names
	}
	return dimensionNames[CategoryAll]
}

// Breakdown partitions the answered questions evenly (ceiling division, in
// sorted question-id order) across the category's dimensions and scores each
// partition as a percentage clamped to [0,100].
func Breakdown(answers AnswerSet, category Category, opts BreakdownOptions) ([]DimensionScore, error) {
	if len(answers) == 0 {
		return nil, NewValidationError("測驗答案不能為空")
	}

	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	names := DimensionNames(category)
	perDimension := (len(ids) + len(names) - 1) / len(names)

	out := make([]DimensionScore, 0, len(names))
	for i, name := range names {
		start := i * perDimension
		end := start + perDimension
		if start > len(ids) {
			start = len(ids)
		}
		if end > len(ids) {
			end = len(ids)
		}

		total, count := 0, 0
		for _, id := range ids[start:end] {
			total += answers[id].Score
			count++
		}

		pct := 0
		if count > 0 {
			pct = int(math.Round(float64(total) / float64(count*MaxOptionWeight) * 100))
		}
		if opts.Jitter && category != CategoryAll {
			pct += jitter(opts.Rand)
		}
		out = append(out, DimensionScore{Subject: name, Score: clampPercent(pct), FullMark: 100})
	}
	return out, nil
}

func jitter(r *rand.Rand) int {
	if r == nil {
		return 0
	}
	return r.Intn(11) - 5
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
