package services

// Tier is one of five ordered qualitative bands over [0,100].
// Higher Rank means a better band.
type Tier struct {
	Rank        int    `json:"rank"`
	Label       string `json:"label"`
	Description string `json:"description"`
	MinPercent  int    `json:"min_percent"`
}

// TierBands holds the bands in descending MinPercent order. The last band
// must start at 0 so every percentage classifies.
type TierBands []Tier

// DefaultTierBands returns the canonical five-band configuration.
func DefaultTierBands() TierBands {
	return TierBands{
		{Rank: 5, MinPercent: 80, Label: "心理狀態極佳",
			Description: "您展現出非常積極正向的心理特質，能夠有效應對生活中的各種挑戰。"},
		{Rank: 4, MinPercent: 65, Label: "心理狀態良好",
			Description: "您具備良好的心理調適能力，多數情況下能保持穩定與彈性。"},
		{Rank: 3, MinPercent: 50, Label: "心理狀態穩定",
			Description: "您的心理狀態大致穩定，在某些方面還有成長空間。"},
		{Rank: 2, MinPercent: 35, Label: "需要關注",
			Description: "建議您多關注自己的心理健康，適時尋求支持和協助。"},
		{Rank: 1, MinPercent: 0, Label: "建議專業諮詢",
			Description: "您可能正面臨一些心理壓力，建議考慮尋求專業心理諮詢。"},
	}
}

// Valid reports whether the bands are strictly descending and cover [0,100].
func (b TierBands) Valid() bool {
	if len(b) == 0 {
		return false
	}
	prev := 101
	for _, t := range b {
		if t.MinPercent >= prev {
			return false
		}
		prev = t.MinPercent
	}
	return b[len(b)-1].MinPercent == 0
}

// Classify maps a percentage onto its band. Out-of-range input is clamped so
// classification is total and monotonic.
func (b TierBands) Classify(percentage int) Tier {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	for _, t := range b {
		if percentage >= t.MinPercent {
			return t
		}
	}
	return b[len(b)-1]
}
