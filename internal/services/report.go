package services

import (
	"fmt"
	"strings"
)

type ReportVariant string

const (
	ReportBasic ReportVariant = "basic"
	ReportFull  ReportVariant = "full"
)

// Report is a tier label plus generated narrative text. The basic variant is
// produced at scoring time; the full variant only after payment confirmation.
type Report struct {
	Variant ReportVariant `json:"variant"`
	Tier    Tier          `json:"tier"`
	Content string        `json:"content"`
}

var categoryDisplayNames = map[Category]string{
	CategoryFamily:       "家庭",
	CategoryRelationship: "感情關係",
	CategoryWork:         "工作",
	CategoryPersonal:     "個人思維",
	CategoryAll:          "綜合",
}

// CategoryDisplayName returns the human-readable category label.
func CategoryDisplayName(category Category) string {
	if name, ok := categoryDisplayNames[category]; ok {
		return name
	}
	return categoryDisplayNames[CategoryAll]
}

// categoryTemplate collects every narrative fragment for one category,
// keyed by tier rank where tier-dependent.
type categoryTemplate struct {
	Theme      string
	ByRank     map[int]string
	AdviceHigh []string
	AdviceLow  []string
}

var reportTemplates = map[Category]categoryTemplate{
	CategoryFamily: {
		Theme: "家庭關係是情感支持的重要基礎，良好的家庭互動能為生活提供穩定的力量。",
		ByRank: map[int]string{
			5: "您在家庭關係中展現出卓越的經營能力，能夠主動調解分歧、承擔責任，並在家人需要時提供實質與情感上的支持。您是家庭中值得信賴的支柱。",
			4: "您在家庭互動中表現良好，能夠維持和諧的溝通氛圍，並在多數情況下妥善處理家庭事務與衝突。",
			3: "您的家庭關係大致穩定，但在溝通深度與衝突處理上還有提升空間，建議更主動地表達關心與想法。",
			2: "您在家庭關係中可能感受到一定的壓力或疏離，建議留意與家人的互動品質，嘗試建立更開放的對話。",
			1: "您的家庭關係目前可能面臨較多挑戰，長期的緊張或疏離會影響身心健康，建議尋求家庭諮詢等專業協助。",
		},
		AdviceHigh: []string{
			"持續保持開放的家庭溝通習慣，定期與家人分享彼此的近況",
			"在調解家庭分歧時，記得也照顧自己的情緒需求",
			"將您的支持能量傳遞給較沉默的家庭成員",
		},
		AdviceLow: []string{
			"每週安排固定的家庭交流時間，從輕鬆的話題開始",
			"練習在表達不滿前先描述自己的感受，減少指責性語言",
			"若家庭衝突反覆發生，考慮尋求家庭治療師的協助",
		},
	},
	CategoryRelationship: {
		Theme: "親密關係的品質取決於情感表達、信任與承諾的持續經營。",
		ByRank: map[int]string{
			5: "您在親密關係中展現出安全型依附的特徵，能夠在親密與獨立之間取得良好平衡，主動溝通需求並給予伴侶充分的支持與空間。",
			4: "您具備良好的關係經營能力，能夠關心伴侶的情緒並在衝突後尋求修復，關係基礎相當穩固。",
			3: "您的依附模式相對穩定，但在表達需求與處理衝突時偶有迴避傾向，建議練習更直接而溫和的溝通。",
			2: "您在關係中可能較常感到不安或被忽視，建議關注自己在親密關係中的核心需求，並嘗試具體說出來。",
			1: "您目前的關係模式可能帶來較大的情緒消耗，建議透過專業諮詢梳理自己的依附經驗與關係期待。",
		},
		AdviceHigh: []string{
			"持續經營信任，讓伴侶知道您欣賞關係中的哪些部分",
			"在忙碌時期仍保留兩人專屬的相處時間",
			"把衝突視為理解彼此的機會，而非輸贏之爭",
		},
		AdviceLow: []string{
			"練習用「我訊息」表達感受，例如「我感到……因為……」",
			"在情緒高漲時先暫停對話，約定冷靜後的具體討論時間",
			"若關係反覆陷入相同僵局，伴侶諮詢是值得考慮的選項",
		},
	},
	CategoryWork: {
		Theme: "職場心理狀態影響工作表現與生活品質，壓力管理與團隊關係是其中的關鍵。",
		ByRank: map[int]string{
			5: "您在職場中展現出優異的抗壓性與適應力，面對變動能主動規劃、推動改變，並在團隊中扮演穩定人心的角色。",
			4: "您的職場心理狀態良好，能夠有效安排工作、與同事合作，並在挫折後較快恢復動力。",
			3: "您在工作中大致穩定，但面對高壓或變動時偶爾感到吃力，建議建立更系統的壓力調節習慣。",
			2: "工作壓力可能已對您造成明顯負擔，建議檢視工作量與休息的平衡，並主動與主管溝通困難。",
			1: "您目前的職場壓力水平值得重視，長期超載可能導致倦怠，建議尋求專業協助並認真評估調整的可能。",
		},
		AdviceHigh: []string{
			"將您的工作方法整理後分享給團隊，建立正向影響力",
			"在高效率之餘，刻意安排不被工作佔據的恢復時間",
			"為下一階段職涯設定清晰而有彈性的目標",
		},
		AdviceLow: []string{
			"把大型任務拆解為可完成的小步驟，降低啟動壓力",
			"每天安排短暫的休息與身體活動，中斷壓力累積",
			"若倦怠感持續超過數週，與專業人員談談是有效的做法",
		},
	},
	CategoryPersonal: {
		Theme: "個人思維模式決定了如何面對挫折、不確定性與自我成長。",
		ByRank: map[int]string{
			5: "您展現出強烈的成長思維，能夠系統性地分析問題、誠實面對弱點，並將挫折轉化為學習機會。您的自我認知清晰而穩定。",
			4: "您具備良好的自我反思習慣與情緒調節能力，多數時候能以開放心態面對變化。",
			3: "您的思維模式在成長與固定之間取得平衡，建議在面對失敗時更刻意地尋找其中的學習價值。",
			2: "您可能較容易被挫折與不確定性影響情緒，建議練習把注意力放在可控的行動上。",
			1: "您目前的思維慣性可能加重了心理負擔，建議透過專業引導重新檢視對自我與失敗的看法。",
		},
		AdviceHigh: []string{
			"為自己設定有挑戰性的學習目標，保持成長動能",
			"定期書寫反思日記，累積對自身模式的觀察",
			"將您的成長經驗分享給他人，深化自己的理解",
		},
		AdviceLow: []string{
			"遇到挫折時，先問「這件事教了我什麼」再評價自己",
			"每天記錄一件做得不錯的小事，重建自我效能感",
			"練習把「我做不到」改寫為「我還沒學會」",
		},
	},
	CategoryAll: {
		Theme: "綜合評估涵蓋溝通、情緒、適應等多個生活面向，反映整體的心理資源。",
		ByRank: map[int]string{
			5: "您在各生活面向均展現出優秀的心理素質：溝通順暢、情緒穩定、適應力強，能夠從容應對多重角色的要求。",
			4: "您的整體心理狀態良好，多數面向運作順暢，少數領域稍弱但不構成明顯困擾。",
			3: "您的整體狀態穩定，各面向表現互有高低，建議優先強化得分較低的生活領域。",
			2: "多個生活面向可能同時帶給您壓力，建議先找出負擔最重的領域，集中調整。",
			1: "您目前可能同時承受多方面的心理壓力，建議儘早尋求專業心理諮詢，系統性地梳理與調整。",
		},
		AdviceHigh: []string{
			"維持目前的生活節奏，並定期檢視各面向的平衡",
			"把心理資源投注在最重要的一兩個長期目標上",
			"成為身邊他人的支持者，同時留意自己的界線",
		},
		AdviceLow: []string{
			"從影響最大的單一領域開始改善，避免同時處理所有問題",
			"建立規律的睡眠與運動習慣，為心理調適打底",
			"主動與信任的人談談您的壓力，不必獨自承擔",
		},
	},
}

var consistencyText = map[string]string{
	ConsistencyHigh:    "您的答題呈現高度一致性，反映出清晰而穩定的自我認知。",
	ConsistencyMedium:  "您的答題呈現中等一致性，在不同情境下的反應有一定彈性。",
	ConsistencyLow:     "您的答題差異較大，可能反映出不同情境下的矛盾感受，值得進一步探索。",
	ConsistencyUnknown: "答題模式資料不足，暫無法判讀一致性。",
}

// GenerateBasicReport builds the always-available short narrative from the
// percentage and category alone. Deterministic.
func GenerateBasicReport(percentage int, category Category, bands TierBands) Report {
	tier := bands.Classify(percentage)
	tpl := reportTemplates[normalizeCategory(category)]

	var b strings.Builder
	fmt.Fprintf(&b, "%s：%s\n\n", tier.Label, tier.Description)
	fmt.Fprintf(&b, "您在%s類別的測驗得分為 %d%%。%s", CategoryDisplayName(category), percentage, tpl.Theme)
	return Report{Variant: ReportBasic, Tier: tier, Content: b.String()}
}

// FullReportInput carries everything the expanded narrative is a function of.
type FullReportInput struct {
	Percentage int
	Category   Category
	Tier       Tier
	Profile    *UserProfile
	Pattern    AnswerPattern
}

// GenerateFullReport renders the expanded deterministic narrative, splicing
// persona fragments selected by age band, occupation and gender.
func GenerateFullReport(in FullReportInput) Report {
	category := normalizeCategory(in.Category)
	tpl := reportTemplates[category]
	categoryName := CategoryDisplayName(category)

	var b strings.Builder

	if in.Profile != nil {
		age := ageBand(in.Profile.Age)
		occ := occupationInsight(in.Profile.Occupation)
		fmt.Fprintf(&b, "親愛的%s%s，您的%s心理分析報告\n\n", in.Profile.Name, genderTerm(in.Profile.Gender), categoryName)
		fmt.Fprintf(&b, "【個人背景分析】\n")
		fmt.Fprintf(&b, "作為一位%d歲的%s，您在%s方面的整體表現達到了 %d%% 的水準。%s\n%s\n\n",
			in.Profile.Age, occ.description, categoryName, in.Percentage, age.insight, occ.relevance)
	} else {
		fmt.Fprintf(&b, "您的%s心理分析報告\n\n", categoryName)
	}

	fmt.Fprintf(&b, "【整體評估】\n%s\n%s\n\n", in.Tier.Label, tpl.ByRank[in.Tier.Rank])

	fmt.Fprintf(&b, "【維度解析】\n本類別的評估涵蓋以下維度：%s。\n\n", strings.Join(DimensionNames(category), "、"))

	fmt.Fprintf(&b, "【答題模式分析】\n")
	fmt.Fprintf(&b, "在 %d 題作答中，高分選項 %d 題、中間選項 %d 題、低分選項 %d 題。%s\n\n",
		in.Pattern.TotalAnswers, in.Pattern.HighScoreCount, in.Pattern.MediumScoreCount,
		in.Pattern.LowScoreCount, consistencyText[in.Pattern.Consistency])

	fmt.Fprintf(&b, "【專屬建議】\n")
	advice := tpl.AdviceLow
	if in.Tier.Rank >= 4 {
		advice = tpl.AdviceHigh
	}
	for i, a := range advice {
		fmt.Fprintf(&b, "%d. %s\n", i+1, a)
	}

	fmt.Fprintf(&b, "\n此報告僅供參考，如有心理健康疑慮，請諮詢專業心理師。")
	return Report{Variant: ReportFull, Tier: in.Tier, Content: b.String()}
}

func normalizeCategory(c Category) Category {
	if _, ok := reportTemplates[c]; ok {
		return c
	}
	return CategoryAll
}

type ageBandInfo struct {
	group   string
	insight string
}

func ageBand(age int) ageBandInfo {
	switch {
	case age < 25:
		return ageBandInfo{"年輕成人", "在這個人生階段，您正在建立自己的身份認同和生活方式，這是一個充滿可能性的時期。"}
	case age < 35:
		return ageBandInfo{"青年", "您正處於事業和個人關係快速發展的重要階段，平衡各種責任是這個時期的主要挑戰。"}
	case age < 45:
		return ageBandInfo{"中年早期", "您可能正在面對職涯高峰期的挑戰，同時也需要處理家庭和個人成長的多重需求。"}
	case age < 55:
		return ageBandInfo{"中年", "您擁有豐富的人生經驗，這個階段是重新評估和調整人生方向的重要時期。"}
	default:
		return ageBandInfo{"成熟期", "您的人生智慧和經驗是寶貴的資產，這個階段可以更專注於內在成長和人生意義。"}
	}
}

type occupationInfo struct {
	description string
	relevance   string
}

func occupationInsight(occupation string) occupationInfo {
	occ := strings.ToLower(occupation)
	switch {
	case occupation == "":
		return occupationInfo{"專業人士", "無論從事什麼工作，保持心理健康都是維持工作表現和生活品質的關鍵。"}
	case strings.Contains(occ, "教師") || strings.Contains(occ, "老師"):
		return occupationInfo{"教育工作者", "作為教育工作者，您的心理狀態不僅影響自己，也會影響學生的學習和成長，因此自我關照格外重要。"}
	case strings.Contains(occ, "醫") || strings.Contains(occ, "護士"):
		return occupationInfo{"醫療從業人員", "醫療工作的高壓環境要求您具備良好的心理調適能力，關照他人健康的您也需要照顧自己的心理健康。"}
	case strings.Contains(occ, "工程師") || strings.Contains(occ, "程式") || strings.Contains(occ, "科技"):
		return occupationInfo{"科技專業人士", "科技行業的快節奏和持續變化需要良好的適應能力和壓力管理技巧。"}
	case strings.Contains(occ, "主管") || strings.Contains(occ, "經理") || strings.Contains(occ, "管理"):
		return occupationInfo{"管理階層人員", "作為管理者，您的心理狀態會影響整個團隊的氛圍和效能，領導力與心理健康密切相關。"}
	case strings.Contains(occ, "學生"):
		return occupationInfo{"學生", "學習階段是建立健康心理模式的重要時期，這些技能將為您未來的人生奠定基礎。"}
	default:
		return occupationInfo{"專業人士", "在現今快節奏的工作環境中，維持良好的心理狀態是職場成功和個人幸福的重要基石。"}
	}
}

func genderTerm(gender string) string {
	switch gender {
	case "male":
		return "先生"
	case "female":
		return "女士"
	default:
		return ""
	}
}
