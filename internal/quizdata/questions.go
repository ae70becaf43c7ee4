// Package quizdata holds the built-in question banks. Questions are immutable
// product content; the store is seeded from here at startup.
package quizdata

import "github.com/mindtest-app/mindtest/internal/services"

var familyQuestions = []*services.Question{
	{ID: "family_1", Order: 1, QuestionText: "當家庭成員意見不合時，您通常：", Options: []services.QuestionOption{
		{Text: "主動調解，尋求雙方都能接受的解決方案", Score: 3},
		{Text: "保持中立，讓他們自己解決", Score: 2},
		{Text: "選擇支持其中一方", Score: 1},
	}},
	{ID: "family_2", Order: 2, QuestionText: "面對家庭責任分工時，您的態度是：", Options: []services.QuestionOption{
		{Text: "主動承擔，甚至超出自己的份內工作", Score: 3},
		{Text: "按照分工完成自己的責任", Score: 2},
		{Text: "希望他人能多分擔一些", Score: 1},
	}},
	{ID: "family_4", Order: 3, QuestionText: "當家人遇到困難時，您的反應是：", Options: []services.QuestionOption{
		{Text: "立即提供實質幫助和情感支持", Score: 3},
		{Text: "詢問是否需要幫助，視情況提供協助", Score: 2},
		{Text: "等他們主動求助再考慮如何幫忙", Score: 1},
	}},
	{ID: "family_6", Order: 4, QuestionText: "在家庭決策過程中，您傾向於：", Options: []services.QuestionOption{
		{Text: "積極表達意見並參與討論", Score: 3},
		{Text: "聽取各方意見後再表達看法", Score: 2},
		{Text: "通常接受多數人的決定", Score: 1},
	}},
	{ID: "family_8", Order: 5, QuestionText: "對於家庭中的隱私邊界，您認為：", Options: []services.QuestionOption{
		{Text: "家人之間應該開誠布公，沒有秘密", Score: 1},
		{Text: "適度分享，但保留個人空間", Score: 3},
		{Text: "各自保持獨立，不要過度干涉", Score: 2},
	}},
	{ID: "family_11", Order: 6, QuestionText: "當家庭成員犯錯時，您會：", Options: []services.QuestionOption{
		{Text: "先理解原因，然後給予建議和支持", Score: 3},
		{Text: "指出錯誤，但避免過度責備", Score: 2},
		{Text: "明確表達不滿，希望他們記住教訓", Score: 1},
	}},
	{ID: "family_14", Order: 7, QuestionText: "當需要照顧年邁的父母時，您會：", Options: []services.QuestionOption{
		{Text: "主動承擔照顧責任，調整自己的生活", Score: 3},
		{Text: "與兄弟姊妹分工合作照顧", Score: 2},
		{Text: "提供經濟支持，由專業人員照顧", Score: 1},
	}},
	{ID: "family_16", Order: 8, QuestionText: "對於家庭成員的個人選擇（如職業、伴侶），您：", Options: []services.QuestionOption{
		{Text: "完全尊重並支持他們的決定", Score: 3},
		{Text: "給予建議但尊重最終決定", Score: 2},
		{Text: "會表達自己的期望和要求", Score: 1},
	}},
	{ID: "family_18", Order: 9, QuestionText: "當家庭面臨重大變化時（如搬家、失業），您：", Options: []services.QuestionOption{
		{Text: "積極規劃，幫助家人適應變化", Score: 3},
		{Text: "保持樂觀，相信一切會好轉", Score: 2},
		{Text: "感到焦慮，需要時間適應", Score: 1},
	}},
	{ID: "family_20", Order: 10, QuestionText: "在家庭危機時（如疾病、意外），您的角色是：", Options: []services.QuestionOption{
		{Text: "成為家庭的支柱，協調各種事務", Score: 3},
		{Text: "提供情感支持，分擔部分責任", Score: 2},
		{Text: "配合家人的安排，盡力幫忙", Score: 1},
	}},
	{ID: "family_25", Order: 11, QuestionText: "在家庭中表達愛意的方式，您傾向：", Options: []services.QuestionOption{
		{Text: "經常用言語和行動表達關愛", Score: 3},
		{Text: "通過實際行動展現關心", Score: 2},
		{Text: "認為家人之間不需要太多表達", Score: 1},
	}},
	{ID: "family_30", Order: 12, QuestionText: "您認為理想的家庭關係應該是：", Options: []services.QuestionOption{
		{Text: "親密無間，彼此分享生活的每個細節", Score: 2},
		{Text: "溫暖和諧，既親近又保持適當空間", Score: 3},
		{Text: "相互尊重，各自獨立但適時聚會", Score: 1},
	}},
}

var relationshipQuestions = []*services.Question{
	{ID: "relationship_1", Order: 1, QuestionText: "在戀愛關係中，您最重視：", Options: []services.QuestionOption{
		{Text: "情感的深度連結和心靈契合", Score: 3},
		{Text: "共同的興趣和生活目標", Score: 2},
		{Text: "相互的吸引力和激情", Score: 1},
	}},
	{ID: "relationship_2", Order: 2, QuestionText: "當伴侶情緒低落時，您會：", Options: []services.QuestionOption{
		{Text: "主動關心並提供情感支持", Score: 3},
		{Text: "給他們空間，但表示願意幫忙", Score: 2},
		{Text: "等他們主動分享再提供協助", Score: 1},
	}},
	{ID: "relationship_3", Order: 3, QuestionText: "在處理關係衝突時，您傾向於：", Options: []services.QuestionOption{
		{Text: "立即溝通，盡快解決問題", Score: 3},
		{Text: "冷靜下來後再理性討論", Score: 2},
		{Text: "避免衝突，希望時間能淡化問題", Score: 1},
	}},
	{ID: "relationship_4", Order: 4, QuestionText: "對於伴侶的個人空間，您：", Options: []services.QuestionOption{
		{Text: "完全尊重，給予充分的自由", Score: 3},
		{Text: "理解需要，但希望適度分享", Score: 2},
		{Text: "希望能參與他們生活的各個面向", Score: 1},
	}},
	{ID: "relationship_7", Order: 5, QuestionText: "對於關係中的未來規劃，您：", Options: []services.QuestionOption{
		{Text: "會主動討論並制定共同目標", Score: 3},
		{Text: "有想法但等待合適時機討論", Score: 2},
		{Text: "認為順其自然就好，不用急著規劃", Score: 1},
	}},
	{ID: "relationship_10", Order: 6, QuestionText: "當伴侶犯錯時，您會：", Options: []services.QuestionOption{
		{Text: "先理解原因，然後一起討論解決", Score: 3},
		{Text: "表達不滿但願意原諒", Score: 2},
		{Text: "明確指出錯誤並要求改正", Score: 1},
	}},
	{ID: "relationship_14", Order: 7, QuestionText: "當伴侶需要獨處時，您會：", Options: []services.QuestionOption{
		{Text: "完全理解並給予空間", Score: 3},
		{Text: "雖然有點失落但會尊重", Score: 2},
		{Text: "會想知道原因或感到被忽視", Score: 1},
	}},
	{ID: "relationship_17", Order: 8, QuestionText: "當您感到被忽視時，會：", Options: []services.QuestionOption{
		{Text: "直接表達感受並討論改善方式", Score: 3},
		{Text: "等待適當時機再提起", Score: 2},
		{Text: "用行動暗示或等對方察覺", Score: 1},
	}},
	{ID: "relationship_18", Order: 9, QuestionText: "對於關係中的信任，您認為：", Options: []services.QuestionOption{
		{Text: "是關係的基石，需要持續經營", Score: 3},
		{Text: "很重要，但需要時間建立", Score: 2},
		{Text: "是基本要求，一旦破壞很難修復", Score: 1},
	}},
	{ID: "relationship_22", Order: 10, QuestionText: "在做重要決定時，您會：", Options: []services.QuestionOption{
		{Text: "一定要和伴侶商量並達成共識", Score: 3},
		{Text: "考慮伴侶意見但保留最終決定權", Score: 2},
		{Text: "自己做決定後再告知伴侶", Score: 1},
	}},
	{ID: "relationship_25", Order: 11, QuestionText: "在關係中表達需求時，您：", Options: []services.QuestionOption{
		{Text: "會直接但溫和地表達需要", Score: 3},
		{Text: "會暗示或等待對方察覺", Score: 1},
		{Text: "只在真的很重要時才會說出來", Score: 2},
	}},
	{ID: "relationship_30", Order: 12, QuestionText: "您理想中的關係狀態是：", Options: []services.QuestionOption{
		{Text: "兩人如一體，分享生活的一切", Score: 2},
		{Text: "親密但獨立，既相愛又保持自我", Score: 3},
		{Text: "相互支持但各自有獨立的生活", Score: 1},
	}},
}

var workQuestions = []*services.Question{
	{ID: "work_1", Order: 1, QuestionText: "面對工作壓力時，您的第一反應是：", Options: []services.QuestionOption{
		{Text: "制定計劃，分步驟解決問題", Score: 3},
		{Text: "先處理緊急事務，邊做邊調整", Score: 2},
		{Text: "感到焦慮，需要時間適應", Score: 1},
	}},
	{ID: "work_2", Order: 2, QuestionText: "在團隊合作中，您通常扮演：", Options: []services.QuestionOption{
		{Text: "領導者，主動協調和分配任務", Score: 3},
		{Text: "積極參與者，貢獻想法和執行", Score: 2},
		{Text: "支持者，配合團隊完成工作", Score: 1},
	}},
	{ID: "work_3", Order: 3, QuestionText: "當工作任務超出能力範圍時：", Options: []services.QuestionOption{
		{Text: "主動學習新技能，努力完成挑戰", Score: 3},
		{Text: "尋求協助，與他人合作完成", Score: 2},
		{Text: "坦承困難，請求重新分配任務", Score: 1},
	}},
	{ID: "work_4", Order: 4, QuestionText: "對於工作與生活的平衡，您：", Options: []services.QuestionOption{
		{Text: "嚴格區分，下班後不處理工作", Score: 2},
		{Text: "彈性調整，但優先保障個人時間", Score: 3},
		{Text: "工作為重，必要時會犧牲個人時間", Score: 1},
	}},
	{ID: "work_6", Order: 5, QuestionText: "面對工作上的批評時：", Options: []services.QuestionOption{
		{Text: "虛心接受並積極改進", Score: 3},
		{Text: "分析批評的合理性再決定如何應對", Score: 2},
		{Text: "感到不舒服，但會努力調適", Score: 1},
	}},
	{ID: "work_9", Order: 6, QuestionText: "面對工作中的變化（如制度調整、人事異動）：", Options: []services.QuestionOption{
		{Text: "積極適應，甚至主動推動改變", Score: 3},
		{Text: "保持開放態度，逐步適應新環境", Score: 2},
		{Text: "感到不安，希望維持現狀", Score: 1},
	}},
	{ID: "work_10", Order: 7, QuestionText: "在處理工作衝突時：", Options: []services.QuestionOption{
		{Text: "直接面對，努力找到解決方案", Score: 3},
		{Text: "先了解各方立場再進行協調", Score: 2},
		{Text: "避免捲入，希望由他人解決", Score: 1},
	}},
	{ID: "work_12", Order: 8, QuestionText: "當工作遇到挫折時：", Options: []services.QuestionOption{
		{Text: "分析原因，調整方法繼續努力", Score: 3},
		{Text: "稍作休息後重新投入", Score: 2},
		{Text: "感到沮喪，需要時間恢復動力", Score: 1},
	}},
	{ID: "work_17", Order: 9, QuestionText: "面對不公平的工作分配時：", Options: []services.QuestionOption{
		{Text: "直接與主管溝通，尋求合理解決", Score: 3},
		{Text: "先觀察情況，選擇適當時機反映", Score: 2},
		{Text: "默默承受，避免造成更多問題", Score: 1},
	}},
	{ID: "work_18", Order: 10, QuestionText: "在工作創新方面，您：", Options: []services.QuestionOption{
		{Text: "經常提出新想法和改善建議", Score: 3},
		{Text: "有好想法時會適時分享", Score: 2},
		{Text: "主要執行既定的工作流程", Score: 1},
	}},
	{ID: "work_22", Order: 11, QuestionText: "當需要做困難決定時：", Options: []services.QuestionOption{
		{Text: "收集資訊，分析利弊後決定", Score: 3},
		{Text: "諮詢他人意見，綜合判斷", Score: 2},
		{Text: "依直覺和經驗快速決定", Score: 1},
	}},
	{ID: "work_30", Order: 12, QuestionText: "您理想的工作狀態是：", Options: []services.QuestionOption{
		{Text: "充滿挑戰，持續學習成長", Score: 3},
		{Text: "穩定發展，工作生活平衡", Score: 2},
		{Text: "輕鬆愉快，壓力不要太大", Score: 1},
	}},
}

var personalQuestions = []*services.Question{
	{ID: "personal_1", Order: 1, QuestionText: "在面對重要決定時，您主要依據：", Options: []services.QuestionOption{
		{Text: "理性分析和邏輯思考", Score: 2},
		{Text: "直覺感受和內心聲音", Score: 1},
		{Text: "平衡理性和感性，綜合判斷", Score: 3},
	}},
	{ID: "personal_2", Order: 2, QuestionText: "對於自我反思，您：", Options: []services.QuestionOption{
		{Text: "經常自省，定期檢視自己的行為和想法", Score: 3},
		{Text: "偶爾會思考，特別是遇到問題時", Score: 2},
		{Text: "很少自省，傾向於專注於外在事物", Score: 1},
	}},
	{ID: "personal_3", Order: 3, QuestionText: "面對挫折時，您的思維模式是：", Options: []services.QuestionOption{
		{Text: "尋找教訓和成長機會", Score: 3},
		{Text: "分析失敗原因，避免重蹈覆轍", Score: 2},
		{Text: "感到沮喪，需要時間恢復", Score: 1},
	}},
	{ID: "personal_5", Order: 4, QuestionText: "在學習新事物時，您傾向：", Options: []services.QuestionOption{
		{Text: "深入鑽研，徹底理解原理", Score: 3},
		{Text: "掌握核心概念和實用技巧", Score: 2},
		{Text: "學會基本操作就足夠了", Score: 1},
	}},
	{ID: "personal_7", Order: 5, QuestionText: "在解決問題時，您的思考方式是：", Options: []services.QuestionOption{
		{Text: "系統性分析，從多角度考慮", Score: 3},
		{Text: "直接找核心問題，快速解決", Score: 2},
		{Text: "依賴經驗和直覺判斷", Score: 1},
	}},
	{ID: "personal_9", Order: 6, QuestionText: "面對壓力時，您的應對策略是：", Options: []services.QuestionOption{
		{Text: "分析壓力來源，制定應對計劃", Score: 3},
		{Text: "尋找放鬆方式，調節情緒狀態", Score: 2},
		{Text: "忍耐等待，希望壓力自然消除", Score: 1},
	}},
	{ID: "personal_10", Order: 7, QuestionText: "對於自己的情緒管理：", Options: []services.QuestionOption{
		{Text: "能清楚識別並有效調節情緒", Score: 3},
		{Text: "大多數時候能控制情緒反應", Score: 2},
		{Text: "經常被情緒影響，難以控制", Score: 1},
	}},
	{ID: "personal_14", Order: 8, QuestionText: "對於失敗的看法：", Options: []services.QuestionOption{
		{Text: "是成功路上的必經階段和學習機會", Score: 3},
		{Text: "雖然痛苦但能帶來經驗和成長", Score: 2},
		{Text: "應該盡量避免，會打擊信心", Score: 1},
	}},
	{ID: "personal_17", Order: 9, QuestionText: "面對不確定性時：", Options: []services.QuestionOption{
		{Text: "保持開放心態，視為新機會", Score: 3},
		{Text: "感到些許不安，但會努力適應", Score: 2},
		{Text: "感到焦慮，希望快速獲得確定性", Score: 1},
	}},
	{ID: "personal_18", Order: 10, QuestionText: "對於自己的弱點，您會：", Options: []services.QuestionOption{
		{Text: "誠實面對，制定改善計劃", Score: 3},
		{Text: "接受現實，發揮其他優勢", Score: 2},
		{Text: "避免面對，希望他人不會注意", Score: 1},
	}},
	{ID: "personal_22", Order: 11, QuestionText: "對於自我改變，您的態度是：", Options: []services.QuestionOption{
		{Text: "主動尋求改變，持續自我優化", Score: 3},
		{Text: "在需要時會努力改變", Score: 2},
		{Text: "習慣現狀，不喜歡太大變化", Score: 1},
	}},
	{ID: "personal_30", Order: 12, QuestionText: "您理想中的個人狀態是：", Options: []services.QuestionOption{
		{Text: "內心平靜，持續成長，有明確方向", Score: 3},
		{Text: "生活充實，工作順利，關係和諧", Score: 2},
		{Text: "輕鬆愉快，沒有太多壓力和煩惱", Score: 1},
	}},
}

// combinedPerBank is how many questions each domain bank contributes to the
// combined "all" category.
const combinedPerBank = 3

func combinedQuestions() []*services.Question {
	banks := [][]*services.Question{familyQuestions, relationshipQuestions, workQuestions, personalQuestions}
	out := make([]*services.Question, 0, len(banks)*combinedPerBank)
	order := 1
	for _, bank := range banks {
		for _, q := range bank[:combinedPerBank] {
			cp := *q
			cp.Order = order
			out = append(out, &cp)
			order++
		}
	}
	return out
}

// Questions returns a fresh copy of the bank for a category, ordered by
// display order. Unknown categories fall back to the combined set.
func Questions(category services.Category) []*services.Question {
	var bank []*services.Question
	switch category {
	case services.CategoryFamily:
		bank = familyQuestions
	case services.CategoryRelationship:
		bank = relationshipQuestions
	case services.CategoryWork:
		bank = workQuestions
	case services.CategoryPersonal:
		bank = personalQuestions
	default:
		return combinedQuestions()
	}
	out := make([]*services.Question, 0, len(bank))
	for _, q := range bank {
		cp := *q
		out = append(out, &cp)
	}
	return out
}
