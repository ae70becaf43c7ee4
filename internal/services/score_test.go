package services

import "testing"

func makeQuestions(ids ...string) []*Question {
	qs := make([]*Question, 0, len(ids))
	for i, id := range ids {
		qs = append(qs, &Question{
			ID:           id,
			QuestionText: "題目 " + id,
			Order:        i + 1,
			Options: []QuestionOption{
				{Text: "經常", Score: 3},
				{Text: "偶爾", Score: 2},
				{Text: "很少", Score: 1},
			},
		})
	}
	return qs
}

func TestScore(t *testing.T) {
	questions := makeQuestions("q1", "q2")
	answers := AnswerSet{
		"q1": {OptionIndex: 0, Score: 3},
		"q2": {OptionIndex: 1, Score: 2},
	}

	got, err := Score(answers, questions)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if got.TotalScore != 5 {
		t.Errorf("TotalScore = %d, want 5", got.TotalScore)
	}
	if got.MaxScore != 6 {
		t.Errorf("MaxScore = %d, want 6", got.MaxScore)
	}
	// 5/6 = 83.33..., rounds to 83
	if got.Percentage != 83 {
		t.Errorf("Percentage = %d, want 83", got.Percentage)
	}
}

func TestScoreRoundsHalfUp(t *testing.T) {
	// 2 questions, total 3 of 6 = exactly 50
	questions := makeQuestions("q1", "q2")
	answers := AnswerSet{
		"q1": {Score: 2},
		"q2": {Score: 1},
	}
	got, err := Score(answers, questions)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if got.Percentage != 50 {
		t.Errorf("Percentage = %d, want 50", got.Percentage)
	}
}

func TestScoreBounds(t *testing.T) {
	questions := makeQuestions("q1", "q2", "q3")

	allHigh := AnswerSet{"q1": {Score: 3}, "q2": {Score: 3}, "q3": {Score: 3}}
	got, err := Score(allHigh, questions)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if got.Percentage != 100 {
		t.Errorf("all-high Percentage = %d, want 100", got.Percentage)
	}

	allLow := AnswerSet{"q1": {Score: 1}, "q2": {Score: 1}, "q3": {Score: 1}}
	got, err = Score(allLow, questions)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if got.Percentage != 33 {
		t.Errorf("all-low Percentage = %d, want 33", got.Percentage)
	}
}

func TestScoreRejectsEmptyAnswers(t *testing.T) {
	_, err := Score(AnswerSet{}, makeQuestions("q1"))
	if err == nil {
		t.Fatal("Score accepted empty answers")
	}
	if !IsValidation(err) {
		t.Errorf("error code = %v, want validation", err)
	}
}

func TestScoreRejectsEmptyQuestions(t *testing.T) {
	_, err := Score(AnswerSet{"q1": {Score: 2}}, nil)
	if err == nil {
		t.Fatal("Score accepted empty question list")
	}
	if !IsValidation(err) {
		t.Errorf("error code = %v, want validation", err)
	}
}

func TestScoreRejectsMissingAnswer(t *testing.T) {
	questions := makeQuestions("q1", "q2")
	_, err := Score(AnswerSet{"q1": {Score: 3}}, questions)
	if err == nil {
		t.Fatal("Score accepted incomplete answers")
	}
	if !IsValidation(err) {
		t.Errorf("error code = %v, want validation", err)
	}
}

func TestScoreTrustsCapturedWeight(t *testing.T) {
	// a weight that no longer matches the option table is still counted
	questions := makeQuestions("q1")
	got, err := Score(AnswerSet{"q1": {OptionIndex: 2, Score: 3}}, questions)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if got.TotalScore != 3 {
		t.Errorf("TotalScore = %d, want 3", got.TotalScore)
	}
}
