package services

import "time"

// Category selects which question bank a quiz session runs against.
// It is chosen once before scoring and fixed for the session's lifetime.
type Category string

const (
	CategoryFamily       Category = "family"
	CategoryRelationship Category = "relationship"
	CategoryWork         Category = "work"
	CategoryPersonal     Category = "personal"
	CategoryAll          Category = "all"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryFamily,
	CategoryRelationship,
	CategoryWork,
	CategoryPersonal,
	CategoryAll,
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", NewValidationError("未知的測驗類別: " + s)
}

// QuestionOption pairs an option text with its score weight (1..3).
type QuestionOption struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// Question is immutable once defined and belongs to one category bank.
type Question struct {
	ID           string           `json:"id"`
	QuestionText string           `json:"question_text"`
	Order        int              `json:"question_order"`
	Options      []QuestionOption `json:"options"`
}

// Answer records the chosen option for a question. The score weight is
// captured at answer time and trusted afterwards.
type Answer struct {
	OptionIndex int `json:"optionIndex"`
	Score       int `json:"score"`
}

// AnswerSet maps question id to the chosen answer. A finalized set covers
// every question of the session's category exactly once.
type AnswerSet map[string]Answer

// UserProfile holds the personal-info form data for an anonymous respondent.
type UserProfile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Occupation string    `json:"occupation,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TestSession is the persisted record of one completed quiz.
// BasicResult is written at creation; FullResult only after payment.
type TestSession struct {
	ID               string    `json:"id"`
	ProfileID        string    `json:"profile_id"`
	Category         Category  `json:"category"`
	Answers          AnswerSet `json:"answers"`
	BasicResult      string    `json:"basic_result"`
	FullResult       string    `json:"full_result,omitempty"`
	UniqueCode       string    `json:"unique_code"`
	IsPaid           bool      `json:"is_paid"`
	PaymentSessionID string    `json:"payment_session_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
