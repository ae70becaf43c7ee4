package services

// QuestionStore is the read-only question bank boundary.
type QuestionStore interface {
	ListQuestions(category Category) ([]*Question, error)
}

type QuestionService struct {
	store QuestionStore
}

func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{store: store}
}

// List returns the ordered question list for a category.
func (s *QuestionService) List(category Category) ([]*Question, error) {
	questions, err := s.store.ListQuestions(category)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, NewNotFoundError("找不到測驗題目")
	}
	return questions, nil
}
