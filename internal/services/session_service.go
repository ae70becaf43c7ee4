package services

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mindtest-app/mindtest/internal/cache"
	"github.com/mindtest-app/mindtest/internal/utils"
)

// SessionStore abstracts persistence for the quiz submission workflow.
// Missing records come back as (nil, nil).
type SessionStore interface {
	GetProfile(id string) (*UserProfile, error)
	ListQuestions(category Category) ([]*Question, error)
	InsertSession(s *TestSession) (*TestSession, error)
	GetSession(id string) (*TestSession, error)
}

const (
	sessionCachePrefix = "session:"
	sessionCacheTTL    = 15 * time.Minute
	codePrefix         = "PSY"
)

// SessionService hosts the submission and retrieval workflow: validate,
// score, render the basic report, persist.
type SessionService struct {
	store   SessionStore
	cache   cache.Storage
	bands   TierBands
	log     *logrus.Logger
	now     func() time.Time
	newID   func() string
	newCode func() string
}

func NewSessionService(store SessionStore, storage cache.Storage, bands TierBands, log *logrus.Logger) *SessionService {
	return &SessionService{
		store:   store,
		cache:   storage,
		bands:   bands,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") },
		newCode: func() string { return utils.GenerateUniqueCode(codePrefix) },
	}
}

// SaveSession validates the completed answer set, scores it against the
// category's question list and persists the session with its basic report
// and unique code. Category and answers are write-once.
func (s *SessionService) SaveSession(ctx context.Context, profileID string, category Category, answers AnswerSet) (*TestSession, *ScoredResult, error) {
	if len(answers) == 0 {
		return nil, nil, NewValidationError("測驗答案不能為空")
	}
	if strings.TrimSpace(profileID) == "" {
		return nil, nil, NewValidationError("用戶資料錯誤")
	}

	profile, err := s.store.GetProfile(profileID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, NewNotFoundError("找不到用戶資料")
	}

	questions, err := s.store.ListQuestions(category)
	if err != nil {
		return nil, nil, err
	}
	if len(questions) == 0 {
		return nil, nil, NewNotFoundError("找不到測驗題目")
	}

	scored, err := Score(answers, questions)
	if err != nil {
		return nil, nil, err
	}

	basic := GenerateBasicReport(scored.Percentage, category, s.bands)
	now := s.now()
	session := &TestSession{
		ID:          s.newID(),
		ProfileID:   profile.ID,
		Category:    category,
		Answers:     answers,
		BasicResult: basic.Content,
		UniqueCode:  s.newCode(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	stored, err := s.store.InsertSession(session)
	if err != nil {
		return nil, nil, err
	}
	s.cacheSession(ctx, stored)
	return stored, scored, nil
}

// GetSession reads through the cache to the store.
func (s *SessionService) GetSession(ctx context.Context, id string) (*TestSession, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("缺少測驗編號")
	}

	if s.cache != nil {
		if raw, ok, err := s.cache.Read(ctx, sessionCachePrefix+id); err == nil && ok {
			var cached TestSession
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	session, err := s.store.GetSession(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, NewNotFoundError("找不到測驗結果")
	}
	s.cacheSession(ctx, session)
	return session, nil
}

// SessionBreakdown returns the radar-chart dimensions for a stored session.
// demo enables the cosmetic jitter; it is off by default.
func (s *SessionService) SessionBreakdown(ctx context.Context, id string, demo bool) ([]DimensionScore, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	opts := BreakdownOptions{}
	if demo {
		opts.Jitter = true
		opts.Rand = rand.New(rand.NewSource(s.now().UnixNano()))
	}
	return Breakdown(session.Answers, session.Category, opts)
}

func (s *SessionService) cacheSession(ctx context.Context, session *TestSession) {
	if s.cache == nil || session == nil {
		return
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return
	}
	if err := s.cache.Write(ctx, sessionCachePrefix+session.ID, string(raw), sessionCacheTTL); err != nil && s.log != nil {
		s.log.WithError(err).WithField("session_id", session.ID).Warn("session cache write failed")
	}
}
