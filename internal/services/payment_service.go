package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mindtest-app/mindtest/internal/cache"
)

// PaymentStore is the session persistence the payment-confirmation path
// needs. MarkSessionPaid must flip is_paid and write the full report in one
// statement guarded by is_paid=false, so retries generate at most once.
type PaymentStore interface {
	GetSession(id string) (*TestSession, error)
	GetProfile(id string) (*UserProfile, error)
	MarkSessionPaid(id, fullResult, paymentSessionID string, paidAt time.Time) (bool, error)
}

// NarrativeRequest carries everything the optional external narrative
// service is given.
type NarrativeRequest struct {
	Profile    UserProfile   `json:"profile"`
	Category   Category      `json:"category"`
	Percentage int           `json:"percentage"`
	Pattern    AnswerPattern `json:"pattern"`
}

// NarrativeClient is the optional external report-enhancement service. It is
// best-effort: any error is masked by the deterministic template path.
type NarrativeClient interface {
	GenerateReport(ctx context.Context, req NarrativeRequest) (string, error)
}

// Sessions stored before answers were mandatory carry none; score them
// neutrally rather than failing the unlock.
const fallbackPercentage = 75

const defaultNarrativeTimeout = 8 * time.Second

// PaymentService produces and persists the full report exactly once per
// session after payment confirmation.
type PaymentService struct {
	store      PaymentStore
	narrative  NarrativeClient
	cache      cache.Storage
	bands      TierBands
	log        *logrus.Logger
	timeout    time.Duration
	now        func() time.Time
	onFallback func()
}

func NewPaymentService(store PaymentStore, narrative NarrativeClient, storage cache.Storage, bands TierBands, log *logrus.Logger) *PaymentService {
	return &PaymentService{
		store:     store,
		narrative: narrative,
		cache:     storage,
		bands:     bands,
		log:       log,
		timeout:   defaultNarrativeTimeout,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetNarrativeTimeout bounds the external narrative call.
func (s *PaymentService) SetNarrativeTimeout(d time.Duration) {
	if d > 0 {
		s.timeout = d
	}
}

// OnNarrativeFallback registers a hook fired whenever the external service
// fails and the deterministic template is used instead.
func (s *PaymentService) OnNarrativeFallback(fn func()) { s.onFallback = fn }

// ConfirmPayment unlocks the full report for a session. Confirming an
// already-paid session is a no-op that returns the existing record.
func (s *PaymentService) ConfirmPayment(ctx context.Context, sessionID, paymentSessionID string) (*TestSession, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, NewValidationError("缺少測驗編號")
	}

	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, NewNotFoundError("找不到測驗結果")
	}
	if session.IsPaid {
		return session, nil
	}

	profile, err := s.store.GetProfile(session.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, NewNotFoundError("找不到用戶資料")
	}

	percentage := sessionPercentage(session.Answers)
	pattern := AnalyzePattern(session.Answers)
	tier := s.bands.Classify(percentage)

	fullResult := s.generateFullResult(ctx, NarrativeRequest{
		Profile:    *profile,
		Category:   session.Category,
		Percentage: percentage,
		Pattern:    pattern,
	}, tier)

	updated, err := s.store.MarkSessionPaid(session.ID, fullResult, paymentSessionID, s.now())
	if err != nil {
		return nil, err
	}
	if !updated && s.log != nil {
		// lost the race to a concurrent confirmation; the stored report wins
		s.log.WithField("session_id", session.ID).Info("payment already confirmed elsewhere")
	}

	refreshed, err := s.store.GetSession(session.ID)
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		return nil, NewNotFoundError("找不到測驗結果")
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, sessionCachePrefix+session.ID); err != nil && s.log != nil {
			s.log.WithError(err).WithField("session_id", session.ID).Warn("session cache invalidation failed")
		}
	}
	return refreshed, nil
}

func (s *PaymentService) generateFullResult(ctx context.Context, req NarrativeRequest, tier Tier) string {
	if s.narrative != nil {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		text, err := s.narrative.GenerateReport(callCtx, req)
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
		if s.log != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"category":   req.Category,
				"percentage": req.Percentage,
			}).Warn("narrative service failed, using template report")
		}
		if s.onFallback != nil {
			s.onFallback()
		}
	}

	return GenerateFullReport(FullReportInput{
		Percentage: req.Percentage,
		Category:   req.Category,
		Tier:       tier,
		Profile:    &req.Profile,
		Pattern:    req.Pattern,
	}).Content
}

func sessionPercentage(answers AnswerSet) int {
	if len(answers) == 0 {
		return fallbackPercentage
	}
	total := 0
	for _, a := range answers {
		total += a.Score
	}
	maxScore := len(answers) * MaxOptionWeight
	return clampPercent(int(math.Round(float64(total) / float64(maxScore) * 100)))
}
