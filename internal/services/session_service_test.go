package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mindtest-app/mindtest/internal/cache"
)

type stubSessionStore struct {
	profiles     map[string]*UserProfile
	questions    map[Category][]*Question
	sessions     map[string]*TestSession
	sessionReads int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{
		profiles:  map[string]*UserProfile{},
		questions: map[Category][]*Question{},
		sessions:  map[string]*TestSession{},
	}
}

func (s *stubSessionStore) GetProfile(id string) (*UserProfile, error) {
	return s.profiles[id], nil
}

func (s *stubSessionStore) ListQuestions(category Category) ([]*Question, error) {
	return s.questions[category], nil
}

func (s *stubSessionStore) InsertSession(sess *TestSession) (*TestSession, error) {
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *stubSessionStore) GetSession(id string) (*TestSession, error) {
	s.sessionReads++
	return s.sessions[id], nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(nopWriter{})
	return log
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTestSessionService(store SessionStore, storage cache.Storage) *SessionService {
	svc := NewSessionService(store, storage, DefaultTierBands(), quietLogger())
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "session-1" }
	svc.newCode = func() string { return "PSY-1748779200000-ABC123" }
	return svc
}

func seedSessionStore(store *stubSessionStore) {
	store.profiles["profile-1"] = &UserProfile{ID: "profile-1", Name: "測試", Age: 30, Gender: "female"}
	store.questions[CategoryWork] = makeQuestions("q1", "q2", "q3")
}

func TestSaveSession(t *testing.T) {
	store := newStubSessionStore()
	seedSessionStore(store)
	svc := newTestSessionService(store, cache.NewMemoryStorage())

	answers := AnswerSet{
		"q1": {OptionIndex: 0, Score: 3},
		"q2": {OptionIndex: 0, Score: 3},
		"q3": {OptionIndex: 1, Score: 2},
	}
	session, scored, err := svc.SaveSession(context.Background(), "profile-1", CategoryWork, answers)
	if err != nil {
		t.Fatalf("SaveSession returned error: %v", err)
	}
	// 8/9 = 88.9 rounds to 89
	if scored.Percentage != 89 {
		t.Errorf("Percentage = %d, want 89", scored.Percentage)
	}
	if session.UniqueCode != "PSY-1748779200000-ABC123" {
		t.Errorf("UniqueCode = %q", session.UniqueCode)
	}
	if session.IsPaid {
		t.Error("new session must start unpaid")
	}
	if strings.TrimSpace(session.BasicResult) == "" {
		t.Error("basic result missing")
	}
	if session.FullResult != "" {
		t.Error("full result must be empty before payment")
	}
	if _, ok := store.sessions["session-1"]; !ok {
		t.Error("session not persisted")
	}
}

func TestSaveSessionValidation(t *testing.T) {
	store := newStubSessionStore()
	seedSessionStore(store)
	svc := newTestSessionService(store, nil)

	if _, _, err := svc.SaveSession(context.Background(), "profile-1", CategoryWork, AnswerSet{}); !IsValidation(err) {
		t.Errorf("empty answers: error = %v, want validation", err)
	}
	if _, _, err := svc.SaveSession(context.Background(), "", CategoryWork, AnswerSet{"q1": {Score: 1}}); !IsValidation(err) {
		t.Errorf("blank profile id: error = %v, want validation", err)
	}
}

func TestSaveSessionMissingProfile(t *testing.T) {
	store := newStubSessionStore()
	store.questions[CategoryWork] = makeQuestions("q1")
	svc := newTestSessionService(store, nil)

	_, _, err := svc.SaveSession(context.Background(), "nobody", CategoryWork, AnswerSet{"q1": {Score: 1}})
	if !IsNotFound(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestSaveSessionMissingQuestions(t *testing.T) {
	store := newStubSessionStore()
	store.profiles["profile-1"] = &UserProfile{ID: "profile-1"}
	svc := newTestSessionService(store, nil)

	_, _, err := svc.SaveSession(context.Background(), "profile-1", CategoryFamily, AnswerSet{"q1": {Score: 1}})
	if !IsNotFound(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestGetSessionReadThroughCache(t *testing.T) {
	store := newStubSessionStore()
	seedSessionStore(store)
	storage := cache.NewMemoryStorage()
	svc := newTestSessionService(store, storage)

	answers := AnswerSet{"q1": {Score: 3}, "q2": {Score: 2}, "q3": {Score: 2}}
	if _, _, err := svc.SaveSession(context.Background(), "profile-1", CategoryWork, answers); err != nil {
		t.Fatalf("SaveSession returned error: %v", err)
	}

	reads := store.sessionReads
	got, err := svc.GetSession(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("GetSession returned error: %v", err)
	}
	if got.ID != "session-1" {
		t.Errorf("ID = %q, want session-1", got.ID)
	}
	if store.sessionReads != reads {
		t.Errorf("GetSession hit the store %d extra times, want cache hit", store.sessionReads-reads)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	svc := newTestSessionService(newStubSessionStore(), nil)
	_, err := svc.GetSession(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestSessionBreakdown(t *testing.T) {
	store := newStubSessionStore()
	seedSessionStore(store)
	svc := newTestSessionService(store, nil)

	answers := AnswerSet{"q1": {Score: 3}, "q2": {Score: 3}, "q3": {Score: 3}}
	if _, _, err := svc.SaveSession(context.Background(), "profile-1", CategoryWork, answers); err != nil {
		t.Fatalf("SaveSession returned error: %v", err)
	}

	out, err := svc.SessionBreakdown(context.Background(), "session-1", false)
	if err != nil {
		t.Fatalf("SessionBreakdown returned error: %v", err)
	}
	if len(out) != len(DimensionNames(CategoryWork)) {
		t.Errorf("dimensions = %d, want %d", len(out), len(DimensionNames(CategoryWork)))
	}
}
