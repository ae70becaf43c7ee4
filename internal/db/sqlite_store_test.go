package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindtest-app/mindtest/internal/quizdata"
	"github.com/mindtest-app/mindtest/internal/services"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	sqlDB, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, RunMigrations(sqlDB, ""))
	store, err := NewSQLiteStore(sqlDB)
	require.NoError(t, err)
	return store
}

func testProfile() *services.UserProfile {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &services.UserProfile{
		ID: "profile-1", Name: "測試", Age: 30, Gender: "female",
		Occupation: "教師", CreatedAt: now, UpdatedAt: now,
	}
}

func testSession() *services.TestSession {
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	return &services.TestSession{
		ID:        "session-1",
		ProfileID: "profile-1",
		Category:  services.CategoryWork,
		Answers: services.AnswerSet{
			"work_1": {OptionIndex: 0, Score: 3},
			"work_2": {OptionIndex: 1, Score: 2},
		},
		BasicResult: "基本報告",
		UniqueCode:  "PSY-1748780000000-AAAAAA",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestProfileRoundTrip(t *testing.T) {
	store := newTestStore(t)

	_, err := store.InsertProfile(testProfile())
	require.NoError(t, err)

	got, err := store.GetProfile("profile-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "測試", got.Name)
	assert.Equal(t, 30, got.Age)
	assert.Equal(t, "教師", got.Occupation)
}

func TestGetProfileMissing(t *testing.T) {
	store := newTestStore(t)
	got, err := store.GetProfile("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSeedAndListQuestions(t *testing.T) {
	store := newTestStore(t)
	bank := quizdata.Questions(services.CategoryFamily)

	require.NoError(t, store.SeedQuestions(services.CategoryFamily, bank))
	got, err := store.ListQuestions(services.CategoryFamily)
	require.NoError(t, err)
	require.Len(t, got, len(bank))
	assert.Equal(t, bank[0].ID, got[0].ID)
	assert.Equal(t, bank[0].Options, got[0].Options)

	// reseeding replaces instead of duplicating
	require.NoError(t, store.SeedQuestions(services.CategoryFamily, bank))
	got, err = store.ListQuestions(services.CategoryFamily)
	require.NoError(t, err)
	assert.Len(t, got, len(bank))
}

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	_, err := store.InsertProfile(testProfile())
	require.NoError(t, err)
	_, err = store.InsertSession(testSession())
	require.NoError(t, err)

	got, err := store.GetSession("session-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, services.CategoryWork, got.Category)
	assert.False(t, got.IsPaid)
	assert.Empty(t, got.FullResult)
	assert.Equal(t, 3, got.Answers["work_1"].Score)
}

func TestGetSessionMissing(t *testing.T) {
	store := newTestStore(t)
	got, err := store.GetSession("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMarkSessionPaidOnce(t *testing.T) {
	store := newTestStore(t)
	_, err := store.InsertProfile(testProfile())
	require.NoError(t, err)
	_, err = store.InsertSession(testSession())
	require.NoError(t, err)

	paidAt := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)
	updated, err := store.MarkSessionPaid("session-1", "完整報告", "pay-1", paidAt)
	require.NoError(t, err)
	assert.True(t, updated)

	// second confirmation must not touch the row
	updated, err = store.MarkSessionPaid("session-1", "另一份報告", "pay-2", paidAt.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, updated)

	got, err := store.GetSession("session-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsPaid)
	assert.Equal(t, "完整報告", got.FullResult)
	assert.Equal(t, "pay-1", got.PaymentSessionID)
}

func TestListSessions(t *testing.T) {
	store := newTestStore(t)
	_, err := store.InsertProfile(testProfile())
	require.NoError(t, err)

	first := testSession()
	_, err = store.InsertSession(first)
	require.NoError(t, err)

	second := testSession()
	second.ID = "session-2"
	second.UniqueCode = "PSY-1748780000001-BBBBBB"
	second.Category = services.CategoryFamily
	second.CreatedAt = first.CreatedAt.Add(time.Hour)
	second.UpdatedAt = second.CreatedAt
	_, err = store.InsertSession(second)
	require.NoError(t, err)

	work, err := store.ListSessions(services.CategoryWork)
	require.NoError(t, err)
	assert.Len(t, work, 1)

	all, err := store.ListAllSessions()
	require.NoError(t, err)
	require.Len(t, all, 2)
	// newest first
	assert.Equal(t, "session-2", all[0].ID)
}
