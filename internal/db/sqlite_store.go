package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mindtest-app/mindtest/internal/services"
)

// SQLiteStore backs every service store interface with a single sqlite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (and creates if needed) the sqlite database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return db, nil
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func fromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(b), nil
}

// InsertProfile persists a new profile row.
func (s *SQLiteStore) InsertProfile(p *services.UserProfile) (*services.UserProfile, error) {
	_, err := s.db.Exec(
		`INSERT INTO user_profiles (id, name, age, gender, occupation, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Age, p.Gender, toNullString(p.Occupation), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return p, nil
}

// GetProfile returns (nil, nil) when the profile does not exist.
func (s *SQLiteStore) GetProfile(id string) (*services.UserProfile, error) {
	row := s.db.QueryRow(
		`SELECT id, name, age, gender, occupation, created_at, updated_at
		 FROM user_profiles WHERE id = ?`, id)

	var p services.UserProfile
	var occupation sql.NullString
	err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &occupation, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.Occupation = fromNullString(occupation)
	return &p, nil
}

// SeedQuestions replaces the stored bank for a category.
func (s *SQLiteStore) SeedQuestions(category services.Category, questions []*services.Question) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("seed questions begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM test_questions WHERE category = ?`, string(category)); err != nil {
		return fmt.Errorf("seed questions clear: %w", err)
	}
	for _, q := range questions {
		options, err := encodeJSON(q.Options)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			`INSERT INTO test_questions (category, id, question_text, question_order, options)
			 VALUES (?, ?, ?, ?, ?)`,
			string(category), q.ID, q.QuestionText, q.Order, options,
		); err != nil {
			return fmt.Errorf("seed question %s: %w", q.ID, err)
		}
	}
	return tx.Commit()
}

// ListQuestions returns the ordered bank for a category.
func (s *SQLiteStore) ListQuestions(category services.Category) ([]*services.Question, error) {
	rows, err := s.db.Query(
		`SELECT id, question_text, question_order, options
		 FROM test_questions WHERE category = ? ORDER BY question_order`, string(category))
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var out []*services.Question
	for rows.Next() {
		var q services.Question
		var options string
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.Order, &options); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("decode question options %s: %w", q.ID, err)
		}
		out = append(out, &q)
	}
	return out, rows.Err()
}

// InsertSession persists a freshly scored session.
func (s *SQLiteStore) InsertSession(sess *services.TestSession) (*services.TestSession, error) {
	answers, err := encodeJSON(sess.Answers)
	if err != nil {
		return nil, err
	}
	_, err = s.db.Exec(
		`INSERT INTO test_sessions
		 (id, profile_id, category, answers, basic_result, full_result, unique_code, is_paid, payment_session_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.ProfileID, string(sess.Category), answers, sess.BasicResult,
		toNullString(sess.FullResult), sess.UniqueCode, boolToInt(sess.IsPaid),
		toNullString(sess.PaymentSessionID), sess.CreatedAt, sess.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

// GetSession returns (nil, nil) when the session does not exist.
func (s *SQLiteStore) GetSession(id string) (*services.TestSession, error) {
	row := s.db.QueryRow(
		`SELECT id, profile_id, category, answers, basic_result, full_result, unique_code, is_paid, payment_session_id, created_at, updated_at
		 FROM test_sessions WHERE id = ?`, id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// MarkSessionPaid writes the full report and flips is_paid in one statement
// guarded by is_paid = 0. Returns false when the session was already paid,
// so retries never overwrite the stored report.
func (s *SQLiteStore) MarkSessionPaid(id, fullResult, paymentSessionID string, paidAt time.Time) (bool, error) {
	res, err := s.db.Exec(
		`UPDATE test_sessions
		 SET full_result = ?, is_paid = 1, payment_session_id = ?, updated_at = ?
		 WHERE id = ? AND is_paid = 0`,
		fullResult, toNullString(paymentSessionID), paidAt, id,
	)
	if err != nil {
		return false, fmt.Errorf("mark session paid: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark session paid rows: %w", err)
	}
	return n > 0, nil
}

// ListSessions returns every session of a category, newest first.
func (s *SQLiteStore) ListSessions(category services.Category) ([]*services.TestSession, error) {
	rows, err := s.db.Query(
		`SELECT id, profile_id, category, answers, basic_result, full_result, unique_code, is_paid, payment_session_id, created_at, updated_at
		 FROM test_sessions WHERE category = ? ORDER BY created_at DESC`, string(category))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []*services.TestSession
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

// ListAllSessions returns every stored session, newest first.
func (s *SQLiteStore) ListAllSessions() ([]*services.TestSession, error) {
	rows, err := s.db.Query(
		`SELECT id, profile_id, category, answers, basic_result, full_result, unique_code, is_paid, payment_session_id, created_at, updated_at
		 FROM test_sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all sessions: %w", err)
	}
	defer rows.Close()

	var out []*services.TestSession
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(r rowScanner) (*services.TestSession, error) {
	var sess services.TestSession
	var category, answers string
	var fullResult, paymentSessionID sql.NullString
	var isPaid int
	if err := r.Scan(&sess.ID, &sess.ProfileID, &category, &answers, &sess.BasicResult,
		&fullResult, &sess.UniqueCode, &isPaid, &paymentSessionID, &sess.CreatedAt, &sess.UpdatedAt); err != nil {
		return nil, err
	}
	sess.Category = services.Category(category)
	sess.FullResult = fromNullString(fullResult)
	sess.PaymentSessionID = fromNullString(paymentSessionID)
	sess.IsPaid = isPaid != 0
	if err := json.Unmarshal([]byte(answers), &sess.Answers); err != nil {
		return nil, fmt.Errorf("decode session answers: %w", err)
	}
	return &sess, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
