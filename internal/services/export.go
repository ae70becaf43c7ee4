package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"
)

// ExportRow is one session flattened for CSV export.
type ExportRow struct {
	UniqueCode string
	Category   Category
	Percentage int
	Tier       string
	IsPaid     bool
	CreatedAt  string
}

// BuildExportRows flattens sessions into export rows; the percentage is
// recomputed from the stored answer weights.
func BuildExportRows(sessions []*TestSession, bands TierBands) []ExportRow {
	rows := make([]ExportRow, 0, len(sessions))
	for _, sess := range sessions {
		pct := sessionPercentage(sess.Answers)
		rows = append(rows, ExportRow{
			UniqueCode: sess.UniqueCode,
			Category:   sess.Category,
			Percentage: pct,
			Tier:       bands.Classify(pct).Label,
			IsPaid:     sess.IsPaid,
			CreatedAt:  sess.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows
}

// ExportSessionsCSV renders export rows as CSV with a header line.
func ExportSessionsCSV(rows []ExportRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"unique_code", "category", "percentage", "tier", "is_paid", "created_at"})
	for _, r := range rows {
		rec := []string{
			r.UniqueCode,
			string(r.Category),
			strconv.Itoa(r.Percentage),
			r.Tier,
			strconv.FormatBool(r.IsPaid),
			r.CreatedAt,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
