package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"
)

func TestBuildExportRows(t *testing.T) {
	created := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	sessions := []*TestSession{
		{
			UniqueCode: "PSY-1-AAAAAA",
			Category:   CategoryWork,
			Answers:    AnswerSet{"q1": {Score: 3}, "q2": {Score: 3}},
			IsPaid:     true,
			CreatedAt:  created,
		},
		{
			UniqueCode: "PSY-2-BBBBBB",
			Category:   CategoryFamily,
			Answers:    AnswerSet{"q1": {Score: 1}, "q2": {Score: 1}},
			CreatedAt:  created,
		},
	}

	rows := BuildExportRows(sessions, DefaultTierBands())
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Percentage != 100 || rows[0].Tier != "心理狀態極佳" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Percentage != 33 || rows[1].Tier != "建議專業諮詢" {
		t.Errorf("row 1 = %+v", rows[1])
	}
	if rows[0].CreatedAt != "2025-06-01T08:30:00Z" {
		t.Errorf("CreatedAt = %q", rows[0].CreatedAt)
	}
}

func TestExportSessionsCSV(t *testing.T) {
	rows := []ExportRow{
		{UniqueCode: "PSY-1-AAAAAA", Category: CategoryWork, Percentage: 88,
			Tier: "心理狀態極佳", IsPaid: true, CreatedAt: "2025-06-01T08:30:00Z"},
	}
	out, err := ExportSessionsCSV(rows)
	if err != nil {
		t.Fatalf("ExportSessionsCSV returned error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want header + 1 row", len(records))
	}
	wantHeader := []string{"unique_code", "category", "percentage", "tier", "is_paid", "created_at"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
	if records[1][0] != "PSY-1-AAAAAA" || records[1][2] != "88" || records[1][4] != "true" {
		t.Errorf("row = %v", records[1])
	}
}

func TestExportSessionsCSVEmpty(t *testing.T) {
	out, err := ExportSessionsCSV(nil)
	if err != nil {
		t.Fatalf("ExportSessionsCSV returned error: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("records = %d, want header only", len(records))
	}
}
