package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/moodloom/backend/internal/models"
)

func TestBuildExport(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		record("happy", intPtr(7), now.Add(-time.Hour)),
	}

	export := BuildExport("user-1", now, 30, records)

	if export.UserID != "user-1" {
		t.Errorf("user id = %q", export.UserID)
	}
	if !export.ExportDate.Equal(now) {
		t.Errorf("export date = %v, want %v", export.ExportDate, now)
	}
	if !export.DateRange.Start.Equal(now.AddDate(0, 0, -30)) || !export.DateRange.End.Equal(now) {
		t.Errorf("unexpected date range: %+v", export.DateRange)
	}
	if export.TotalEntries != 1 || len(export.Data) != 1 {
		t.Errorf("total = %d, data = %d", export.TotalEntries, len(export.Data))
	}
}

func TestBuildExportNilRecords(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	export := BuildExport("user-1", now, 30, nil)

	if export.Data == nil {
		t.Error("data should serialize as [] rather than null")
	}
	if export.TotalEntries != 0 {
		t.Errorf("total = %d, want 0", export.TotalEntries)
	}
}

func TestRenderCSVHeader(t *testing.T) {
	out := RenderCSV(nil)

	wantHeader := "ID,Feeling,Intensity,Context,Triggers,Notes,Location,Weather,Activity,Social Context,Energy Level,Stress Level,Sleep Quality,Mood Duration (minutes),Mood Change Reason,Created At"
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 || lines[0] != wantHeader {
		t.Errorf("unexpected header output: %q", out)
	}
}

func TestRenderCSVRow(t *testing.T) {
	createdAt := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	notes := "long day"
	records := []models.MoodRecord{
		{
			ID:        "mood-1",
			UserID:    "user-1",
			Feeling:   "tired",
			Intensity: intPtr(6),
			Triggers:  []string{"work", "sleep"},
			Notes:     &notes,
			CreatedAt: createdAt,
		},
	}

	out := RenderCSV(records)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}

	row := lines[1]
	// Triggers join with ";" inside one quoted field.
	if !strings.Contains(row, `"work;sleep"`) {
		t.Errorf("row missing joined triggers: %q", row)
	}
	if !strings.Contains(row, `"mood-1"`) || !strings.Contains(row, `"tired"`) || !strings.Contains(row, `"6"`) {
		t.Errorf("row missing quoted fields: %q", row)
	}
	if !strings.HasSuffix(row, `"2025-06-10T14:30:00Z"`) {
		t.Errorf("row should end with RFC 3339 timestamp: %q", row)
	}
	if got := strings.Count(row, ","); got < 15 {
		t.Errorf("expected at least 15 field separators, got %d in %q", got, row)
	}
}

func TestRenderCSVMissingOptionalsAreEmptyQuotes(t *testing.T) {
	records := []models.MoodRecord{
		{ID: "mood-2", Feeling: "calm", CreatedAt: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)},
	}

	out := RenderCSV(records)

	row := strings.Split(strings.TrimRight(out, "\n"), "\n")[1]
	if !strings.Contains(row, `"",""`) {
		t.Errorf("missing optionals should render as empty quoted fields: %q", row)
	}
}

func TestRenderCSVDoesNotEscapeQuotes(t *testing.T) {
	notes := `said "fine"`
	records := []models.MoodRecord{
		{ID: "mood-3", Feeling: "flat", Notes: &notes, CreatedAt: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)},
	}

	out := RenderCSV(records)

	if !strings.Contains(out, `"said "fine""`) {
		t.Errorf("embedded quotes must pass through unescaped: %q", out)
	}
}
