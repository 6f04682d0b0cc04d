package analytics

import (
	"strconv"
	"strings"
	"time"

	"github.com/moodloom/backend/internal/models"
)

// Export formats.
const (
	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
)

// csvHeader is the fixed column layout of a CSV export.
var csvHeader = []string{
	"ID", "Feeling", "Intensity", "Context", "Triggers", "Notes", "Location",
	"Weather", "Activity", "Social Context", "Energy Level", "Stress Level",
	"Sleep Quality", "Mood Duration (minutes)", "Mood Change Reason", "Created At",
}

// BuildExport assembles the JSON export envelope for a user's mood history.
func BuildExport(userID string, now time.Time, days int, records []models.MoodRecord) models.MoodExport {
	if records == nil {
		records = []models.MoodRecord{}
	}
	return models.MoodExport{
		UserID:       userID,
		ExportDate:   now,
		DateRange:    models.DateRange{Start: now.AddDate(0, 0, -days), End: now},
		TotalEntries: len(records),
		Data:         records,
	}
}

// RenderCSV renders mood records as CSV text with the fixed 16-column
// header. Every data field is wrapped in double quotes; embedded quotes are
// not escaped, which is a known limitation of the format. Triggers are
// joined with ";" and CreatedAt is rendered as RFC 3339.
func RenderCSV(records []models.MoodRecord) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	b.WriteString("\n")

	for _, record := range records {
		fields := []string{
			record.ID,
			record.Feeling,
			optionalInt(record.Intensity),
			optionalString(record.Context),
			strings.Join(record.Triggers, ";"),
			optionalString(record.Notes),
			optionalString(record.Location),
			optionalString(record.Weather),
			optionalString(record.Activity),
			optionalString(record.SocialContext),
			optionalInt(record.EnergyLevel),
			optionalInt(record.StressLevel),
			optionalInt(record.SleepQuality),
			optionalInt(record.DurationMinutes),
			optionalString(record.ChangeReason),
			record.CreatedAt.Format(time.RFC3339),
		}

		quoted := make([]string, len(fields))
		for i, field := range fields {
			// Plain concatenation, not %q: embedded quotes stay unescaped.
			quoted[i] = `"` + field + `"`
		}
		b.WriteString(strings.Join(quoted, ","))
		b.WriteString("\n")
	}

	return b.String()
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
