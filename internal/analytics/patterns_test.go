package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/moodloom/backend/internal/models"
)

func intPtr(n int) *int { return &n }

func record(feeling string, intensity *int, createdAt time.Time) models.MoodRecord {
	return models.MoodRecord{
		UserID:    "user-1",
		Feeling:   feeling,
		Intensity: intensity,
		CreatedAt: createdAt,
	}
}

func TestExtractPatternsEmpty(t *testing.T) {
	patterns := ExtractPatterns(nil)
	if patterns == nil || len(patterns) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", patterns)
	}
}

func TestExtractPatternsSingleMood(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) // a Monday morning
	records := make([]models.MoodRecord, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, record("happy", intPtr(8), base.Add(time.Duration(i)*time.Hour)))
	}

	patterns := ExtractPatterns(records)

	if len(patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(patterns))
	}
	p := patterns[0]
	if p.Mood != "happy" {
		t.Errorf("mood = %q, want happy", p.Mood)
	}
	if p.Frequency != 10 {
		t.Errorf("frequency = %d, want 10", p.Frequency)
	}
	if p.AverageIntensity != 8 {
		t.Errorf("average intensity = %d, want 8", p.AverageIntensity)
	}
}

func TestExtractPatternsUsesLastRecordForBuckets(t *testing.T) {
	// Records arrive out of order; the chronologically last one (an
	// evening Friday entry) must supply the buckets.
	records := []models.MoodRecord{
		record("calm", intPtr(5), time.Date(2025, 6, 6, 20, 0, 0, 0, time.UTC)), // Friday evening
		record("calm", intPtr(5), time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)),  // Monday morning
	}

	patterns := ExtractPatterns(records)

	if len(patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(patterns))
	}
	if patterns[0].TimeOfDay != "Evening (6PM-12AM)" {
		t.Errorf("time of day = %q, want evening bucket", patterns[0].TimeOfDay)
	}
	if patterns[0].DayOfWeek != "Friday" {
		t.Errorf("day of week = %q, want Friday", patterns[0].DayOfWeek)
	}
}

func TestExtractPatternsCaseSensitiveMoods(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		record("Happy", intPtr(6), now),
		record("happy", intPtr(6), now.Add(time.Hour)),
	}

	patterns := ExtractPatterns(records)

	if len(patterns) != 2 {
		t.Fatalf("expected 2 patterns for distinct casings, got %d", len(patterns))
	}
}

func TestExtractPatternsMissingIntensityDefaults(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		record("tired", nil, now),
		record("tired", intPtr(9), now.Add(time.Hour)),
	}

	patterns := ExtractPatterns(records)

	// (5 + 9) / 2 = 7
	if patterns[0].AverageIntensity != 7 {
		t.Errorf("average intensity = %d, want 7", patterns[0].AverageIntensity)
	}
}

func TestExtractPatternsDurationDilution(t *testing.T) {
	// One record has a 60-minute duration, the other none. The missing
	// value counts as zero, so the average is 30, not 60.
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		{UserID: "user-1", Feeling: "focused", DurationMinutes: intPtr(60), CreatedAt: now},
		{UserID: "user-1", Feeling: "focused", CreatedAt: now.Add(time.Hour)},
	}

	patterns := ExtractPatterns(records)

	if patterns[0].AverageDuration != 30 {
		t.Errorf("average duration = %d, want 30", patterns[0].AverageDuration)
	}
}

func TestExtractPatternsTopTriggers(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		{UserID: "user-1", Feeling: "anxious", Triggers: []string{"work", "noise", "coffee"}, CreatedAt: now},
		{UserID: "user-1", Feeling: "anxious", Triggers: []string{"work", "deadline", "traffic"}, CreatedAt: now.Add(time.Hour)},
		{UserID: "user-1", Feeling: "anxious", Triggers: []string{"work", "deadline", "crowds"}, CreatedAt: now.Add(2 * time.Hour)},
	}

	patterns := ExtractPatterns(records)

	got := patterns[0].CommonTriggers
	if len(got) != maxCommonTriggers {
		t.Fatalf("expected %d triggers, got %d: %v", maxCommonTriggers, len(got), got)
	}
	// work (3) first, deadline (2) second, then singletons in first-seen order.
	want := []string{"work", "deadline", "noise", "coffee", "traffic"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("triggers = %v, want %v", got, want)
	}
}

func TestExtractPatternsFirstSeenMoodOrder(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		record("sad", intPtr(4), now),
		record("happy", intPtr(8), now.Add(time.Hour)),
		record("sad", intPtr(3), now.Add(2*time.Hour)),
	}

	patterns := ExtractPatterns(records)

	if patterns[0].Mood != "sad" || patterns[1].Mood != "happy" {
		t.Errorf("unexpected mood order: %q, %q", patterns[0].Mood, patterns[1].Mood)
	}
}

func TestExtractPatternsFrequencySum(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		record("happy", intPtr(7), now),
		record("sad", intPtr(3), now.Add(time.Hour)),
		record("happy", intPtr(6), now.Add(2*time.Hour)),
		record("calm", nil, now.Add(3*time.Hour)),
	}

	patterns := ExtractPatterns(records)

	sum := 0
	for _, p := range patterns {
		sum += p.Frequency
	}
	if sum != len(records) {
		t.Errorf("frequency sum = %d, want %d", sum, len(records))
	}
}

func TestMoodFrequencies(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		record("happy", nil, now),
		record("sad", nil, now),
		record("happy", nil, now),
	}

	frequencies := MoodFrequencies(records)

	if len(frequencies) != 2 {
		t.Fatalf("expected 2 frequencies, got %d", len(frequencies))
	}
	if frequencies[0].Mood != "happy" || frequencies[0].Count != 2 || frequencies[0].Percentage != 67 {
		t.Errorf("unexpected first frequency: %+v", frequencies[0])
	}
	if frequencies[1].Mood != "sad" || frequencies[1].Count != 1 || frequencies[1].Percentage != 33 {
		t.Errorf("unexpected second frequency: %+v", frequencies[1])
	}
}

func TestMoodFrequenciesEmpty(t *testing.T) {
	frequencies := MoodFrequencies(nil)
	if frequencies == nil || len(frequencies) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", frequencies)
	}
}

func TestTimeOfDayBuckets(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "Early Morning (12AM-6AM)"},
		{5, "Early Morning (12AM-6AM)"},
		{6, "Morning (6AM-12PM)"},
		{11, "Morning (6AM-12PM)"},
		{12, "Afternoon (12PM-6PM)"},
		{17, "Afternoon (12PM-6PM)"},
		{18, "Evening (6PM-12AM)"},
		{23, "Evening (6PM-12AM)"},
	}

	for _, tc := range cases {
		if got := timeOfDayBucket(tc.hour); got != tc.want {
			t.Errorf("timeOfDayBucket(%d) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}
