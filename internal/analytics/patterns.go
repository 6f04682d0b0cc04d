package analytics

import (
	"math"
	"sort"

	"github.com/moodloom/backend/internal/models"
)

// DefaultIntensity substitutes a missing intensity for statistical purposes.
const DefaultIntensity = 5

// maxCommonTriggers caps the trigger list carried on a pattern.
const maxCommonTriggers = 5

// ExtractPatterns aggregates mood records into one MoodPattern per distinct
// feeling. Records are processed in ascending CreatedAt order regardless of
// input order, so the time-of-day and day-of-week buckets always reflect the
// chronologically last record of each feeling's group. That last-record
// behavior is deliberate; do not replace it with a group aggregate.
//
// Feelings are matched case-sensitively with no normalization. An empty
// input yields an empty slice.
func ExtractPatterns(records []models.MoodRecord) []models.MoodPattern {
	if len(records) == 0 {
		return []models.MoodPattern{}
	}

	sorted := sortByCreatedAt(records)

	type group struct {
		frequency     int
		intensitySum  int
		durationSum   int
		triggerCounts map[string]int
		triggerOrder  []string
		last          models.MoodRecord
	}

	groups := make(map[string]*group)
	moodOrder := make([]string, 0)

	for _, record := range sorted {
		g, exists := groups[record.Feeling]
		if !exists {
			g = &group{triggerCounts: make(map[string]int)}
			groups[record.Feeling] = g
			moodOrder = append(moodOrder, record.Feeling)
		}

		g.frequency++
		g.intensitySum += intensityOrDefault(record)
		if record.DurationMinutes != nil {
			// Records without a duration contribute 0 and dilute the
			// average; that quirk is part of the contract.
			g.durationSum += *record.DurationMinutes
		}
		for _, trigger := range record.Triggers {
			if _, seen := g.triggerCounts[trigger]; !seen {
				g.triggerOrder = append(g.triggerOrder, trigger)
			}
			g.triggerCounts[trigger]++
		}
		g.last = record
	}

	patterns := make([]models.MoodPattern, 0, len(groups))
	for _, mood := range moodOrder {
		g := groups[mood]
		patterns = append(patterns, models.MoodPattern{
			Mood:             mood,
			Frequency:        g.frequency,
			AverageIntensity: roundedMean(g.intensitySum, g.frequency),
			CommonTriggers:   topTriggers(g.triggerCounts, g.triggerOrder),
			TimeOfDay:        timeOfDayBucket(g.last.CreatedAt.Hour()),
			DayOfWeek:        g.last.CreatedAt.Weekday().String(),
			AverageDuration:  roundedMean(g.durationSum, g.frequency),
		})
	}

	return patterns
}

// MoodFrequencies counts records per feeling with an integer-rounded share
// of the total.
func MoodFrequencies(records []models.MoodRecord) []models.MoodFrequency {
	if len(records) == 0 {
		return []models.MoodFrequency{}
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, record := range records {
		if _, seen := counts[record.Feeling]; !seen {
			order = append(order, record.Feeling)
		}
		counts[record.Feeling]++
	}

	total := len(records)
	frequencies := make([]models.MoodFrequency, 0, len(counts))
	for _, mood := range order {
		frequencies = append(frequencies, models.MoodFrequency{
			Mood:       mood,
			Count:      counts[mood],
			Percentage: percentage(counts[mood], total),
		})
	}

	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Count > frequencies[j].Count
	})

	return frequencies
}

// topTriggers ranks trigger labels by count descending, ties broken by
// first-seen order, and keeps at most maxCommonTriggers labels.
func topTriggers(counts map[string]int, order []string) []string {
	ranked := make([]string, len(order))
	copy(ranked, order)

	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	if len(ranked) > maxCommonTriggers {
		ranked = ranked[:maxCommonTriggers]
	}
	return ranked
}

// timeOfDayBucket maps an hour (0-23) to its fixed label.
func timeOfDayBucket(hour int) string {
	switch {
	case hour < 6:
		return "Early Morning (12AM-6AM)"
	case hour < 12:
		return "Morning (6AM-12PM)"
	case hour < 18:
		return "Afternoon (12PM-6PM)"
	default:
		return "Evening (6PM-12AM)"
	}
}

// sortByCreatedAt returns a copy of records ordered ascending by CreatedAt.
// The input slice is never reordered.
func sortByCreatedAt(records []models.MoodRecord) []models.MoodRecord {
	sorted := make([]models.MoodRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

func intensityOrDefault(record models.MoodRecord) int {
	if record.Intensity != nil {
		return *record.Intensity
	}
	return DefaultIntensity
}

func roundedMean(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
