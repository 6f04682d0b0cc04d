package analytics

import "github.com/moodloom/backend/internal/models"

// AnalyzeTriggers aggregates all trigger labels across the window into
// per-label frequency plus the deduplicated set of feelings the label
// appeared under. Unlike the per-pattern trigger list there is no ranking
// and no cap; entries come out in first-seen order.
func AnalyzeTriggers(records []models.MoodRecord) []models.TriggerAnalysis {
	type aggregate struct {
		frequency int
		moods     []string
		moodSeen  map[string]bool
	}

	aggregates := make(map[string]*aggregate)
	order := make([]string, 0)

	for _, record := range records {
		for _, trigger := range record.Triggers {
			a, exists := aggregates[trigger]
			if !exists {
				a = &aggregate{moodSeen: make(map[string]bool)}
				aggregates[trigger] = a
				order = append(order, trigger)
			}
			a.frequency++
			if !a.moodSeen[record.Feeling] {
				a.moodSeen[record.Feeling] = true
				a.moods = append(a.moods, record.Feeling)
			}
		}
	}

	results := make([]models.TriggerAnalysis, 0, len(order))
	for _, trigger := range order {
		a := aggregates[trigger]
		results = append(results, models.TriggerAnalysis{
			Trigger:         trigger,
			Frequency:       a.frequency,
			AssociatedMoods: a.moods,
		})
	}

	return results
}
