package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/moodloom/backend/internal/models"
)

// Intensity trajectory labels.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// maxTopMoods caps the per-period mood ranking.
const maxTopMoods = 3

// intensityTrendThreshold is the minimum difference between the first-half
// and second-half intensity means before a period counts as moving.
const intensityTrendThreshold = 0.5

// AnalyzeTrends computes one MoodTrend per sub-period of the lookback window
// that contains at least one record. Periods with no matching records are
// skipped entirely rather than reported as empty.
func AnalyzeTrends(now time.Time, days int, records []models.MoodRecord) []models.MoodTrend {
	sorted := sortByCreatedAt(records)
	periods := BuildPeriods(now, days)

	trends := make([]models.MoodTrend, 0, len(periods))
	for _, period := range periods {
		inPeriod := make([]models.MoodRecord, 0)
		for _, record := range sorted {
			if period.Contains(record.CreatedAt) {
				inPeriod = append(inPeriod, record)
			}
		}
		if len(inPeriod) == 0 {
			continue
		}

		topMoods := rankMoods(inPeriod)
		averageMood := "neutral"
		if len(topMoods) > 0 {
			averageMood = topMoods[0].Mood
		}

		trends = append(trends, models.MoodTrend{
			Period:         period.Label,
			AverageMood:    averageMood,
			MoodStability:  moodStability(inPeriod),
			IntensityTrend: intensityTrend(inPeriod),
			TopMoods:       topMoods,
		})
	}

	return trends
}

// rankMoods counts feelings within a period and keeps the top entries by
// descending count, ties in first-seen order.
func rankMoods(records []models.MoodRecord) []models.MoodCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, record := range records {
		if _, seen := counts[record.Feeling]; !seen {
			order = append(order, record.Feeling)
		}
		counts[record.Feeling]++
	}

	ranked := make([]models.MoodCount, 0, len(order))
	for _, mood := range order {
		ranked = append(ranked, models.MoodCount{Mood: mood, Count: counts[mood]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > maxTopMoods {
		ranked = ranked[:maxTopMoods]
	}
	return ranked
}

// moodStability is the fraction of adjacent record pairs sharing the same
// feeling: 1 - changes/(n-1). Fewer than two records is maximally stable by
// convention.
func moodStability(records []models.MoodRecord) float64 {
	n := len(records)
	if n < 2 {
		return 1
	}

	changes := 0
	for i := 1; i < n; i++ {
		if records[i].Feeling != records[i-1].Feeling {
			changes++
		}
	}

	return 1 - float64(changes)/float64(n-1)
}

// intensityTrend compares the mean intensity of the first floor(n/2) records
// against the rest. Fewer than three records is reported as stable.
func intensityTrend(records []models.MoodRecord) string {
	n := len(records)
	if n < 3 {
		return TrendStable
	}

	half := n / 2
	var firstSum, secondSum int
	for i, record := range records {
		if i < half {
			firstSum += intensityOrDefault(record)
		} else {
			secondSum += intensityOrDefault(record)
		}
	}

	firstMean := float64(firstSum) / float64(half)
	secondMean := float64(secondSum) / float64(n-half)

	if math.Abs(secondMean-firstMean) < intensityTrendThreshold {
		return TrendStable
	}
	if secondMean > firstMean {
		return TrendIncreasing
	}
	return TrendDecreasing
}
