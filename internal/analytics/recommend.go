package analytics

import (
	"fmt"
	"strings"

	"github.com/moodloom/backend/internal/models"
)

// StartTrackingMessage is returned as the sole recommendation when the
// window contains no mood records at all.
const StartTrackingMessage = "Start tracking your moods to get personalized insights and recommendations."

// maxRecommendations caps the advice list of one analysis call.
const maxRecommendations = 5

// Thresholds for the recommendation rules.
const (
	frequentMoodThreshold  = 5
	highIntensityThreshold = 7
	lowStabilityThreshold  = 0.3
)

// ComposeRecommendations turns patterns and trends into prioritized,
// human-readable advice. Rules run in a fixed priority order, each may emit
// one message per matching pattern or trend, and the combined list is cut to
// the first maxRecommendations messages in generation order.
func ComposeRecommendations(patterns []models.MoodPattern, trends []models.MoodTrend) []string {
	recommendations := make([]string, 0, maxRecommendations)

	for _, pattern := range patterns {
		if pattern.Frequency > frequentMoodThreshold && pattern.AverageIntensity > highIntensityThreshold {
			recommendations = append(recommendations,
				fmt.Sprintf("You experience %s frequently and intensely; stress management techniques like deep breathing could help", pattern.Mood))
		}
	}

	for _, pattern := range patterns {
		if pattern.Frequency > frequentMoodThreshold && len(pattern.CommonTriggers) > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Your %s mood is commonly triggered by %s; staying aware of these triggers can help you prepare for them", pattern.Mood, strings.Join(pattern.CommonTriggers, ", ")))
		}
	}

	for _, trend := range trends {
		if trend.MoodStability < lowStabilityThreshold {
			recommendations = append(recommendations,
				fmt.Sprintf("Your moods shifted a lot during %s; a steadier daily routine may improve stability", trend.Period))
		}
	}

	for _, trend := range trends {
		if trend.IntensityTrend == TrendIncreasing {
			recommendations = append(recommendations,
				fmt.Sprintf("Mood intensity has been rising through %s; consider mindfulness exercises to stay grounded", trend.Period))
		}
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
