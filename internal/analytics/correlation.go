package analytics

import (
	"fmt"
	"math"
	"strings"

	"github.com/moodloom/backend/internal/models"
)

// UnknownMood labels interactions recorded without a mood.
const UnknownMood = "unknown"

// Confidence scores for mood-based content preferences.
const (
	highRatingConfidence = 0.9
	baseConfidence       = 0.7
)

// CorrelateInteractions joins content interactions with the mood they were
// recorded under. Empty input yields a zeroed result, not an error.
func CorrelateInteractions(interactions []models.InteractionRecord) models.InteractionAnalysis {
	analysis := models.InteractionAnalysis{
		InteractionsByMood:     []models.InteractionMoodStat{},
		InteractionsByType:     []models.InteractionTypeStat{},
		MoodContentCorrelation: []models.MoodContentCorrelation{},
	}
	if len(interactions) == 0 {
		return analysis
	}

	total := len(interactions)
	analysis.TotalInteractions = total

	moodCounts := make(map[string]int)
	moodOrder := make([]string, 0)
	typeCounts := make(map[string]int)
	typeOrder := make([]string, 0)

	type correlation struct {
		contentTypes []string
		typeSeen     map[string]bool
		ratingSum    int
		ratingCount  int
	}
	correlations := make(map[string]*correlation)

	for _, interaction := range interactions {
		mood := moodLabel(interaction)

		if _, seen := moodCounts[mood]; !seen {
			moodOrder = append(moodOrder, mood)
		}
		moodCounts[mood]++

		if _, seen := typeCounts[interaction.InteractionType]; !seen {
			typeOrder = append(typeOrder, interaction.InteractionType)
		}
		typeCounts[interaction.InteractionType]++

		c, exists := correlations[mood]
		if !exists {
			c = &correlation{typeSeen: make(map[string]bool)}
			correlations[mood] = c
		}
		if interaction.ContentType != "" && !c.typeSeen[interaction.ContentType] {
			c.typeSeen[interaction.ContentType] = true
			c.contentTypes = append(c.contentTypes, interaction.ContentType)
		}
		if interaction.InteractionValue != nil {
			c.ratingSum += *interaction.InteractionValue
			c.ratingCount++
		}
	}

	for _, mood := range moodOrder {
		analysis.InteractionsByMood = append(analysis.InteractionsByMood, models.InteractionMoodStat{
			Mood:       mood,
			Count:      moodCounts[mood],
			Percentage: percentage(moodCounts[mood], total),
		})
	}
	for _, interactionType := range typeOrder {
		analysis.InteractionsByType = append(analysis.InteractionsByType, models.InteractionTypeStat{
			Type:       interactionType,
			Count:      typeCounts[interactionType],
			Percentage: percentage(typeCounts[interactionType], total),
		})
	}
	for _, mood := range moodOrder {
		c := correlations[mood]
		rating := 0.0
		if c.ratingCount > 0 {
			rating = math.Round(float64(c.ratingSum)/float64(c.ratingCount)*10) / 10
		}
		contentTypes := c.contentTypes
		if contentTypes == nil {
			contentTypes = []string{}
		}
		analysis.MoodContentCorrelation = append(analysis.MoodContentCorrelation, models.MoodContentCorrelation{
			Mood:          mood,
			ContentTypes:  contentTypes,
			AverageRating: rating,
		})
	}

	return analysis
}

// RecommendForMood combines the user's monthly pattern for currentMood with
// the interaction correlation for the caller's window into content
// suggestions. patterns must come from a month-sized window regardless of
// the window the correlation was computed over.
func RecommendForMood(currentMood string, patterns []models.MoodPattern, correlation models.InteractionAnalysis) models.MoodRecommendations {
	recommendations := models.MoodRecommendations{
		RecommendedContentTypes: []string{},
		MoodBasedPreferences:    []models.ContentTypePreference{},
		InteractionInsights:     []string{},
	}

	var pattern *models.MoodPattern
	for i := range patterns {
		if patterns[i].Mood == currentMood {
			pattern = &patterns[i]
			break
		}
	}

	var moodCorrelation *models.MoodContentCorrelation
	for i := range correlation.MoodContentCorrelation {
		if correlation.MoodContentCorrelation[i].Mood == currentMood {
			moodCorrelation = &correlation.MoodContentCorrelation[i]
			break
		}
	}

	seen := make(map[string]bool)
	addContentType := func(contentType string) {
		if !seen[contentType] {
			seen[contentType] = true
			recommendations.RecommendedContentTypes = append(recommendations.RecommendedContentTypes, contentType)
		}
	}

	if moodCorrelation != nil {
		for _, contentType := range moodCorrelation.ContentTypes {
			addContentType(contentType)

			confidence := baseConfidence
			if moodCorrelation.AverageRating > 7 {
				confidence = highRatingConfidence
			}
			recommendations.MoodBasedPreferences = append(recommendations.MoodBasedPreferences, models.ContentTypePreference{
				ContentType: contentType,
				Confidence:  confidence,
			})
		}
		if len(moodCorrelation.ContentTypes) > 0 {
			recommendations.InteractionInsights = append(recommendations.InteractionInsights,
				fmt.Sprintf("While feeling %s you have engaged with %s",
					currentMood, strings.Join(moodCorrelation.ContentTypes, ", ")))
		}
	}

	if pattern != nil {
		if pattern.Frequency > 5 {
			addContentType("music")
			addContentType("movies")
			addContentType("books")
			recommendations.InteractionInsights = append(recommendations.InteractionInsights,
				fmt.Sprintf("You feel %s often; music, movies and books tend to suit this mood", currentMood))
		}
		if pattern.AverageIntensity > 7 {
			addContentType("meditation")
			addContentType("calming_music")
			recommendations.InteractionInsights = append(recommendations.InteractionInsights,
				fmt.Sprintf("Your %s moods run intense; meditation and calming music may help", currentMood))
		}
	}

	return recommendations
}

func moodLabel(interaction models.InteractionRecord) string {
	if interaction.MoodAtInteraction == nil || *interaction.MoodAtInteraction == "" {
		return UnknownMood
	}
	return *interaction.MoodAtInteraction
}
