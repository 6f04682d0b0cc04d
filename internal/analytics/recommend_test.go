package analytics

import (
	"strings"
	"testing"

	"github.com/moodloom/backend/internal/models"
)

func TestComposeRecommendationsFrequentIntenseMood(t *testing.T) {
	patterns := []models.MoodPattern{
		{Mood: "happy", Frequency: 10, AverageIntensity: 8},
	}

	recommendations := ComposeRecommendations(patterns, nil)

	if len(recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d: %v", len(recommendations), recommendations)
	}
	if !strings.Contains(recommendations[0], "happy") || !strings.Contains(recommendations[0], "stress management") {
		t.Errorf("unexpected recommendation: %q", recommendations[0])
	}
}

func TestComposeRecommendationsPriorityOrder(t *testing.T) {
	patterns := []models.MoodPattern{
		{Mood: "anxious", Frequency: 8, AverageIntensity: 9, CommonTriggers: []string{"work", "deadlines"}},
	}
	trends := []models.MoodTrend{
		{Period: "Period 3", MoodStability: 0.1, IntensityTrend: TrendIncreasing},
	}

	recommendations := ComposeRecommendations(patterns, trends)

	if len(recommendations) != 4 {
		t.Fatalf("expected 4 recommendations, got %d: %v", len(recommendations), recommendations)
	}
	// Intensity rule fires before trigger awareness, then stability, then
	// the rising-intensity rule.
	if !strings.Contains(recommendations[0], "stress management") {
		t.Errorf("first recommendation should address intensity, got %q", recommendations[0])
	}
	if !strings.Contains(recommendations[1], "work, deadlines") {
		t.Errorf("second recommendation should name triggers, got %q", recommendations[1])
	}
	if !strings.Contains(recommendations[2], "steadier daily routine") {
		t.Errorf("third recommendation should address stability, got %q", recommendations[2])
	}
	if !strings.Contains(recommendations[3], "mindfulness") {
		t.Errorf("fourth recommendation should address rising intensity, got %q", recommendations[3])
	}
}

func TestComposeRecommendationsCap(t *testing.T) {
	patterns := make([]models.MoodPattern, 0, 6)
	for _, mood := range []string{"a", "b", "c", "d", "e", "f"} {
		patterns = append(patterns, models.MoodPattern{Mood: mood, Frequency: 10, AverageIntensity: 9})
	}

	recommendations := ComposeRecommendations(patterns, nil)

	if len(recommendations) != maxRecommendations {
		t.Errorf("expected cap at %d, got %d", maxRecommendations, len(recommendations))
	}
}

func TestComposeRecommendationsThresholdsAreStrict(t *testing.T) {
	// Frequency and intensity exactly at their thresholds do not fire.
	patterns := []models.MoodPattern{
		{Mood: "calm", Frequency: frequentMoodThreshold, AverageIntensity: highIntensityThreshold, CommonTriggers: []string{"tea"}},
	}
	trends := []models.MoodTrend{
		{Period: "Period 1", MoodStability: lowStabilityThreshold, IntensityTrend: TrendStable},
	}

	recommendations := ComposeRecommendations(patterns, trends)

	if len(recommendations) != 0 {
		t.Errorf("expected no recommendations at threshold values, got %v", recommendations)
	}
}
