package service

import (
	"context"

	"github.com/moodloom/backend/internal/models"
)

// MoodService defines the interface for mood record business logic
type MoodService interface {
	CreateMood(ctx context.Context, userID string, req *models.CreateMoodRequest) (*models.MoodRecord, error)
	GetMood(ctx context.Context, userID, moodID string) (*models.MoodRecord, error)
	GetUserMoods(ctx context.Context, userID string, limit, offset int) ([]models.MoodRecord, error)
	UpdateMood(ctx context.Context, userID, moodID string, req *models.UpdateMoodRequest) (*models.MoodRecord, error)
	DeleteMood(ctx context.Context, userID, moodID string) error
}

// AnalyticsService defines the interface for the mood analytics engine.
// Every method recomputes its result from the current record set; nothing
// derived is cached or persisted. Repository failures propagate unchanged.
type AnalyticsService interface {
	AnalyzeMoods(ctx context.Context, userID string, days int) (*models.MoodAnalysis, error)
	GetMoodPatterns(ctx context.Context, userID, period string) ([]models.MoodPattern, error)
	GetMoodTrends(ctx context.Context, userID string, days int) ([]models.MoodTrend, error)
	GetMoodFrequency(ctx context.Context, userID string, days int) ([]models.MoodFrequency, error)
	GetTriggerAnalysis(ctx context.Context, userID string, days int) ([]models.TriggerAnalysis, error)
	GetInteractionAnalysis(ctx context.Context, userID string, days int) (*models.InteractionAnalysis, error)
	GetRecommendationsForMood(ctx context.Context, userID, currentMood string, days int) (*models.MoodRecommendations, error)
	ExportMoodHistory(ctx context.Context, userID, format string, days int) (*ExportResult, error)
}

// ExportResult carries a rendered mood history export. Exactly one of JSON
// or CSV is populated, matching Format.
type ExportResult struct {
	Format string
	JSON   *models.MoodExport
	CSV    string
}
