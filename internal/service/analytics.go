package service

import (
	"context"
	"fmt"
	"time"

	"github.com/moodloom/backend/internal/analytics"
	"github.com/moodloom/backend/internal/models"
	"github.com/moodloom/backend/internal/repository"
)

// Days represented by each named pattern period.
const (
	periodDayDays   = 1
	periodWeekDays  = 7
	periodMonthDays = 30
	periodYearDays  = 365
)

// defaultExportDays is the window used by exports unless the caller narrows it.
const defaultExportDays = 365

type analyticsService struct {
	moodRepo        repository.MoodRepository
	interactionRepo repository.InteractionRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(moodRepo repository.MoodRepository, interactionRepo repository.InteractionRepository) AnalyticsService {
	return &analyticsService{
		moodRepo:        moodRepo,
		interactionRepo: interactionRepo,
	}
}

// AnalyzeMoods runs the full analysis pipeline over the lookback window:
// patterns, trends and the recommendations composed from both. "now" is
// captured once so every derived bound is internally consistent.
func (s *analyticsService) AnalyzeMoods(ctx context.Context, userID string, days int) (*models.MoodAnalysis, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -days)

	records, err := s.moodRepo.GetByUserIDAndDateRange(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood records: %w", err)
	}

	dateRange := models.DateRange{Start: from, End: now}

	if len(records) == 0 {
		return &models.MoodAnalysis{
			TotalEntries:    0,
			DateRange:       dateRange,
			Patterns:        []models.MoodPattern{},
			Trends:          []models.MoodTrend{},
			Recommendations: []string{analytics.StartTrackingMessage},
		}, nil
	}

	patterns := analytics.ExtractPatterns(records)
	trends := analytics.AnalyzeTrends(now, days, records)

	return &models.MoodAnalysis{
		TotalEntries:    len(records),
		DateRange:       dateRange,
		Patterns:        patterns,
		Trends:          trends,
		Recommendations: analytics.ComposeRecommendations(patterns, trends),
	}, nil
}

func (s *analyticsService) GetMoodPatterns(ctx context.Context, userID, period string) ([]models.MoodPattern, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -periodDays(period))

	records, err := s.moodRepo.GetByUserIDAndDateRange(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood records: %w", err)
	}

	return analytics.ExtractPatterns(records), nil
}

func (s *analyticsService) GetMoodTrends(ctx context.Context, userID string, days int) ([]models.MoodTrend, error) {
	now := time.Now()

	records, err := s.moodRepo.GetByUserIDAndDateRange(ctx, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood records: %w", err)
	}

	return analytics.AnalyzeTrends(now, days, records), nil
}

func (s *analyticsService) GetMoodFrequency(ctx context.Context, userID string, days int) ([]models.MoodFrequency, error) {
	now := time.Now()

	records, err := s.moodRepo.GetByUserIDAndDateRange(ctx, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood records: %w", err)
	}

	return analytics.MoodFrequencies(records), nil
}

func (s *analyticsService) GetTriggerAnalysis(ctx context.Context, userID string, days int) ([]models.TriggerAnalysis, error) {
	now := time.Now()

	records, err := s.moodRepo.GetByUserIDAndDateRange(ctx, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood records: %w", err)
	}

	return analytics.AnalyzeTriggers(records), nil
}

func (s *analyticsService) GetInteractionAnalysis(ctx context.Context, userID string, days int) (*models.InteractionAnalysis, error) {
	now := time.Now()

	interactions, err := s.interactionRepo.GetByUserIDAndDateRange(ctx, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, fmt.Errorf("failed to get interactions: %w", err)
	}

	analysis := analytics.CorrelateInteractions(interactions)
	return &analysis, nil
}

// GetRecommendationsForMood combines the monthly pattern for currentMood
// with the interaction correlation for the caller's window. The pattern side
// is always computed over a month regardless of days.
func (s *analyticsService) GetRecommendationsForMood(ctx context.Context, userID, currentMood string, days int) (*models.MoodRecommendations, error) {
	now := time.Now()

	monthRecords, err := s.moodRepo.GetByUserIDAndDateRange(ctx, userID, now.AddDate(0, 0, -periodMonthDays), now)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood records: %w", err)
	}

	interactions, err := s.interactionRepo.GetByUserIDAndDateRange(ctx, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, fmt.Errorf("failed to get interactions: %w", err)
	}

	patterns := analytics.ExtractPatterns(monthRecords)
	correlation := analytics.CorrelateInteractions(interactions)

	recommendations := analytics.RecommendForMood(currentMood, patterns, correlation)
	return &recommendations, nil
}

func (s *analyticsService) ExportMoodHistory(ctx context.Context, userID, format string, days int) (*ExportResult, error) {
	if days <= 0 {
		days = defaultExportDays
	}
	now := time.Now()

	records, err := s.moodRepo.GetByUserIDAndDateRange(ctx, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood records: %w", err)
	}

	if format == analytics.ExportFormatCSV {
		return &ExportResult{
			Format: analytics.ExportFormatCSV,
			CSV:    analytics.RenderCSV(records),
		}, nil
	}

	export := analytics.BuildExport(userID, now, days, records)
	return &ExportResult{
		Format: analytics.ExportFormatJSON,
		JSON:   &export,
	}, nil
}

// periodDays maps a named period to its day count, defaulting to month.
func periodDays(period string) int {
	switch period {
	case "day":
		return periodDayDays
	case "week":
		return periodWeekDays
	case "year":
		return periodYearDays
	default:
		return periodMonthDays
	}
}
