package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/moodloom/backend/internal/models"
	"github.com/moodloom/backend/internal/repository"
)

// ErrMoodNotFound is returned when a mood record does not exist or belongs
// to another user.
var ErrMoodNotFound = errors.New("mood record not found")

type moodService struct {
	moodRepo repository.MoodRepository
}

// NewMoodService creates a new mood service
func NewMoodService(moodRepo repository.MoodRepository) MoodService {
	return &moodService{moodRepo: moodRepo}
}

func (s *moodService) CreateMood(ctx context.Context, userID string, req *models.CreateMoodRequest) (*models.MoodRecord, error) {
	// Use client-provided ID if present, otherwise assign one
	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	now := time.Now()
	record := &models.MoodRecord{
		ID:              id,
		UserID:          userID,
		Feeling:         req.Feeling,
		Intensity:       req.Intensity,
		Context:         req.Context,
		Triggers:        req.Triggers,
		Notes:           req.Notes,
		Location:        req.Location,
		Weather:         req.Weather,
		Activity:        req.Activity,
		SocialContext:   req.SocialContext,
		EnergyLevel:     req.EnergyLevel,
		StressLevel:     req.StressLevel,
		SleepQuality:    req.SleepQuality,
		DurationMinutes: req.DurationMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return s.moodRepo.Create(ctx, record)
}

func (s *moodService) GetMood(ctx context.Context, userID, moodID string) (*models.MoodRecord, error) {
	record, err := s.moodRepo.GetByID(ctx, moodID)
	if err != nil {
		return nil, err
	}

	if record == nil || record.UserID != userID {
		return nil, ErrMoodNotFound
	}

	return record, nil
}

func (s *moodService) GetUserMoods(ctx context.Context, userID string, limit, offset int) ([]models.MoodRecord, error) {
	// Set default pagination limits
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return s.moodRepo.GetByUserID(ctx, userID, limit, offset)
}

func (s *moodService) UpdateMood(ctx context.Context, userID, moodID string, req *models.UpdateMoodRequest) (*models.MoodRecord, error) {
	existing, err := s.moodRepo.GetByID(ctx, moodID)
	if err != nil {
		return nil, err
	}

	if existing == nil || existing.UserID != userID {
		return nil, ErrMoodNotFound
	}

	// Apply patch over the existing record; CreatedAt stays untouched.
	update := *existing
	if req.Feeling != nil {
		update.Feeling = *req.Feeling
	}
	if req.Intensity != nil {
		update.Intensity = req.Intensity
	}
	if req.Context != nil {
		update.Context = req.Context
	}
	if req.Triggers != nil {
		update.Triggers = req.Triggers
	}
	if req.Notes != nil {
		update.Notes = req.Notes
	}
	if req.Location != nil {
		update.Location = req.Location
	}
	if req.Weather != nil {
		update.Weather = req.Weather
	}
	if req.Activity != nil {
		update.Activity = req.Activity
	}
	if req.SocialContext != nil {
		update.SocialContext = req.SocialContext
	}
	if req.EnergyLevel != nil {
		update.EnergyLevel = req.EnergyLevel
	}
	if req.StressLevel != nil {
		update.StressLevel = req.StressLevel
	}
	if req.SleepQuality != nil {
		update.SleepQuality = req.SleepQuality
	}
	if req.DurationMinutes != nil {
		update.DurationMinutes = req.DurationMinutes
	}
	if req.ChangeReason != nil {
		update.ChangeReason = req.ChangeReason
	}

	return s.moodRepo.Update(ctx, moodID, &update)
}

func (s *moodService) DeleteMood(ctx context.Context, userID, moodID string) error {
	record, err := s.moodRepo.GetByID(ctx, moodID)
	if err != nil {
		return err
	}

	if record == nil || record.UserID != userID {
		return ErrMoodNotFound
	}

	return s.moodRepo.Delete(ctx, moodID)
}
