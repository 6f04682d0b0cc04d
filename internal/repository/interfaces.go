package repository

import (
	"context"
	"time"

	"github.com/moodloom/backend/internal/models"
)

// MoodRepository defines the interface for mood record persistence
type MoodRepository interface {
	Create(ctx context.Context, record *models.MoodRecord) (*models.MoodRecord, error)
	GetByID(ctx context.Context, id string) (*models.MoodRecord, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.MoodRecord, error)
	// GetByUserIDAndDateRange returns records whose CreatedAt falls inside
	// the inclusive [from, to] range.
	GetByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]models.MoodRecord, error)
	Update(ctx context.Context, id string, record *models.MoodRecord) (*models.MoodRecord, error)
	Delete(ctx context.Context, id string) error
}

// InteractionRepository defines the interface for content interaction reads.
// Records come back with their content's type already resolved.
type InteractionRepository interface {
	GetByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]models.InteractionRecord, error)
}
