package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/moodloom/backend/internal/models"
)

type interactionRepository struct {
	db *sql.DB
}

// NewInteractionRepository creates a new interaction repository backed by
// Postgres. Reads join the content table so every record carries its
// content's type.
func NewInteractionRepository(db *sql.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]models.InteractionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT i.user_id, i.content_id, i.interaction_type,
			i.interaction_value, i.mood_at_interaction,
			COALESCE(c.content_type, ''), i.created_at
		FROM content_interactions i
		LEFT JOIN content c ON c.id = i.content_id
		WHERE i.user_id = $1 AND i.created_at >= $2 AND i.created_at <= $3
		ORDER BY i.created_at ASC`,
		userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer rows.Close()

	records := make([]models.InteractionRecord, 0)
	for rows.Next() {
		var record models.InteractionRecord
		if err := rows.Scan(
			&record.UserID, &record.ContentID, &record.InteractionType,
			&record.InteractionValue, &record.MoodAtInteraction,
			&record.ContentType, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
