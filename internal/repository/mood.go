package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/moodloom/backend/internal/models"
)

type moodRepository struct {
	db *sql.DB
}

// NewMoodRepository creates a new mood repository backed by Postgres
func NewMoodRepository(db *sql.DB) MoodRepository {
	return &moodRepository{db: db}
}

const moodColumns = `id, user_id, feeling, intensity, context, triggers, notes,
	location, weather, activity, social_context, energy_level, stress_level,
	sleep_quality, duration_minutes, change_reason, created_at, updated_at`

func (r *moodRepository) Create(ctx context.Context, record *models.MoodRecord) (*models.MoodRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO moods (id, user_id, feeling, intensity, context, triggers,
			notes, location, weather, activity, social_context, energy_level,
			stress_level, sleep_quality, duration_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
		RETURNING `+moodColumns,
		record.ID, record.UserID, record.Feeling, record.Intensity,
		record.Context, pq.Array(record.Triggers), record.Notes,
		record.Location, record.Weather, record.Activity, record.SocialContext,
		record.EnergyLevel, record.StressLevel, record.SleepQuality,
		record.DurationMinutes, record.CreatedAt,
	)

	created, err := scanMood(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood record: %w", err)
	}
	return created, nil
}

func (r *moodRepository) GetByID(ctx context.Context, id string) (*models.MoodRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+moodColumns+` FROM moods WHERE id = $1`, id)

	record, err := scanMood(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mood record: %w", err)
	}
	return record, nil
}

func (r *moodRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.MoodRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+moodColumns+`
		FROM moods
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood records: %w", err)
	}
	defer rows.Close()

	return collectMoods(rows)
}

func (r *moodRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]models.MoodRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+moodColumns+`
		FROM moods
		WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC`,
		userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood records: %w", err)
	}
	defer rows.Close()

	return collectMoods(rows)
}

func (r *moodRepository) Update(ctx context.Context, id string, record *models.MoodRecord) (*models.MoodRecord, error) {
	// created_at is never touched; it is the immutable ordering key.
	row := r.db.QueryRowContext(ctx, `
		UPDATE moods
		SET feeling = $2, intensity = $3, context = $4, triggers = $5,
			notes = $6, location = $7, weather = $8, activity = $9,
			social_context = $10, energy_level = $11, stress_level = $12,
			sleep_quality = $13, duration_minutes = $14, change_reason = $15,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+moodColumns,
		id, record.Feeling, record.Intensity, record.Context,
		pq.Array(record.Triggers), record.Notes, record.Location,
		record.Weather, record.Activity, record.SocialContext,
		record.EnergyLevel, record.StressLevel, record.SleepQuality,
		record.DurationMinutes, record.ChangeReason,
	)

	updated, err := scanMood(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update mood record: %w", err)
	}
	return updated, nil
}

func (r *moodRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM moods WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete mood record: %w", err)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMood(row rowScanner) (*models.MoodRecord, error) {
	var record models.MoodRecord
	if err := row.Scan(
		&record.ID, &record.UserID, &record.Feeling, &record.Intensity,
		&record.Context, pq.Array(&record.Triggers), &record.Notes,
		&record.Location, &record.Weather, &record.Activity,
		&record.SocialContext, &record.EnergyLevel, &record.StressLevel,
		&record.SleepQuality, &record.DurationMinutes, &record.ChangeReason,
		&record.CreatedAt, &record.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &record, nil
}

func collectMoods(rows *sql.Rows) ([]models.MoodRecord, error) {
	records := make([]models.MoodRecord, 0)
	for rows.Next() {
		record, err := scanMood(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mood record: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}
