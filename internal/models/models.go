package models

import "time"

// MoodRecord represents a single timestamped self-report of a feeling and
// its surrounding context. CreatedAt is assigned once at creation and is the
// sole ordering key for all time-based analysis.
type MoodRecord struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Feeling         string    `json:"feeling"`
	Intensity       *int      `json:"intensity,omitempty"`
	Context         *string   `json:"context,omitempty"`
	Triggers        []string  `json:"triggers,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	Location        *string   `json:"location,omitempty"`
	Weather         *string   `json:"weather,omitempty"`
	Activity        *string   `json:"activity,omitempty"`
	SocialContext   *string   `json:"social_context,omitempty"`
	EnergyLevel     *int      `json:"energy_level,omitempty"`
	StressLevel     *int      `json:"stress_level,omitempty"`
	SleepQuality    *int      `json:"sleep_quality,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	ChangeReason    *string   `json:"change_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// InteractionRecord represents a content interaction owned by the content
// subsystem. ContentType is resolved from the related content entity when
// the record is loaded.
type InteractionRecord struct {
	UserID            string    `json:"user_id"`
	ContentID         string    `json:"content_id"`
	InteractionType   string    `json:"interaction_type"`
	InteractionValue  *int      `json:"interaction_value,omitempty"`
	MoodAtInteraction *string   `json:"mood_at_interaction,omitempty"`
	ContentType       string    `json:"content_type"`
	CreatedAt         time.Time `json:"created_at"`
}

// Interaction types accepted by the content subsystem.
const (
	InteractionLike     = "like"
	InteractionDislike  = "dislike"
	InteractionSave     = "save"
	InteractionShare    = "share"
	InteractionSkip     = "skip"
	InteractionPlay     = "play"
	InteractionComplete = "complete"
	InteractionRate     = "rate"
)

// CreateMoodRequest represents the request to record a mood
type CreateMoodRequest struct {
	ID              string   `json:"id"`
	Feeling         string   `json:"feeling" binding:"required"`
	Intensity       *int     `json:"intensity" binding:"omitempty,min=1,max=10"`
	Context         *string  `json:"context"`
	Triggers        []string `json:"triggers"`
	Notes           *string  `json:"notes"`
	Location        *string  `json:"location"`
	Weather         *string  `json:"weather"`
	Activity        *string  `json:"activity"`
	SocialContext   *string  `json:"social_context"`
	EnergyLevel     *int     `json:"energy_level" binding:"omitempty,min=1,max=10"`
	StressLevel     *int     `json:"stress_level" binding:"omitempty,min=1,max=10"`
	SleepQuality    *int     `json:"sleep_quality" binding:"omitempty,min=1,max=10"`
	DurationMinutes *int     `json:"duration_minutes"`
}

// UpdateMoodRequest represents the request to update a mood record.
// CreatedAt is immutable and cannot be patched.
type UpdateMoodRequest struct {
	Feeling         *string  `json:"feeling"`
	Intensity       *int     `json:"intensity" binding:"omitempty,min=1,max=10"`
	Context         *string  `json:"context"`
	Triggers        []string `json:"triggers"`
	Notes           *string  `json:"notes"`
	Location        *string  `json:"location"`
	Weather         *string  `json:"weather"`
	Activity        *string  `json:"activity"`
	SocialContext   *string  `json:"social_context"`
	EnergyLevel     *int     `json:"energy_level" binding:"omitempty,min=1,max=10"`
	StressLevel     *int     `json:"stress_level" binding:"omitempty,min=1,max=10"`
	SleepQuality    *int     `json:"sleep_quality" binding:"omitempty,min=1,max=10"`
	DurationMinutes *int     `json:"duration_minutes"`
	ChangeReason    *string  `json:"change_reason"`
}
