package models

import "time"

// Derived analytics entities. These are value objects recomputed on every
// query from the current record set; none of them is ever persisted.

// DateRange is the absolute window an analysis query operated over.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MoodPattern aggregates statistics for one distinct feeling across all
// matching records in a window.
type MoodPattern struct {
	Mood             string   `json:"mood"`
	Frequency        int      `json:"frequency"`
	AverageIntensity int      `json:"average_intensity"`
	CommonTriggers   []string `json:"common_triggers"`
	TimeOfDay        string   `json:"time_of_day"`
	DayOfWeek        string   `json:"day_of_week"`
	AverageDuration  int      `json:"average_duration"`
}

// MoodCount is a feeling with its occurrence count inside one sub-period.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// MoodTrend summarizes one sub-period of the lookback window.
// IntensityTrend is one of "increasing", "decreasing" or "stable".
type MoodTrend struct {
	Period         string      `json:"period"`
	AverageMood    string      `json:"average_mood"`
	MoodStability  float64     `json:"mood_stability"`
	IntensityTrend string      `json:"intensity_trend"`
	TopMoods       []MoodCount `json:"top_moods"`
}

// MoodAnalysis is the combined result of one analysis call.
type MoodAnalysis struct {
	TotalEntries    int           `json:"total_entries"`
	DateRange       DateRange     `json:"date_range"`
	Patterns        []MoodPattern `json:"patterns"`
	Trends          []MoodTrend   `json:"trends"`
	Recommendations []string      `json:"recommendations"`
}

// MoodFrequency is an entry of the frequency query.
type MoodFrequency struct {
	Mood       string `json:"mood"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// TriggerAnalysis aggregates one free-text trigger label across the window.
type TriggerAnalysis struct {
	Trigger         string   `json:"trigger"`
	Frequency       int      `json:"frequency"`
	AssociatedMoods []string `json:"associated_moods"`
}

// InteractionMoodStat counts interactions recorded under one mood label.
type InteractionMoodStat struct {
	Mood       string `json:"mood"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// InteractionTypeStat counts interactions of one interaction type.
type InteractionTypeStat struct {
	Type       string `json:"type"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// MoodContentCorrelation relates one mood to the content types interacted
// with while in it. AverageRating is the mean of the interaction values that
// were supplied, rounded to one decimal, or 0 when none were.
type MoodContentCorrelation struct {
	Mood          string   `json:"mood"`
	ContentTypes  []string `json:"content_types"`
	AverageRating float64  `json:"average_rating"`
}

// InteractionAnalysis is the result of the interaction correlation query.
type InteractionAnalysis struct {
	TotalInteractions      int                      `json:"total_interactions"`
	InteractionsByMood     []InteractionMoodStat    `json:"interactions_by_mood"`
	InteractionsByType     []InteractionTypeStat    `json:"interactions_by_type"`
	MoodContentCorrelation []MoodContentCorrelation `json:"mood_content_correlation"`
}

// ContentTypePreference is a content type the user previously engaged with
// while in a given mood, with a confidence score.
type ContentTypePreference struct {
	ContentType string  `json:"content_type"`
	Confidence  float64 `json:"confidence"`
}

// MoodRecommendations is the result of the by-current-mood query.
type MoodRecommendations struct {
	RecommendedContentTypes []string                `json:"recommended_content_types"`
	MoodBasedPreferences    []ContentTypePreference `json:"mood_based_preferences"`
	InteractionInsights     []string                `json:"interaction_insights"`
}

// MoodExport is the JSON export envelope for a user's mood history.
type MoodExport struct {
	UserID       string       `json:"user_id"`
	ExportDate   time.Time    `json:"export_date"`
	DateRange    DateRange    `json:"date_range"`
	TotalEntries int          `json:"total_entries"`
	Data         []MoodRecord `json:"data"`
}
