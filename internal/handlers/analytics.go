package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moodloom/backend/internal/apierror"
	"github.com/moodloom/backend/internal/logger"
	"github.com/moodloom/backend/internal/middleware"
	"github.com/moodloom/backend/internal/service"
)

// Bounds for the days query parameter. The engine trusts this validation
// layer and never clamps on its own.
const (
	minLookbackDays = 1
	maxLookbackDays = 365
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetAnalysis handles GET /api/v1/moods/analysis
func (h *AnalyticsHandler) GetAnalysis(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	days, ok := lookbackDays(c, "30")
	if !ok {
		return
	}

	analysis, err := h.analyticsService.AnalyzeMoods(c.Request.Context(), userID, days)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("mood analysis failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetPatterns handles GET /api/v1/moods/patterns
func (h *AnalyticsHandler) GetPatterns(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	period := c.DefaultQuery("period", "month")
	switch period {
	case "day", "week", "month", "year":
	default:
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "period", Message: "must be one of: day, week, month, year"},
		}))
		return
	}

	patterns, err := h.analyticsService.GetMoodPatterns(c.Request.Context(), userID, period)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("pattern extraction failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, patterns)
}

// GetTrends handles GET /api/v1/moods/trends
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	days, ok := lookbackDays(c, "30")
	if !ok {
		return
	}

	trends, err := h.analyticsService.GetMoodTrends(c.Request.Context(), userID, days)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("trend analysis failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, trends)
}

// GetFrequency handles GET /api/v1/moods/frequency
func (h *AnalyticsHandler) GetFrequency(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	days, ok := lookbackDays(c, "30")
	if !ok {
		return
	}

	frequencies, err := h.analyticsService.GetMoodFrequency(c.Request.Context(), userID, days)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("frequency query failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, frequencies)
}

// GetTriggers handles GET /api/v1/moods/triggers
func (h *AnalyticsHandler) GetTriggers(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	days, ok := lookbackDays(c, "30")
	if !ok {
		return
	}

	triggers, err := h.analyticsService.GetTriggerAnalysis(c.Request.Context(), userID, days)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("trigger analysis failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, triggers)
}

// GetInteractionAnalysis handles GET /api/v1/moods/interactions/analysis
func (h *AnalyticsHandler) GetInteractionAnalysis(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	days, ok := lookbackDays(c, "30")
	if !ok {
		return
	}

	analysis, err := h.analyticsService.GetInteractionAnalysis(c.Request.Context(), userID, days)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("interaction analysis failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetRecommendations handles GET /api/v1/moods/recommendations
func (h *AnalyticsHandler) GetRecommendations(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	currentMood := c.Query("mood")
	if currentMood == "" {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "mood", Message: "mood is required"},
		}))
		return
	}

	days, ok := lookbackDays(c, "30")
	if !ok {
		return
	}

	recommendations, err := h.analyticsService.GetRecommendationsForMood(c.Request.Context(), userID, currentMood, days)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("mood recommendations failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, recommendations)
}

// lookbackDays parses and validates the days query parameter. On failure it
// writes the problem response and returns ok=false.
func lookbackDays(c *gin.Context, defaultDays string) (int, bool) {
	days, err := strconv.Atoi(c.DefaultQuery("days", defaultDays))
	if err != nil || days < minLookbackDays || days > maxLookbackDays {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "days", Message: "must be an integer between 1 and 365"},
		}))
		return 0, false
	}
	return days, true
}
