package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moodloom/backend/internal/apierror"
	"github.com/moodloom/backend/internal/logger"
	"github.com/moodloom/backend/internal/middleware"
	"github.com/moodloom/backend/internal/models"
	"github.com/moodloom/backend/internal/service"
)

type MoodHandler struct {
	moodService service.MoodService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService service.MoodService) *MoodHandler {
	return &MoodHandler{moodService: moodService}
}

// CreateMood handles POST /api/v1/moods
func (h *MoodHandler) CreateMood(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.CreateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(
			apierror.GetRequestID(c), err.Error(), "Please check your input and try again"))
		return
	}

	record, err := h.moodService.CreateMood(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to create mood", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetMoods handles GET /api/v1/moods
func (h *MoodHandler) GetMoods(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, err := h.moodService.GetUserMoods(c.Request.Context(), userID, limit, offset)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list moods", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetMood handles GET /api/v1/moods/:id
func (h *MoodHandler) GetMood(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	moodID := c.Param("id")
	record, err := h.moodService.GetMood(c.Request.Context(), userID, moodID)
	if err != nil {
		if errors.Is(err, service.ErrMoodNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "mood", moodID))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to get mood", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateMood handles PUT /api/v1/moods/:id
func (h *MoodHandler) UpdateMood(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.UpdateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(
			apierror.GetRequestID(c), err.Error(), "Please check your input and try again"))
		return
	}

	moodID := c.Param("id")
	record, err := h.moodService.UpdateMood(c.Request.Context(), userID, moodID, &req)
	if err != nil {
		if errors.Is(err, service.ErrMoodNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "mood", moodID))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to update mood", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteMood handles DELETE /api/v1/moods/:id
func (h *MoodHandler) DeleteMood(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	moodID := c.Param("id")
	if err := h.moodService.DeleteMood(c.Request.Context(), userID, moodID); err != nil {
		if errors.Is(err, service.ErrMoodNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "mood", moodID))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to delete mood", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.Status(http.StatusNoContent)
}
