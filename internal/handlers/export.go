package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"github.com/moodloom/backend/internal/analytics"
	"github.com/moodloom/backend/internal/apierror"
	"github.com/moodloom/backend/internal/logger"
	"github.com/moodloom/backend/internal/middleware"
	"github.com/moodloom/backend/internal/service"
)

type ExportHandler struct {
	analyticsService service.AnalyticsService
}

// NewExportHandler creates a new export handler
func NewExportHandler(analyticsService service.AnalyticsService) *ExportHandler {
	return &ExportHandler{analyticsService: analyticsService}
}

// Export handles GET /api/v1/moods/export
func (h *ExportHandler) Export(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	format := c.DefaultQuery("format", analytics.ExportFormatJSON)
	if format != analytics.ExportFormatJSON && format != analytics.ExportFormatCSV {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "format", Message: "must be json or csv"},
		}))
		return
	}

	days, ok := lookbackDays(c, "365")
	if !ok {
		return
	}

	result, err := h.analyticsService.ExportMoodHistory(c.Request.Context(), userID, format, days)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("mood export failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	filename := fmt.Sprintf("mood-history-%s", time.Now().Format("2006-01-02"))

	if result.Format == analytics.ExportFormatCSV {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(result.CSV))
		return
	}

	body, err := json.Marshal(result.JSON)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("export encoding failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
