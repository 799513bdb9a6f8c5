package handlers

import (
	"errors"
	"fmt"
	"net/http"

	response "autocare/internal/adapter/http/dto/response"
	"autocare/internal/usecase"
	"autocare/pkg"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes the derived statistics and the CSV export over HTTP,
// keyed by the path's user_id.
type StatsHandler struct {
	analytics usecase.IAnalyticsUseCase
	export    usecase.IExportUseCase
}

func NewStatsHandler(analytics usecase.IAnalyticsUseCase, export usecase.IExportUseCase) *StatsHandler {
	return &StatsHandler{analytics: analytics, export: export}
}

func (h *StatsHandler) FullHistory(c *gin.Context) {
	summary, err := h.analytics.FullHistory(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFullHistory(summary))
}

func (h *StatsHandler) SinceLastChange(c *gin.Context) {
	summary, err := h.analytics.SinceLastChange(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSinceLast(summary))
}

func (h *StatsHandler) RepairSummary(c *gin.Context) {
	summary, err := h.analytics.RepairCosts(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRepairSummary(summary))
}

// Export streams the flat CSV of all the user's records.
func (h *StatsHandler) Export(c *gin.Context) {
	doc, err := h.export.ExportCSV(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.Data(http.StatusOK, doc.MIME, doc.Content)
}

func mapStatsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_USER_ID", "Invalid user id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
