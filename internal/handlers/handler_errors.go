package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusFor maps a service error onto the HTTP status the API reports for it.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrNoZoneMatch):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnsupportedServiceLevel):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrConversionUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, apperrors.ErrRefreshInProgress):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrAllProvidersFailed):
		return http.StatusBadGateway
	case errors.Is(err, apperrors.ErrInvalidCatalog):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": ...}. Server errors hide the cause
// behind fallbackMsg; client errors echo the service message.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()), slog.Int("status", status))
		msg := fallbackMsg
		if status != http.StatusInternalServerError {
			msg = err.Error()
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}
	logger.Warn(fallbackMsg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindError reports a request that failed gin binding.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
