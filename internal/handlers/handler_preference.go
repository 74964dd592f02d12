package handlers

import (
	"net/http"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	portssvc "github.com/SscSPs/intl_pricing_service/internal/core/ports/services"
	"github.com/SscSPs/intl_pricing_service/internal/dto"
	"github.com/SscSPs/intl_pricing_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// TimezoneHeader lets clients declare their IANA timezone.
const TimezoneHeader = "X-Timezone"

// preferenceHandler resolves and stores per-user display preferences.
type preferenceHandler struct {
	preferenceService portssvc.PreferenceSvcFacade
}

func newPreferenceHandler(ps portssvc.PreferenceSvcFacade) *preferenceHandler {
	return &preferenceHandler{preferenceService: ps}
}

// registerPreferenceRoutes registers preference routes. Resolution is open to
// anonymous callers; reading and writing saved preferences requires a token.
func registerPreferenceRoutes(rg *gin.RouterGroup, ps portssvc.PreferenceSvcFacade, jwtSecret string) {
	h := newPreferenceHandler(ps)

	prefs := rg.Group("/preferences")
	{
		prefs.GET("/resolve", h.resolvePreferences)
		me := prefs.Group("/me", middleware.AuthMiddleware(jwtSecret))
		me.GET("", h.getPreference)
		me.PUT("", h.updatePreference)
	}
}

// resolvePreferences godoc
// @Summary Resolve display preferences
// @Description Picks currency, locale and timezone from the saved preference, IP geolocation, Accept-Language/X-Timezone headers and the system default, in that order
// @Tags preferences
// @Produce  json
// @Param   Accept-Language header string false "Accept-Language"
// @Param   X-Timezone header string false "IANA timezone"
// @Success 200 {object} dto.ResolvedPreferenceResponse
// @Security BearerAuth
// @Router /preferences/resolve [get]
func (h *preferenceHandler) resolvePreferences(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	rc := domain.RequestContext{
		IPAddress:      c.ClientIP(),
		AcceptLanguage: c.GetHeader("Accept-Language"),
		Timezone:       c.GetHeader(TimezoneHeader),
	}

	resolved := h.preferenceService.ResolvePreferences(c.Request.Context(), userID, rc)
	c.JSON(http.StatusOK, dto.ToResolvedPreferenceResponse(resolved))
}

// getPreference godoc
// @Summary Get my saved preference
// @Tags preferences
// @Produce  json
// @Success 200 {object} dto.PreferenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No saved preference"
// @Security BearerAuth
// @Router /preferences/me [get]
func (h *preferenceHandler) getPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	pref, err := h.preferenceService.GetPreference(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve preference")
		return
	}
	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}

// updatePreference godoc
// @Summary Update my saved preference
// @Description Partial update: omitted fields are kept, empty strings clear the saved value
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   preference body dto.UpdatePreferenceRequest true "Fields to change"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /preferences/me [put]
func (h *preferenceHandler) updatePreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	pref, err := h.preferenceService.UpdatePreference(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "Failed to update preference")
		return
	}
	logger.Info("Preference updated")
	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}
