package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/intl_pricing_service/internal/core/ports/services"
	"github.com/SscSPs/intl_pricing_service/internal/dto"
	"github.com/SscSPs/intl_pricing_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler exposes operational endpoints. Routes are registered behind the admin role.
type adminHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	catalogService      portssvc.CatalogSvcFacade
}

func newAdminHandler(ers portssvc.ExchangeRateSvcFacade, cs portssvc.CatalogSvcFacade) *adminHandler {
	return &adminHandler{exchangeRateService: ers, catalogService: cs}
}

// registerAdminRoutes registers the admin routes on an already protected group.
func registerAdminRoutes(rg *gin.RouterGroup, ers portssvc.ExchangeRateSvcFacade, cs portssvc.CatalogSvcFacade) {
	h := newAdminHandler(ers, cs)

	rg.POST("/rates/refresh", h.refreshRates)
	rg.GET("/providers", h.listProviders)
	rg.POST("/catalog/reload", h.reloadCatalog)
}

// refreshRates godoc
// @Summary Refresh exchange rates now
// @Description Runs one refresh cycle against the configured providers in priority order
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Refresh already in progress"
// @Failure 502 {object} map[string]string "All providers failed"
// @Security BearerAuth
// @Router /admin/rates/refresh [post]
func (h *adminHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh exchange rates")

	result, err := h.exchangeRateService.RefreshRates(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to refresh exchange rates")
		return
	}

	logger.Info("Exchange rates refreshed",
		slog.String("provider", result.Provider),
		slog.Int("significant_changes", len(result.SignificantChanges)))
	c.JSON(http.StatusOK, dto.ToRefreshResponse(result))
}

// listProviders godoc
// @Summary Rate provider status
// @Description Reports each provider's circuit breaker state in priority order
// @Tags admin
// @Produce  json
// @Success 200 {array} dto.ProviderStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /admin/providers [get]
func (h *adminHandler) listProviders(c *gin.Context) {
	statuses := h.exchangeRateService.ProviderStatuses(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListProviderStatusResponse(statuses))
}

// reloadCatalog godoc
// @Summary Reload the catalog
// @Description Re-reads currencies, countries, zones, shipping and tax tables. An invalid catalog is rejected and the current one stays in place.
// @Tags admin
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 422 {object} map[string]string "Invalid catalog"
// @Security BearerAuth
// @Router /admin/catalog/reload [post]
func (h *adminHandler) reloadCatalog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.catalogService.ReloadCatalog(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to reload catalog")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}
