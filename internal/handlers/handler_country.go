package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/intl_pricing_service/internal/core/ports/services"
	"github.com/SscSPs/intl_pricing_service/internal/dto"
	"github.com/SscSPs/intl_pricing_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

type countryHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCountryHandler(cs portssvc.CatalogSvcFacade) *countryHandler {
	return &countryHandler{catalogService: cs}
}

// registerCountryRoutes registers routes related to countries.
func registerCountryRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCountryHandler(catalogService)

	countries := rg.Group("/countries")
	{
		countries.GET("", h.listCountries)
		countries.GET("/:code", h.getCountry)
	}
}

// listCountries godoc
// @Summary List all countries
// @Description Retrieves every configured country with its regional defaults and shipping eligibility
// @Tags countries
// @Produce  json
// @Success 200 {array} dto.CountryResponse
// @Failure 500 {object} map[string]string "Failed to list countries"
// @Router /countries [get]
func (h *countryHandler) listCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	countries, err := h.catalogService.ListCountries(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list countries")
		return
	}

	res := make([]dto.CountryResponse, len(countries))
	for i, country := range countries {
		res[i] = dto.ToCountryResponse(country)
	}
	c.JSON(http.StatusOK, res)
}

// getCountry godoc
// @Summary Get a country by code
// @Tags countries
// @Produce  json
// @Param   code path string true "Country Code (ISO 3166-1 alpha-2)"
// @Success 200 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string "Invalid country code"
// @Failure 404 {object} map[string]string "Country not found"
// @Router /countries/{code} [get]
func (h *countryHandler) getCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("country_code", c.Param("code")))

	country, err := h.catalogService.GetCountry(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve country")
		return
	}
	c.JSON(http.StatusOK, dto.ToCountryResponse(*country))
}
