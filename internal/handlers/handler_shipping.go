package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	portssvc "github.com/SscSPs/intl_pricing_service/internal/core/ports/services"
	"github.com/SscSPs/intl_pricing_service/internal/dto"
	"github.com/SscSPs/intl_pricing_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// shippingHandler handles HTTP requests for shipping zones and quotes.
type shippingHandler struct {
	shippingService portssvc.ShippingSvcFacade
	currencyService portssvc.CurrencySvcFacade
}

func newShippingHandler(ss portssvc.ShippingSvcFacade, cs portssvc.CurrencySvcFacade) *shippingHandler {
	return &shippingHandler{shippingService: ss, currencyService: cs}
}

// registerShippingRoutes registers routes related to shipping.
func registerShippingRoutes(rg *gin.RouterGroup, ss portssvc.ShippingSvcFacade, cs portssvc.CurrencySvcFacade) {
	h := newShippingHandler(ss, cs)

	shipping := rg.Group("/shipping")
	{
		shipping.GET("/options", h.getShippingOptions)
		shipping.GET("/rate", h.calculateRate)
		shipping.GET("/zones/:country", h.resolveZone)
	}
}

// getShippingOptions godoc
// @Summary List shipping options
// @Description Quotes every service level offered to the destination country, slowest first. Countries that are not shipping-eligible get an empty list.
// @Tags shipping
// @Produce  json
// @Param   country query string true "Destination country code"
// @Param   weightGrams query int true "Parcel weight in grams"
// @Success 200 {object} dto.ShippingOptionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /shipping/options [get]
func (h *shippingHandler) getShippingOptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ShippingOptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	logger = logger.With(slog.String("country_code", req.Country))

	quotes, err := h.shippingService.GetShippingOptions(c.Request.Context(), req.Country, req.WeightGrams)
	if err != nil {
		respondError(c, logger, err, "Failed to list shipping options")
		return
	}

	res := dto.ShippingOptionsResponse{
		CountryCode: strings.ToUpper(req.Country),
		Options:     make([]dto.ShippingQuoteResponse, len(quotes)),
	}
	for i, q := range quotes {
		res.Options[i] = h.quoteResponse(c, q)
	}
	c.JSON(http.StatusOK, res)
}

// calculateRate godoc
// @Summary Price one shipping service level
// @Tags shipping
// @Produce  json
// @Param   zone query string true "Shipping zone ID"
// @Param   serviceLevel query string true "economy, standard, express or overnight"
// @Param   weightGrams query int true "Parcel weight in grams"
// @Success 200 {object} dto.ShippingQuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown zone"
// @Failure 422 {object} map[string]string "Service level not offered in zone"
// @Router /shipping/rate [get]
func (h *shippingHandler) calculateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ShippingRateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	logger = logger.With(slog.String("zone_id", req.ZoneID), slog.String("service_level", req.ServiceLevel))

	quote, err := h.shippingService.CalculateRate(c.Request.Context(), req.ZoneID, domain.ServiceLevel(req.ServiceLevel), req.WeightGrams)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate shipping rate")
		return
	}
	c.JSON(http.StatusOK, h.quoteResponse(c, *quote))
}

// resolveZone godoc
// @Summary Resolve the shipping zone of a country
// @Tags shipping
// @Produce  json
// @Param   country path string true "Country code"
// @Success 200 {object} dto.ShippingZoneResponse
// @Failure 400 {object} map[string]string "Invalid country code"
// @Router /shipping/zones/{country} [get]
func (h *shippingHandler) resolveZone(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("country_code", c.Param("country")))

	zone, err := h.shippingService.ResolveZone(c.Request.Context(), c.Param("country"))
	if err != nil {
		respondError(c, logger, err, "Failed to resolve shipping zone")
		return
	}
	c.JSON(http.StatusOK, dto.ToShippingZoneResponse(*zone))
}

func (h *shippingHandler) quoteResponse(c *gin.Context, q domain.ShippingQuote) dto.ShippingQuoteResponse {
	res := dto.ToShippingQuoteResponse(q)
	res.FormattedCost = formatOrEmpty(c, h.currencyService, q.CostMinor, q.CurrencyCode)
	return res
}
