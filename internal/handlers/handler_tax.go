package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/intl_pricing_service/internal/core/ports/services"
	"github.com/SscSPs/intl_pricing_service/internal/dto"
	"github.com/SscSPs/intl_pricing_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

type taxHandler struct {
	taxService      portssvc.TaxSvcFacade
	currencyService portssvc.CurrencySvcFacade
}

func newTaxHandler(ts portssvc.TaxSvcFacade, cs portssvc.CurrencySvcFacade) *taxHandler {
	return &taxHandler{taxService: ts, currencyService: cs}
}

func registerTaxRoutes(rg *gin.RouterGroup, ts portssvc.TaxSvcFacade, cs portssvc.CurrencySvcFacade) {
	h := newTaxHandler(ts, cs)
	rg.POST("/tax/calculate", h.calculateTax)
}

// calculateTax godoc
// @Summary Calculate consumption tax
// @Description Computes VAT, GST or sales tax for an amount. The sub-region rate (e.g. US-CA) wins over the country rate; unknown jurisdictions are taxed at zero.
// @Tags tax
// @Accept  json
// @Produce  json
// @Param   request body dto.CalculateTaxRequest true "Amount and jurisdiction"
// @Success 200 {object} dto.TaxResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /tax/calculate [post]
func (h *taxHandler) calculateTax(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	logger = logger.With(slog.String("country_code", req.CountryCode), slog.String("sub_region", req.SubRegion))

	result, err := h.taxService.CalculateTax(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "Failed to calculate tax")
		return
	}

	res := dto.ToTaxResponse(result)
	if result.CurrencyCode != "" {
		res.FormattedTax = formatOrEmpty(c, h.currencyService, result.TaxMinor, result.CurrencyCode)
		res.FormattedTotal = formatOrEmpty(c, h.currencyService, result.TotalMinor, result.CurrencyCode)
	}
	c.JSON(http.StatusOK, res)
}
