package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	portssvc "github.com/SscSPs/intl_pricing_service/internal/core/ports/services"
	"github.com/SscSPs/intl_pricing_service/internal/dto"
	"github.com/SscSPs/intl_pricing_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler serves conversions and the rate tables.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	conversionService   portssvc.ConversionSvcFacade
	currencyService     portssvc.CurrencySvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, cs portssvc.ConversionSvcFacade, cur portssvc.CurrencySvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		conversionService:   cs,
		currencyService:     cur,
	}
}

// registerExchangeRateRoutes registers the conversion and rate routes.
func registerExchangeRateRoutes(rg *gin.RouterGroup, ers portssvc.ExchangeRateSvcFacade, cs portssvc.ConversionSvcFacade, cur portssvc.CurrencySvcFacade) {
	h := newExchangeRateHandler(ers, cs, cur)

	rg.GET("/convert", h.convert)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getCurrentRates)
		rates.GET("/:code/history", h.getRateHistory)
	}
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount in minor units using the current base-relative rates. Responds 503 with the base currency as fallback when a rate is missing or stale.
// @Tags rates
// @Produce  json
// @Param   amount query int true "Amount in minor units of the source currency"
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown currency"
// @Failure 503 {object} dto.ConversionUnavailableResponse "Conversion unavailable"
// @Router /convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	logger = logger.With(slog.String("from", req.From), slog.String("to", req.To))

	conversion, err := h.conversionService.Convert(c.Request.Context(), *req.Amount, req.From, req.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrConversionUnavailable) {
			logger.Warn("Conversion unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, dto.ConversionUnavailableResponse{
				Error:            err.Error(),
				FallbackCurrency: h.baseCurrency(c),
			})
			return
		}
		respondError(c, logger, err, "Failed to convert amount")
		return
	}

	res := dto.ToConversionResponse(conversion)
	res.FormattedAmount = formatOrEmpty(c, h.currencyService, conversion.AmountMinor, conversion.FromCurrency)
	res.FormattedResult = formatOrEmpty(c, h.currencyService, conversion.ConvertedMinor, conversion.ToCurrency)
	c.JSON(http.StatusOK, res)
}

func (h *exchangeRateHandler) baseCurrency(c *gin.Context) string {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		return ""
	}
	for _, cur := range currencies {
		if cur.IsBase {
			return cur.CurrencyCode
		}
	}
	return ""
}

// getCurrentRates godoc
// @Summary Current exchange rates
// @Description Returns the base-relative rate snapshot with per-currency age and staleness
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Failure 500 {object} map[string]string "Failed to retrieve rates"
// @Router /rates [get]
func (h *exchangeRateHandler) getCurrentRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, err := h.exchangeRateService.GetCurrentRates(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateTableResponse(table))
}

// getRateHistory godoc
// @Summary Exchange rate history
// @Description Lists persisted base-relative rates for one currency, newest first
// @Tags rates
// @Produce  json
// @Param   code path string true "Currency code"
// @Param   limit query int false "Maximum rows (default 30, max 500)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.RateHistoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown currency"
// @Failure 500 {object} map[string]string "Failed to retrieve rate history"
// @Router /rates/{code}/history [get]
func (h *exchangeRateHandler) getRateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", c.Param("code")))
	var req dto.RateHistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	var nextToken *string
	if req.NextToken != "" {
		nextToken = &req.NextToken
	}

	history, next, err := h.exchangeRateService.GetRateHistory(c.Request.Context(), c.Param("code"), req.Limit, nextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve rate history")
		return
	}
	c.JSON(http.StatusOK, dto.RateHistoryResponse{
		Rates:     dto.ToListExchangeRateResponse(history),
		NextToken: next,
	})
}
