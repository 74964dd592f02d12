package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/intl_pricing_service/internal/core/ports/services"
	"github.com/SscSPs/intl_pricing_service/internal/dto"
	"github.com/SscSPs/intl_pricing_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.GET("/:code/format", h.formatAmount)
	}
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")
	logger = logger.With(slog.String("currency_code", currencyCode))

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(*currency))
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves every supported currency with its formatting rules
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies")
		return
	}

	logger.Debug("Currencies listed", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// formatAmount godoc
// @Summary Format an amount
// @Description Renders an amount in minor units using the currency's symbol, separators and precision
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)"
// @Param   amount query int true "Amount in minor units"
// @Success 200 {object} dto.FormattedAmountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{code}/format [get]
func (h *currencyHandler) formatAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatAmountRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve currency")
		return
	}
	formatted, err := h.currencyService.FormatAmount(c.Request.Context(), *req.Amount, currency.CurrencyCode)
	if err != nil {
		respondError(c, logger, err, "Failed to format amount")
		return
	}

	c.JSON(http.StatusOK, dto.FormattedAmountResponse{
		CurrencyCode: currency.CurrencyCode,
		AmountMinor:  *req.Amount,
		Formatted:    formatted,
	})
}

// formatOrEmpty is used to decorate responses; a formatting failure leaves the field out.
func formatOrEmpty(c *gin.Context, svc portssvc.CurrencyFormatterSvc, amountMinor int64, currencyCode string) string {
	formatted, err := svc.FormatAmount(c.Request.Context(), amountMinor, currencyCode)
	if err != nil {
		return ""
	}
	return formatted
}
