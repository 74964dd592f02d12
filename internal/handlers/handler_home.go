package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiIndex lists the entry points of the public API.
var apiIndex = []string{
	"/api/v1/currencies",
	"/api/v1/countries",
	"/api/v1/convert",
	"/api/v1/rates",
	"/api/v1/shipping/options",
	"/api/v1/tax/calculate",
	"/api/v1/preferences/resolve",
}

// getHome godoc
// @Summary Service index
// @Description Name, API version and the main entry points of the pricing API.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":    "intl-pricing",
		"apiVersion": "v1",
		"endpoints":  apiIndex,
	})
}
