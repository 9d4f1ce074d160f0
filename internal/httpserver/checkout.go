package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"techtrove/internal/service/checkout"
)

func checkoutHandler(svc CheckoutService, latency time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := simulateLatency(c.Request.Context(), latency); err != nil {
			respondError(c, err)
			return
		}
		order, problems, err := svc.Place(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			respondError(c, err)
			return
		}
		if len(problems) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": problems})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}
