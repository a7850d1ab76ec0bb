package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prajith-ops/Stayelo/internal/models"
	"github.com/prajith-ops/Stayelo/internal/services"
)

// CreateOrder opens a gateway order so the client can start checkout.
// Amounts arrive in rupees; the gateway wants paise.
func CreateOrder(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Amount float64 `json:"amount" binding:"required,gt=0"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("a positive amount is required"))
			return
		}

		order, err := p.CreateOrder(c.Request.Context(), req.Amount)
		if err != nil {
			c.JSON(http.StatusBadGateway, models.ErrorResponse("failed to create payment order"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"order": order}, ""))
	}
}
