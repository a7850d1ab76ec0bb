package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prajith-ops/Stayelo/internal/models"
	"github.com/prajith-ops/Stayelo/internal/services"
)

func Recommendations(r *services.RecommendationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := services.DefaultRecommendationLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
				return
			}
			limit = parsed
		}

		rooms, err := r.Recommend(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		if rooms == nil {
			rooms = []*models.Room{}
		}

		c.JSON(http.StatusOK, models.SuccessResponse(rooms, ""))
	}
}
