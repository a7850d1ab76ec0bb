package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prajith-ops/Stayelo/internal/models"
	"github.com/prajith-ops/Stayelo/internal/services"
)

func AdminStats(s *services.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := s.DashboardStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(stats, ""))
	}
}
