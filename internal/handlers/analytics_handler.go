package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kitad/staybook/internal/helpers"
	"github.com/kitad/staybook/internal/middleware"
	"github.com/kitad/staybook/internal/services"
)

func GetDashboard(as *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		data, err := as.Dashboard(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error fetching analytics"))
			return
		}
		c.JSON(http.StatusOK, data)
	}
}
