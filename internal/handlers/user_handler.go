package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kitad/staybook/internal/helpers"
	"github.com/kitad/staybook/internal/middleware"
	"github.com/kitad/staybook/internal/services"
)

func GetCurrentUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		user, err := u.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("User not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("something went wrong"))
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func UpdateCurrentUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		var req services.UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		user, err := u.UpdateProfile(c.Request.Context(), claims.UserID, &req)
		if err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("User not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("something went wrong"))
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
