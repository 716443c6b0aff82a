package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kitad/staybook/internal/helpers"
	"github.com/kitad/staybook/internal/middleware"
	"github.com/kitad/staybook/internal/models"
	"github.com/kitad/staybook/internal/services"
)

func AdminListUsers(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := as.ListUsers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error fetching users"))
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func AdminStats(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := as.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error fetching stats"))
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func AdminListHotels(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotels, err := as.ListHotels(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error fetching hotels"))
			return
		}
		c.JSON(http.StatusOK, hotels)
	}
}

func AdminDeleteUser(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		if err := as.DeleteUser(c.Request.Context(), c.Param("id"), claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrSelfDeletion):
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("Cannot delete your own account"))
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("User not found"))
			default:
				c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error deleting user"))
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

func AdminUpdateUserRole(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Role string `json:"role" binding:"required,oneof=user hotel_owner admin"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		if err := as.UpdateUserRole(c.Request.Context(), c.Param("id"), req.Role); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("User not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error updating role"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
	}
}

func AdminDeleteHotel(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := as.DeleteHotel(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("Hotel not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error deleting hotel"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Hotel deleted"})
	}
}

func AdminApproveHotel(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotel, err := as.ApproveHotel(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("Hotel not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error approving hotel"))
			return
		}
		c.JSON(http.StatusOK, hotel)
	}
}
