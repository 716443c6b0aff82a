package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kitad/staybook/internal/helpers"
	"github.com/kitad/staybook/internal/middleware"
	"github.com/kitad/staybook/internal/services"
)

func ListHotelReviews(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := rs.ListHotelReviews(c.Request.Context(), c.Param("hotelId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error fetching reviews"))
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

func CreateReview(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		var req services.ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		review, err := rs.CreateReview(c.Request.Context(), claims.UserID, &req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReviewNotAllowed),
				errors.Is(err, services.ErrAlreadyReviewed):
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			default:
				c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error saving review"))
			}
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}
