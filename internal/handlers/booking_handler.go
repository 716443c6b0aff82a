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

type paymentIntentRequest struct {
	NumberOfNights int `json:"numberOfNights" binding:"required,min=1"`
}

// CreatePaymentIntent prices the stay and opens a payment authorization
// with the processor. Booking creation happens only in ConfirmBooking,
// after the client's payment UI completes.
func CreatePaymentIntent(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		var req paymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		response, err := b.CreatePaymentIntent(c.Request.Context(), claims.UserID, c.Param("id"), req.NumberOfNights)
		if err != nil {
			if errors.Is(err, services.ErrHotelNotFound) {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("Hotel not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error creating payment intent"))
			return
		}

		c.JSON(http.StatusOK, response)
	}
}

// ConfirmBooking verifies the payment authorization and persists the
// booking. Every precondition failure is a hard 400; nothing is retried.
func ConfirmBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		var form services.BookingForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		err := b.ConfirmBooking(c.Request.Context(), claims.UserID, c.Param("id"), &form)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPaymentIntentNotFound),
				errors.Is(err, services.ErrPaymentIntentMismatch),
				errors.Is(err, services.ErrPaymentIntentNotSucceeded),
				errors.Is(err, models.ErrDuplicateBooking):
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			default:
				c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("something went wrong"))
			}
			return
		}

		c.Status(http.StatusOK)
	}
}

// ListMyBookings returns the hotels the caller has booked, with the
// caller's bookings attached.
func ListMyBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		hotels, err := b.ListMyBookings(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Unable to fetch bookings"))
			return
		}

		c.JSON(http.StatusOK, hotels)
	}
}
