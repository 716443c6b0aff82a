package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kitad/staybook/internal/helpers"
	"github.com/kitad/staybook/internal/models"
	"github.com/kitad/staybook/internal/services"
)

// SearchHotels handles the public hotel search: filter + sort + page
// window against the hotel collection, with total-count metadata.
func SearchHotels(h *services.HotelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := models.ParseSearchParams(c.Request.URL.Query())

		response, err := h.SearchHotels(c.Request.Context(), params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Something went wrong"))
			return
		}

		c.JSON(http.StatusOK, response)
	}
}

func GetHotel(h *services.HotelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID := c.Param("id")
		if hotelID == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("hotel ID is required"))
			return
		}

		hotel, err := h.GetHotel(c.Request.Context(), hotelID)
		if err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("hotel not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error fetching hotel"))
			return
		}

		c.JSON(http.StatusOK, hotel)
	}
}
