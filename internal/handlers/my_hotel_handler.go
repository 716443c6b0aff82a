package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kitad/staybook/internal/helpers"
	"github.com/kitad/staybook/internal/middleware"
	"github.com/kitad/staybook/internal/models"
	"github.com/kitad/staybook/internal/services"
)

// hotelFromForm builds a Hotel out of the multipart fields the dashboard
// forms submit. Array fields arrive as repeated keys, nested contact and
// policies fields use dotted names.
func hotelFromForm(c *gin.Context) *models.Hotel {
	adultCount, _ := strconv.Atoi(c.PostForm("adultCount"))
	childCount, _ := strconv.Atoi(c.PostForm("childCount"))
	pricePerNight, _ := strconv.ParseFloat(c.PostForm("pricePerNight"), 64)
	starRating, _ := strconv.Atoi(c.PostForm("starRating"))

	hotel := &models.Hotel{
		Name:          c.PostForm("name"),
		City:          c.PostForm("city"),
		Country:       c.PostForm("country"),
		Description:   c.PostForm("description"),
		Type:          c.PostFormArray("type"),
		AdultCount:    adultCount,
		ChildCount:    childCount,
		Facilities:    c.PostFormArray("facilities"),
		PricePerNight: pricePerNight,
		StarRating:    starRating,
	}

	contact := models.Contact{
		Phone:   c.PostForm("contact.phone"),
		Email:   c.PostForm("contact.email"),
		Website: c.PostForm("contact.website"),
	}
	if contact != (models.Contact{}) {
		hotel.Contact = &contact
	}

	policies := models.Policies{
		CheckInTime:        c.PostForm("policies.checkInTime"),
		CheckOutTime:       c.PostForm("policies.checkOutTime"),
		CancellationPolicy: c.PostForm("policies.cancellationPolicy"),
		PetPolicy:          c.PostForm("policies.petPolicy"),
		SmokingPolicy:      c.PostForm("policies.smokingPolicy"),
	}
	if policies != (models.Policies{}) {
		hotel.Policies = &policies
	}

	return hotel
}

func CreateMyHotel(hs *services.HotelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid multipart form"))
			return
		}

		hotel := hotelFromForm(c)
		created, err := hs.CreateHotel(c.Request.Context(), hotel, claims.UserID, form.File["imageFiles"])
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Something went wrong"))
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

func ListMyHotels(hs *services.HotelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		hotels, err := hs.ListMyHotels(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error fetching hotels"))
			return
		}

		c.JSON(http.StatusOK, hotels)
	}
}

func GetMyHotel(hs *services.HotelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		hotel, err := hs.GetMyHotel(c.Request.Context(), c.Param("id"), claims.UserID)
		if err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("Hotel not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error fetching hotels"))
			return
		}

		c.JSON(http.StatusOK, hotel)
	}
}

func UpdateMyHotel(hs *services.HotelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid multipart form"))
			return
		}

		hotel := hotelFromForm(c)
		retained := c.PostFormArray("imageUrls")

		updated, err := hs.UpdateHotel(c.Request.Context(), c.Param("id"), claims.UserID, hotel, retained, form.File["imageFiles"])
		if err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("Hotel not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Something went wrong"))
			return
		}

		c.JSON(http.StatusCreated, updated)
	}
}
