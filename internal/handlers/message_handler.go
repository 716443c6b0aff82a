package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kitad/staybook/internal/helpers"
	"github.com/kitad/staybook/internal/middleware"
	"github.com/kitad/staybook/internal/services"
)

func GetInbox(ms *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		messages, err := ms.Inbox(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error fetching messages"))
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

func GetUnreadCount(ms *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		count, err := ms.UnreadCount(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error fetching unread count"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

func SendMessage(ms *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		var req services.SendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		msg, err := ms.Send(c.Request.Context(), claims.UserID, &req)
		if err != nil {
			if errors.Is(err, services.ErrRecipientNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("Recipient not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error sending message"))
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

func SendBookingNotification(ms *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		var req services.BookingNotificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		msg, err := ms.SendBookingNotification(c.Request.Context(), claims.UserID, &req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error sending notification"))
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

func MarkMessageRead(ms *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		msg, err := ms.MarkRead(c.Request.Context(), c.Param("id"), claims.UserID)
		if err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("Message not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error updating message"))
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}

func DeleteMessage(ms *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}

		if err := ms.Delete(c.Request.Context(), c.Param("id"), claims.UserID); err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("Message not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Error deleting message"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
	}
}
