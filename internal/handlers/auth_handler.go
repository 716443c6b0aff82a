package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kitad/staybook/internal/config"
	"github.com/kitad/staybook/internal/helpers"
	"github.com/kitad/staybook/internal/middleware"
	"github.com/kitad/staybook/internal/models"
	"github.com/kitad/staybook/internal/services"
)

func setAuthCookie(c *gin.Context, token string, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	if cfg.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
	}
	c.SetCookie(
		"auth_token",
		token,
		int(cfg.JWTExpiresIn/time.Second),
		"/",
		"", // let Gin pick current domain
		cfg.IsProduction(),
		true,
	)
}

func Register(u *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		user, err := u.Register(c.Request.Context(), &req)
		if err != nil {
			if errors.Is(err, models.ErrDuplicateEmail) {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("User already exists"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Something went wrong"))
			return
		}

		token, err := helpers.GenerateToken(user.ID.Hex(), user.Email, user.Role, cfg.JWTSecret, cfg.JWTExpiresIn)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Something went wrong"))
			return
		}

		setAuthCookie(c, token, cfg)
		c.JSON(http.StatusOK, gin.H{"message": "User registered OK", "token": token})
	}
}

func Login(u *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required,min=6"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		user, err := u.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("Invalid Credentials"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Something went wrong"))
			return
		}

		token, err := helpers.GenerateToken(user.ID.Hex(), user.Email, user.Role, cfg.JWTSecret, cfg.JWTExpiresIn)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Something went wrong"))
			return
		}

		setAuthCookie(c, token, cfg)
		c.JSON(http.StatusOK, gin.H{
			"userId":  user.ID.Hex(),
			"message": "Login successful",
			"token":   token,
			"user": gin.H{
				"id":        user.ID.Hex(),
				"email":     user.Email,
				"firstName": user.FirstName,
				"lastName":  user.LastName,
				"role":      user.Role,
			},
		})
	}
}

func ValidateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access denied"))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"userId": claims.UserID,
			"role":   claims.Role,
			"email":  claims.Email,
		})
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("auth_token", "", -1, "/", "", true, false)
		c.Status(http.StatusOK)
	}
}
