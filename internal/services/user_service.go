package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kitad/staybook/internal/helpers"
	"github.com/kitad/staybook/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type RegisterRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required,min=6"`
	FirstName string          `json:"firstName" binding:"required"`
	LastName  string          `json:"lastName" binding:"required"`
	Phone     string          `json:"phone"`
	Address   *models.Address `json:"address"`
}

type UpdateProfileRequest struct {
	FirstName   string                  `json:"firstName" binding:"required"`
	LastName    string                  `json:"lastName" binding:"required"`
	Phone       string                  `json:"phone"`
	Address     *models.Address         `json:"address"`
	Preferences *models.UserPreferences `json:"preferences"`
}

type UserService struct {
	usersRepo models.UsersRepo
}

func NewUserService(usersRepo models.UsersRepo) *UserService {
	return &UserService{
		usersRepo: usersRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if _, err := us.usersRepo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, models.ErrDuplicateEmail
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      models.RoleUser,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return us.usersRepo.CreateUser(ctx, user)
}

func (us *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := us.usersRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !helpers.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (us *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	return us.usersRepo.GetUserByID(ctx, id)
}

func (us *UserService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.User, error) {
	update := bson.M{
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"phone":     req.Phone,
	}
	if req.Address != nil {
		update["address"] = req.Address
	}
	if req.Preferences != nil {
		update["preferences"] = req.Preferences
	}

	return us.usersRepo.UpdateUser(ctx, userID, update)
}
