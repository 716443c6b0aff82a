package services

import (
	"context"
	"errors"

	"github.com/kitad/staybook/internal/models"
)

var ErrSelfDeletion = errors.New("admin cannot delete themselves")

type PlatformStats struct {
	UserCount     int64   `json:"userCount"`
	HotelCount    int64   `json:"hotelCount"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalBookings int64   `json:"totalBookings"`
}

type AdminService struct {
	usersRepo  models.UsersRepo
	hotelsRepo models.HotelsRepo
}

func NewAdminService(usersRepo models.UsersRepo, hotelsRepo models.HotelsRepo) *AdminService {
	return &AdminService{
		usersRepo:  usersRepo,
		hotelsRepo: hotelsRepo,
	}
}

func (as *AdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return as.usersRepo.ListUsers(ctx)
}

// Stats sums the denormalized per-hotel aggregates across the platform.
func (as *AdminService) Stats(ctx context.Context) (*PlatformStats, error) {
	userCount, err := as.usersRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	hotels, err := as.hotelsRepo.ListAllHotels(ctx)
	if err != nil {
		return nil, err
	}

	stats := &PlatformStats{
		UserCount:  userCount,
		HotelCount: int64(len(hotels)),
	}
	for _, hotel := range hotels {
		stats.TotalRevenue += hotel.TotalRevenue
		stats.TotalBookings += hotel.TotalBookings
	}
	return stats, nil
}

func (as *AdminService) ListHotels(ctx context.Context) ([]*models.Hotel, error) {
	return as.hotelsRepo.ListAllHotels(ctx)
}

func (as *AdminService) DeleteUser(ctx context.Context, targetID, callerID string) error {
	if targetID == callerID {
		return ErrSelfDeletion
	}
	return as.usersRepo.DeleteUser(ctx, targetID)
}

func (as *AdminService) UpdateUserRole(ctx context.Context, userID, role string) error {
	return as.usersRepo.UpdateUserRole(ctx, userID, role)
}

func (as *AdminService) DeleteHotel(ctx context.Context, hotelID string) error {
	return as.hotelsRepo.DeleteHotel(ctx, hotelID)
}

func (as *AdminService) ApproveHotel(ctx context.Context, hotelID string) (*models.Hotel, error) {
	return as.hotelsRepo.ApproveHotel(ctx, hotelID)
}
