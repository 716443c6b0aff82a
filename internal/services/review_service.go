package services

import (
	"context"
	"errors"
	"time"

	"github.com/kitad/staybook/internal/models"
)

var (
	ErrReviewNotAllowed = errors.New("you can only review hotels you have booked")
	ErrAlreadyReviewed  = errors.New("you have already reviewed this booking")
)

type ReviewRequest struct {
	HotelID    string                  `json:"hotelId" binding:"required"`
	BookingID  string                  `json:"bookingId" binding:"required"`
	Rating     int                     `json:"rating" binding:"required,min=1,max=5"`
	Comment    string                  `json:"comment" binding:"required"`
	Categories models.ReviewCategories `json:"categories" binding:"required"`
}

type ReviewService struct {
	reviewsRepo  models.ReviewsRepo
	bookingsRepo models.BookingsRepo
	hotelsRepo   models.HotelsRepo
}

func NewReviewService(reviewsRepo models.ReviewsRepo, bookingsRepo models.BookingsRepo, hotelsRepo models.HotelsRepo) *ReviewService {
	return &ReviewService{
		reviewsRepo:  reviewsRepo,
		bookingsRepo: bookingsRepo,
		hotelsRepo:   hotelsRepo,
	}
}

func (rs *ReviewService) ListHotelReviews(ctx context.Context, hotelID string) ([]*models.Review, error) {
	return rs.reviewsRepo.GetReviewsByHotel(ctx, hotelID)
}

// CreateReview accepts a review only from a guest holding a confirmed
// booking for the hotel, one review per booking, then recomputes the
// hotel's average rating from all of its reviews.
func (rs *ReviewService) CreateReview(ctx context.Context, userID string, req *ReviewRequest) (*models.Review, error) {
	_, err := rs.bookingsRepo.GetConfirmedBooking(ctx, req.BookingID, userID, req.HotelID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrReviewNotAllowed
		}
		return nil, err
	}

	if _, err := rs.reviewsRepo.GetReviewByBooking(ctx, req.BookingID, userID); err == nil {
		return nil, ErrAlreadyReviewed
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	review := &models.Review{
		UserID:     userID,
		HotelID:    req.HotelID,
		BookingID:  req.BookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Categories: req.Categories,
		IsVerified: true,
		CreatedAt:  time.Now(),
	}

	created, err := rs.reviewsRepo.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}

	reviews, err := rs.reviewsRepo.GetReviewsByHotel(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	if len(reviews) > 0 {
		avg := float64(sum) / float64(len(reviews))
		if err := rs.hotelsRepo.SetHotelAverageRating(ctx, req.HotelID, avg); err != nil {
			return nil, err
		}
	}

	return created, nil
}
