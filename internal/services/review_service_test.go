package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kitad/staybook/internal/models"
)

type fakeReviewsRepo struct {
	models.ReviewsRepo
	create       func(review *models.Review) (*models.Review, error)
	listByHotel  func(hotelID string) ([]*models.Review, error)
	getByBooking func(bookingID, userID string) (*models.Review, error)
}

func (f *fakeReviewsRepo) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	return f.create(review)
}

func (f *fakeReviewsRepo) GetReviewsByHotel(ctx context.Context, hotelID string) ([]*models.Review, error) {
	return f.listByHotel(hotelID)
}

func (f *fakeReviewsRepo) GetReviewByBooking(ctx context.Context, bookingID, userID string) (*models.Review, error) {
	return f.getByBooking(bookingID, userID)
}

func validReviewRequest() *ReviewRequest {
	return &ReviewRequest{
		HotelID:   "hotel-1",
		BookingID: "booking-1",
		Rating:    4,
		Comment:   "lovely stay",
	}
}

func TestCreateReviewRequiresConfirmedBooking(t *testing.T) {
	bookings := &fakeBookingsRepo{
		getConfirmed: func(bookingID, userID, hotelID string) (*models.Booking, error) {
			return nil, models.ErrNotFound
		},
	}

	svc := NewReviewService(nil, bookings, nil)
	_, err := svc.CreateReview(context.Background(), "user-1", validReviewRequest())
	if !errors.Is(err, ErrReviewNotAllowed) {
		t.Fatalf("got %v, want ErrReviewNotAllowed", err)
	}
}

func TestCreateReviewRejectsSecondReviewForBooking(t *testing.T) {
	bookings := &fakeBookingsRepo{
		getConfirmed: func(bookingID, userID, hotelID string) (*models.Booking, error) {
			return &models.Booking{}, nil
		},
	}
	reviews := &fakeReviewsRepo{
		getByBooking: func(bookingID, userID string) (*models.Review, error) {
			return &models.Review{}, nil
		},
	}

	svc := NewReviewService(reviews, bookings, nil)
	_, err := svc.CreateReview(context.Background(), "user-1", validReviewRequest())
	if !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("got %v, want ErrAlreadyReviewed", err)
	}
}

func TestCreateReviewRecomputesAverageRating(t *testing.T) {
	bookings := &fakeBookingsRepo{
		getConfirmed: func(bookingID, userID, hotelID string) (*models.Booking, error) {
			return &models.Booking{}, nil
		},
	}

	var saved *models.Review
	reviews := &fakeReviewsRepo{
		getByBooking: func(bookingID, userID string) (*models.Review, error) {
			return nil, models.ErrNotFound
		},
		create: func(r *models.Review) (*models.Review, error) {
			saved = r
			return r, nil
		},
		listByHotel: func(hotelID string) ([]*models.Review, error) {
			return []*models.Review{{Rating: 4}, {Rating: 5}, {Rating: 3}}, nil
		},
	}

	var gotHotelID string
	var gotRating float64
	hotels := &fakeHotelsRepo{}
	hotels.setAverage = func(id string, rating float64) error {
		gotHotelID = id
		gotRating = rating
		return nil
	}

	svc := NewReviewService(reviews, bookings, hotels)
	created, err := svc.CreateReview(context.Background(), "user-1", validReviewRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil || created == nil {
		t.Fatal("review was not persisted")
	}
	if !saved.IsVerified {
		t.Error("review from a confirmed booking should be verified")
	}
	if gotHotelID != "hotel-1" {
		t.Errorf("average rating written to %q", gotHotelID)
	}
	if gotRating != 4 {
		t.Errorf("average rating: got %v, want 4", gotRating)
	}
}
