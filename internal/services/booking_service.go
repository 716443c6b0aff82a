package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/kitad/staybook/internal/models"
	"github.com/kitad/staybook/internal/payments"
)

var (
	ErrHotelNotFound             = errors.New("hotel not found")
	ErrPaymentIntentNotFound     = errors.New("payment intent not found")
	ErrPaymentIntentMismatch     = errors.New("payment intent mismatch")
	ErrPaymentIntentNotSucceeded = errors.New("payment intent not succeeded")
)

// BookingForm is the confirmation payload the client submits after its
// payment UI completes.
type BookingForm struct {
	PaymentIntentID string    `json:"paymentIntentId" binding:"required"`
	FirstName       string    `json:"firstName" binding:"required"`
	LastName        string    `json:"lastName" binding:"required"`
	Email           string    `json:"email" binding:"required,email"`
	Phone           string    `json:"phone"`
	AdultCount      int       `json:"adultCount" binding:"required,min=1"`
	ChildCount      int       `json:"childCount" binding:"min=0"`
	CheckIn         time.Time `json:"checkIn" binding:"required"`
	CheckOut        time.Time `json:"checkOut" binding:"required"`
	TotalCost       float64   `json:"totalCost" binding:"required,gt=0"`
	SpecialRequests string    `json:"specialRequests"`
}

type BookingService struct {
	hotelsRepo   models.HotelsRepo
	bookingsRepo models.BookingsRepo
	usersRepo    models.UsersRepo
	provider     payments.Provider
}

func NewBookingService(hotelsRepo models.HotelsRepo, bookingsRepo models.BookingsRepo, usersRepo models.UsersRepo, provider payments.Provider) *BookingService {
	return &BookingService{
		hotelsRepo:   hotelsRepo,
		bookingsRepo: bookingsRepo,
		usersRepo:    usersRepo,
		provider:     provider,
	}
}

// CreatePaymentIntent prices the stay and opens a processor-side
// authorization tagged with the hotel and caller so the confirm step can
// verify ownership. No booking exists yet at this point.
func (bs *BookingService) CreatePaymentIntent(ctx context.Context, userID, hotelID string, numberOfNights int) (*models.PaymentIntentResponse, error) {
	if numberOfNights <= 0 {
		return nil, fmt.Errorf("numberOfNights must be positive")
	}

	hotel, err := bs.hotelsRepo.GetHotelByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	totalCost := hotel.PricePerNight * float64(numberOfNights)
	amount := int64(math.Round(totalCost * 100))

	intent, err := bs.provider.CreateIntent(ctx, amount, "usd", map[string]string{
		"hotelId": hotelID,
		"userId":  userID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating payment intent: %w", err)
	}
	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("payment intent has no client secret")
	}

	return &models.PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		TotalCost:       totalCost,
	}, nil
}

// ConfirmBooking verifies the payment authorization against the processor
// and, on success, persists the booking and bumps the denormalized
// aggregates on the hotel and user records.
//
// The three writes are issued independently; there is no cross-document
// transaction. A crash after the booking insert can leave the counters
// behind the bookings collection. The unique paymentIntentId index keeps a
// retried confirm from creating a second booking.
func (bs *BookingService) ConfirmBooking(ctx context.Context, userID, hotelID string, form *BookingForm) error {
	intent, err := bs.provider.RetrieveIntent(ctx, form.PaymentIntentID)
	if err != nil {
		if errors.Is(err, payments.ErrIntentNotFound) {
			return ErrPaymentIntentNotFound
		}
		return fmt.Errorf("error retrieving payment intent: %w", err)
	}

	if intent.Metadata["hotelId"] != hotelID || intent.Metadata["userId"] != userID {
		return ErrPaymentIntentMismatch
	}

	if intent.Status != payments.IntentStatusSucceeded {
		return fmt.Errorf("%w. Status: %s", ErrPaymentIntentNotSucceeded, intent.Status)
	}

	booking := &models.Booking{
		UserID:          userID,
		HotelID:         hotelID,
		PaymentIntentID: form.PaymentIntentID,
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Email:           form.Email,
		Phone:           form.Phone,
		AdultCount:      form.AdultCount,
		ChildCount:      form.ChildCount,
		CheckIn:         form.CheckIn,
		CheckOut:        form.CheckOut,
		TotalCost:       form.TotalCost,
		Status:          models.BookingStatusConfirmed,
		PaymentStatus:   models.PaymentStatusPaid,
		SpecialRequests: form.SpecialRequests,
		CreatedAt:       time.Now(),
	}

	if _, err := bs.bookingsRepo.CreateBooking(ctx, booking); err != nil {
		return err
	}

	if err := bs.hotelsRepo.IncrementHotelStats(ctx, hotelID, 1, form.TotalCost); err != nil {
		return fmt.Errorf("booking saved but hotel stats update failed: %w", err)
	}
	if err := bs.usersRepo.IncrementUserStats(ctx, userID, 1, form.TotalCost); err != nil {
		return fmt.Errorf("booking saved but user stats update failed: %w", err)
	}

	return nil
}

// ListMyBookings returns the hotels the user has booked, each with the
// user's bookings for it attached.
func (bs *BookingService) ListMyBookings(ctx context.Context, userID string) ([]*models.HotelWithBookings, error) {
	bookings, err := bs.bookingsRepo.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byHotel := make(map[string][]*models.Booking)
	order := []string{}
	for _, b := range bookings {
		if _, seen := byHotel[b.HotelID]; !seen {
			order = append(order, b.HotelID)
		}
		byHotel[b.HotelID] = append(byHotel[b.HotelID], b)
	}

	result := make([]*models.HotelWithBookings, 0, len(order))
	for _, hotelID := range order {
		hotel, err := bs.hotelsRepo.GetHotelByID(ctx, hotelID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				// Hotel deleted since the stay; skip rather than fail the page.
				continue
			}
			return nil, err
		}
		result = append(result, &models.HotelWithBookings{
			Hotel:    *hotel,
			Bookings: byHotel[hotelID],
		})
	}
	return result, nil
}
