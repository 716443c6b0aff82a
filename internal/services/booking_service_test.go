package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kitad/staybook/internal/models"
	"github.com/kitad/staybook/internal/payments"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeHotelsRepo embeds the interface so each test only fills in the
// methods it expects to be called; anything else panics.
type fakeHotelsRepo struct {
	models.HotelsRepo
	getByID        func(id string) (*models.Hotel, error)
	incrementStats func(id string, bookings int64, revenue float64) error
	setAverage     func(id string, rating float64) error
	search         func(filter bson.M, sort bson.D, skip, limit int64) ([]*models.Hotel, error)
	count          func(filter bson.M) (int64, error)
}

func (f *fakeHotelsRepo) SearchHotels(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]*models.Hotel, error) {
	return f.search(filter, sort, skip, limit)
}

func (f *fakeHotelsRepo) CountHotels(ctx context.Context, filter bson.M) (int64, error) {
	return f.count(filter)
}

func (f *fakeHotelsRepo) SetHotelAverageRating(ctx context.Context, id string, rating float64) error {
	return f.setAverage(id, rating)
}

func (f *fakeHotelsRepo) GetHotelByID(ctx context.Context, id string) (*models.Hotel, error) {
	return f.getByID(id)
}

func (f *fakeHotelsRepo) IncrementHotelStats(ctx context.Context, id string, bookings int64, revenue float64) error {
	return f.incrementStats(id, bookings, revenue)
}

type fakeBookingsRepo struct {
	models.BookingsRepo
	create       func(booking *models.Booking) (*models.Booking, error)
	listByUser   func(userID string) ([]*models.Booking, error)
	getConfirmed func(bookingID, userID, hotelID string) (*models.Booking, error)
}

func (f *fakeBookingsRepo) GetConfirmedBooking(ctx context.Context, bookingID, userID, hotelID string) (*models.Booking, error) {
	return f.getConfirmed(bookingID, userID, hotelID)
}

func (f *fakeBookingsRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	return f.create(booking)
}

func (f *fakeBookingsRepo) ListBookingsByUser(ctx context.Context, userID string) ([]*models.Booking, error) {
	return f.listByUser(userID)
}

type fakeUsersRepo struct {
	models.UsersRepo
	incrementStats func(id string, bookings int64, spent float64) error
}

func (f *fakeUsersRepo) IncrementUserStats(ctx context.Context, id string, bookings int64, spent float64) error {
	return f.incrementStats(id, bookings, spent)
}

type fakeProvider struct {
	createIntent   func(amount int64, currency string, metadata map[string]string) (*payments.Intent, error)
	retrieveIntent func(id string) (*payments.Intent, error)
}

func (f *fakeProvider) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*payments.Intent, error) {
	return f.createIntent(amount, currency, metadata)
}

func (f *fakeProvider) RetrieveIntent(ctx context.Context, id string) (*payments.Intent, error) {
	return f.retrieveIntent(id)
}

func validBookingForm() *BookingForm {
	return &BookingForm{
		PaymentIntentID: "pi_123",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		AdultCount:      2,
		CheckIn:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		TotalCost:       357,
	}
}

func TestCreatePaymentIntentPricesStay(t *testing.T) {
	hotels := &fakeHotelsRepo{
		getByID: func(id string) (*models.Hotel, error) {
			return &models.Hotel{PricePerNight: 119}, nil
		},
	}

	var gotAmount int64
	var gotCurrency string
	var gotMetadata map[string]string
	provider := &fakeProvider{
		createIntent: func(amount int64, currency string, metadata map[string]string) (*payments.Intent, error) {
			gotAmount = amount
			gotCurrency = currency
			gotMetadata = metadata
			return &payments.Intent{ID: "pi_123", ClientSecret: "secret_abc"}, nil
		},
	}

	svc := NewBookingService(hotels, nil, nil, provider)
	resp, err := svc.CreatePaymentIntent(context.Background(), "user-1", "hotel-1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.TotalCost != 357 {
		t.Errorf("totalCost: got %v, want 357", resp.TotalCost)
	}
	if gotAmount != 35700 {
		t.Errorf("amount: got %d, want 35700 minor units", gotAmount)
	}
	if gotCurrency != "usd" {
		t.Errorf("currency: got %q", gotCurrency)
	}
	if gotMetadata["hotelId"] != "hotel-1" || gotMetadata["userId"] != "user-1" {
		t.Errorf("metadata: got %v", gotMetadata)
	}
	if resp.PaymentIntentID != "pi_123" || resp.ClientSecret != "secret_abc" {
		t.Errorf("response: got %+v", resp)
	}
}

func TestCreatePaymentIntentHotelMissing(t *testing.T) {
	hotels := &fakeHotelsRepo{
		getByID: func(id string) (*models.Hotel, error) {
			return nil, models.ErrNotFound
		},
	}

	svc := NewBookingService(hotels, nil, nil, &fakeProvider{})
	_, err := svc.CreatePaymentIntent(context.Background(), "user-1", "hotel-1", 2)
	if !errors.Is(err, ErrHotelNotFound) {
		t.Fatalf("got %v, want ErrHotelNotFound", err)
	}
}

func TestConfirmBookingRejectsMismatchedMetadata(t *testing.T) {
	provider := &fakeProvider{
		retrieveIntent: func(id string) (*payments.Intent, error) {
			return &payments.Intent{
				ID:       id,
				Status:   payments.IntentStatusSucceeded,
				Metadata: map[string]string{"hotelId": "hotel-1", "userId": "someone-else"},
			}, nil
		},
	}

	svc := NewBookingService(nil, nil, nil, provider)
	err := svc.ConfirmBooking(context.Background(), "user-1", "hotel-1", validBookingForm())
	if !errors.Is(err, ErrPaymentIntentMismatch) {
		t.Fatalf("got %v, want ErrPaymentIntentMismatch", err)
	}
}

func TestConfirmBookingRejectsUnsettledIntent(t *testing.T) {
	provider := &fakeProvider{
		retrieveIntent: func(id string) (*payments.Intent, error) {
			return &payments.Intent{
				ID:       id,
				Status:   "requires_payment_method",
				Metadata: map[string]string{"hotelId": "hotel-1", "userId": "user-1"},
			}, nil
		},
	}

	svc := NewBookingService(nil, nil, nil, provider)
	err := svc.ConfirmBooking(context.Background(), "user-1", "hotel-1", validBookingForm())
	if !errors.Is(err, ErrPaymentIntentNotSucceeded) {
		t.Fatalf("got %v, want ErrPaymentIntentNotSucceeded", err)
	}
	if !strings.Contains(err.Error(), "requires_payment_method") {
		t.Errorf("error should carry the processor status, got %q", err.Error())
	}
}

func TestConfirmBookingIntentMissing(t *testing.T) {
	provider := &fakeProvider{
		retrieveIntent: func(id string) (*payments.Intent, error) {
			return nil, payments.ErrIntentNotFound
		},
	}

	svc := NewBookingService(nil, nil, nil, provider)
	err := svc.ConfirmBooking(context.Background(), "user-1", "hotel-1", validBookingForm())
	if !errors.Is(err, ErrPaymentIntentNotFound) {
		t.Fatalf("got %v, want ErrPaymentIntentNotFound", err)
	}
}

func TestConfirmBookingProcessorOutageIsNotMissingIntent(t *testing.T) {
	outage := errors.New("stripe: connection reset by peer")
	provider := &fakeProvider{
		retrieveIntent: func(id string) (*payments.Intent, error) {
			return nil, outage
		},
	}

	svc := NewBookingService(nil, nil, nil, provider)
	err := svc.ConfirmBooking(context.Background(), "user-1", "hotel-1", validBookingForm())
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrPaymentIntentNotFound) {
		t.Fatal("a transient processor failure must not surface as a missing intent")
	}
	if !errors.Is(err, outage) {
		t.Fatalf("processor error should propagate, got %v", err)
	}
}

func TestConfirmBookingPersistsAndBumpsAggregates(t *testing.T) {
	provider := &fakeProvider{
		retrieveIntent: func(id string) (*payments.Intent, error) {
			return &payments.Intent{
				ID:       id,
				Status:   payments.IntentStatusSucceeded,
				Metadata: map[string]string{"hotelId": "hotel-1", "userId": "user-1"},
			}, nil
		},
	}

	var saved *models.Booking
	bookings := &fakeBookingsRepo{
		create: func(b *models.Booking) (*models.Booking, error) {
			saved = b
			return b, nil
		},
	}

	var hotelBookings int64
	var hotelRevenue float64
	hotels := &fakeHotelsRepo{
		incrementStats: func(id string, b int64, revenue float64) error {
			if id != "hotel-1" {
				t.Errorf("hotel stats bumped on %q", id)
			}
			hotelBookings, hotelRevenue = b, revenue
			return nil
		},
	}

	var userBookings int64
	var userSpent float64
	users := &fakeUsersRepo{
		incrementStats: func(id string, b int64, spent float64) error {
			if id != "user-1" {
				t.Errorf("user stats bumped on %q", id)
			}
			userBookings, userSpent = b, spent
			return nil
		},
	}

	svc := NewBookingService(hotels, bookings, users, provider)
	if err := svc.ConfirmBooking(context.Background(), "user-1", "hotel-1", validBookingForm()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("booking was not persisted")
	}
	if saved.Status != models.BookingStatusConfirmed {
		t.Errorf("status: got %q", saved.Status)
	}
	if saved.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("paymentStatus: got %q", saved.PaymentStatus)
	}
	if saved.PaymentIntentID != "pi_123" {
		t.Errorf("paymentIntentId: got %q", saved.PaymentIntentID)
	}
	if hotelBookings != 1 || hotelRevenue != 357 {
		t.Errorf("hotel aggregates: got +%d bookings, +%v revenue", hotelBookings, hotelRevenue)
	}
	if userBookings != 1 || userSpent != 357 {
		t.Errorf("user aggregates: got +%d bookings, +%v spent", userBookings, userSpent)
	}
}

func TestConfirmBookingDuplicateIntent(t *testing.T) {
	provider := &fakeProvider{
		retrieveIntent: func(id string) (*payments.Intent, error) {
			return &payments.Intent{
				ID:       id,
				Status:   payments.IntentStatusSucceeded,
				Metadata: map[string]string{"hotelId": "hotel-1", "userId": "user-1"},
			}, nil
		},
	}

	bookings := &fakeBookingsRepo{
		create: func(b *models.Booking) (*models.Booking, error) {
			return nil, models.ErrDuplicateBooking
		},
	}

	svc := NewBookingService(nil, bookings, nil, provider)
	err := svc.ConfirmBooking(context.Background(), "user-1", "hotel-1", validBookingForm())
	if !errors.Is(err, models.ErrDuplicateBooking) {
		t.Fatalf("got %v, want ErrDuplicateBooking", err)
	}
}

func TestListMyBookingsGroupsByHotelAndSkipsDeleted(t *testing.T) {
	bookings := &fakeBookingsRepo{
		listByUser: func(userID string) ([]*models.Booking, error) {
			return []*models.Booking{
				{HotelID: "hotel-a", TotalCost: 100},
				{HotelID: "hotel-gone", TotalCost: 50},
				{HotelID: "hotel-a", TotalCost: 200},
				{HotelID: "hotel-b", TotalCost: 75},
			}, nil
		},
	}
	hotels := &fakeHotelsRepo{
		getByID: func(id string) (*models.Hotel, error) {
			if id == "hotel-gone" {
				return nil, models.ErrNotFound
			}
			return &models.Hotel{Name: id}, nil
		},
	}

	svc := NewBookingService(hotels, bookings, nil, &fakeProvider{})
	result, err := svc.ListMyBookings(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("got %d hotels, want 2 (deleted hotel skipped)", len(result))
	}
	if result[0].Name != "hotel-a" || result[1].Name != "hotel-b" {
		t.Errorf("grouping order: got %q then %q", result[0].Name, result[1].Name)
	}
	if len(result[0].Bookings) != 2 {
		t.Errorf("hotel-a bookings: got %d, want 2", len(result[0].Bookings))
	}
	if len(result[1].Bookings) != 1 {
		t.Errorf("hotel-b bookings: got %d, want 1", len(result[1].Bookings))
	}
}
