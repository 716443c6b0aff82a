package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
	BookingStatusRefunded  = "refunded"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID          string             `bson:"userId" json:"userId"`
	HotelID         string             `bson:"hotelId" json:"hotelId"`
	PaymentIntentID string             `bson:"paymentIntentId" json:"paymentIntentId"`
	FirstName       string             `bson:"firstName" json:"firstName"`
	LastName        string             `bson:"lastName" json:"lastName"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	AdultCount      int                `bson:"adultCount" json:"adultCount"`
	ChildCount      int                `bson:"childCount" json:"childCount"`
	CheckIn         time.Time          `bson:"checkIn" json:"checkIn"`
	CheckOut        time.Time          `bson:"checkOut" json:"checkOut"`
	TotalCost       float64            `bson:"totalCost" json:"totalCost"`
	Status          string             `bson:"status" json:"status"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	SpecialRequests string             `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// HotelWithBookings is the my-bookings read model: a hotel joined with
// the requesting user's bookings for it.
type HotelWithBookings struct {
	Hotel    `bson:",inline"`
	Bookings []*Booking `bson:"bookings" json:"bookings"`
}
