package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewCategories struct {
	Cleanliness int `bson:"cleanliness" json:"cleanliness" validate:"required,min=1,max=5"`
	Service     int `bson:"service" json:"service" validate:"required,min=1,max=5"`
	Location    int `bson:"location" json:"location" validate:"required,min=1,max=5"`
	Value       int `bson:"value" json:"value" validate:"required,min=1,max=5"`
	Amenities   int `bson:"amenities" json:"amenities" validate:"required,min=1,max=5"`
}

type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID       string             `bson:"userId" json:"userId"`
	HotelID      string             `bson:"hotelId" json:"hotelId" validate:"required"`
	BookingID    string             `bson:"bookingId" json:"bookingId" validate:"required"`
	Rating       int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment      string             `bson:"comment" json:"comment" validate:"required"`
	Categories   ReviewCategories   `bson:"categories" json:"categories"`
	IsVerified   bool               `bson:"isVerified" json:"isVerified"`
	HelpfulCount int                `bson:"helpfulCount" json:"helpfulCount"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
