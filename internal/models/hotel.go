package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
}

type Location struct {
	Latitude  float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Address   Address `bson:"address,omitempty" json:"address,omitempty"`
}

type Contact struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

type Policies struct {
	CheckInTime        string `bson:"checkInTime,omitempty" json:"checkInTime,omitempty"`
	CheckOutTime       string `bson:"checkOutTime,omitempty" json:"checkOutTime,omitempty"`
	CancellationPolicy string `bson:"cancellationPolicy,omitempty" json:"cancellationPolicy,omitempty"`
	PetPolicy          string `bson:"petPolicy,omitempty" json:"petPolicy,omitempty"`
	SmokingPolicy      string `bson:"smokingPolicy,omitempty" json:"smokingPolicy,omitempty"`
}

type Hotel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID      string             `bson:"userId" json:"userId"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	City        string             `bson:"city" json:"city" validate:"required"`
	Country     string             `bson:"country" json:"country" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Type        []string           `bson:"type" json:"type" validate:"required,min=1"`
	AdultCount  int                `bson:"adultCount" json:"adultCount" validate:"required,min=1"`
	ChildCount  int                `bson:"childCount" json:"childCount" validate:"min=0"`
	Facilities  []string           `bson:"facilities" json:"facilities" validate:"required"`

	PricePerNight float64 `bson:"pricePerNight" json:"pricePerNight" validate:"required,gt=0"`
	StarRating    int     `bson:"starRating" json:"starRating" validate:"required,min=1,max=5"`
	ImageURLs     []string `bson:"imageUrls" json:"imageUrls"`

	Location *Location `bson:"location,omitempty" json:"location,omitempty"`
	Contact  *Contact  `bson:"contact,omitempty" json:"contact,omitempty"`
	Policies *Policies `bson:"policies,omitempty" json:"policies,omitempty"`

	// Set false on creation; only admin-approved hotels are publicly searchable.
	// Stored as a pointer so legacy documents without the flag stay visible.
	IsApproved *bool `bson:"isApproved,omitempty" json:"isApproved,omitempty"`

	// Denormalized aggregates, maintained by the booking and review pipelines.
	TotalBookings int64   `bson:"totalBookings,omitempty" json:"totalBookings,omitempty"`
	TotalRevenue  float64 `bson:"totalRevenue,omitempty" json:"totalRevenue,omitempty"`
	AverageRating float64 `bson:"averageRating,omitempty" json:"averageRating,omitempty"`

	LastUpdated time.Time `bson:"lastUpdated" json:"lastUpdated"`
	CreatedAt   time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
