package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser       = "user"
	RoleHotelOwner = "hotel_owner"
	RoleAdmin      = "admin"
)

type UserPreferences struct {
	PreferredDestinations []string `bson:"preferredDestinations,omitempty" json:"preferredDestinations,omitempty"`
	PreferredHotelTypes   []string `bson:"preferredHotelTypes,omitempty" json:"preferredHotelTypes,omitempty"`
	BudgetMin             float64  `bson:"budgetMin,omitempty" json:"budgetMin,omitempty"`
	BudgetMax             float64  `bson:"budgetMax,omitempty" json:"budgetMax,omitempty"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Password  string             `bson:"password" json:"-"`
	FirstName string             `bson:"firstName" json:"firstName" validate:"required"`
	LastName  string             `bson:"lastName" json:"lastName" validate:"required"`
	Role      string             `bson:"role" json:"role"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   *Address           `bson:"address,omitempty" json:"address,omitempty"`

	Preferences *UserPreferences `bson:"preferences,omitempty" json:"preferences,omitempty"`

	// Denormalized aggregates, maintained by the booking pipeline.
	TotalBookings int64   `bson:"totalBookings,omitempty" json:"totalBookings,omitempty"`
	TotalSpent    float64 `bson:"totalSpent,omitempty" json:"totalSpent,omitempty"`

	LastLogin time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	IsActive  bool      `bson:"isActive,omitempty" json:"isActive,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
