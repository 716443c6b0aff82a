package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]*Booking, error)
	ListBookingsByHotels(ctx context.Context, hotelIDs []string) ([]*Booking, error)
	GetConfirmedBooking(ctx context.Context, bookingID, userID, hotelID string) (*Booking, error)
}

// CreateBooking inserts the booking. The unique index on paymentIntentId
// makes a retried reconcile fail here instead of double-booking.
func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	_, err = col.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}
	return booking, nil
}

func (mdb *MongodbRepo) ListBookingsByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return mdb.findBookings(ctx, bson.M{"userId": userID})
}

func (mdb *MongodbRepo) ListBookingsByHotels(ctx context.Context, hotelIDs []string) ([]*Booking, error) {
	if len(hotelIDs) == 0 {
		return []*Booking{}, nil
	}
	return mdb.findBookings(ctx, bson.M{"hotelId": bson.M{"$in": hotelIDs}})
}

func (mdb *MongodbRepo) findBookings(ctx context.Context, filter bson.M) ([]*Booking, error) {
	col, err := mdb.GetCollection(BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	bookings := []*Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %v", err)
	}
	return bookings, nil
}

// GetConfirmedBooking looks up a confirmed booking owned by the given user
// for the given hotel. Used by the review pipeline to gate reviews to
// guests who actually stayed.
func (mdb *MongodbRepo) GetConfirmedBooking(ctx context.Context, bookingID, userID, hotelID string) (*Booking, error) {
	col, err := mdb.GetCollection(BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, ErrNotFound
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{
		"_id":     oid,
		"userId":  userID,
		"hotelId": hotelID,
		"status":  BookingStatusConfirmed,
	}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking: %v", err)
	}
	return &booking, nil
}
