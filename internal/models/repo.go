package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Validate = validator.New()

const (
	HotelColName   = "hotels"
	BookingColName = "bookings"
	UserColName    = "users"
	ReviewColName  = "reviews"
	MessageColName = "messages"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateEmail   = errors.New("user already exists")
	ErrDuplicateBooking = errors.New("a booking already exists for this payment intent")
)

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}

// EnsureIndexes creates the indexes the write paths rely on: unique user
// email, unique booking payment intent (one booking per successful charge),
// and the common read-path lookups.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	users, err := mdb.GetCollection(UserColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("error creating user indexes: %v", err)
	}

	bookings, err := mdb.GetCollection(BookingColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	_, err = bookings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "paymentIntentId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("payment_intent_unique"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetName("user_id_idx"),
		},
		{
			Keys:    bson.D{{Key: "hotelId", Value: 1}},
			Options: options.Index().SetName("hotel_id_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("error creating booking indexes: %v", err)
	}

	hotels, err := mdb.GetCollection(HotelColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	_, err = hotels.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("owner_idx"),
	})
	if err != nil {
		return fmt.Errorf("error creating hotel indexes: %v", err)
	}

	messages, err := mdb.GetCollection(MessageColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	_, err = messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "receiverId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("receiver_created_idx"),
	})
	if err != nil {
		return fmt.Errorf("error creating message indexes: %v", err)
	}

	return nil
}
