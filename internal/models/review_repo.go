package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewsRepo interface {
	CreateReview(ctx context.Context, review *Review) (*Review, error)
	GetReviewsByHotel(ctx context.Context, hotelID string) ([]*Review, error)
	GetReviewByBooking(ctx context.Context, bookingID, userID string) (*Review, error)
}

func (mdb *MongodbRepo) CreateReview(ctx context.Context, review *Review) (*Review, error) {
	if err := Validate.Struct(review); err != nil {
		return nil, fmt.Errorf("invalid review data: %w", err)
	}

	col, err := mdb.GetCollection(ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	_, err = col.InsertOne(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("error inserting review: %v", err)
	}
	return review, nil
}

func (mdb *MongodbRepo) GetReviewsByHotel(ctx context.Context, hotelID string) ([]*Review, error) {
	col, err := mdb.GetCollection(ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"hotelId": hotelID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding reviews: %v", err)
	}
	defer cursor.Close(ctx)

	reviews := []*Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %v", err)
	}
	return reviews, nil
}

func (mdb *MongodbRepo) GetReviewByBooking(ctx context.Context, bookingID, userID string) (*Review, error) {
	col, err := mdb.GetCollection(ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var review Review
	err = col.FindOne(ctx, bson.M{"bookingId": bookingID, "userId": userID}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding review: %v", err)
	}
	return &review, nil
}
