package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HotelsRepo interface {
	CreateHotel(ctx context.Context, hotel *Hotel) (*Hotel, error)
	GetHotelByID(ctx context.Context, id string) (*Hotel, error)
	GetHotelForOwner(ctx context.Context, id string, ownerID string) (*Hotel, error)
	UpdateHotel(ctx context.Context, id string, update bson.M) (*Hotel, error)
	SearchHotels(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]*Hotel, error)
	CountHotels(ctx context.Context, filter bson.M) (int64, error)
	ListHotelsByOwner(ctx context.Context, ownerID string) ([]*Hotel, error)
	ListAllHotels(ctx context.Context) ([]*Hotel, error)
	DeleteHotel(ctx context.Context, id string) error
	ApproveHotel(ctx context.Context, id string) (*Hotel, error)
	IncrementHotelStats(ctx context.Context, id string, bookings int64, revenue float64) error
	SetHotelAverageRating(ctx context.Context, id string, rating float64) error
}

func (mdb *MongodbRepo) CreateHotel(ctx context.Context, hotel *Hotel) (*Hotel, error) {
	col, err := mdb.GetCollection(HotelColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if hotel.ID.IsZero() {
		hotel.ID = primitive.NewObjectID()
	}
	res, err := col.InsertOne(ctx, hotel)
	if err != nil {
		return nil, fmt.Errorf("error inserting hotel: %v", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		hotel.ID = oid
	}
	return hotel, nil
}

func (mdb *MongodbRepo) GetHotelByID(ctx context.Context, id string) (*Hotel, error) {
	col, err := mdb.GetCollection(HotelColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var hotel Hotel
	err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(&hotel)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding hotel: %v", err)
	}
	return &hotel, nil
}

func (mdb *MongodbRepo) GetHotelForOwner(ctx context.Context, id string, ownerID string) (*Hotel, error) {
	col, err := mdb.GetCollection(HotelColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var hotel Hotel
	err = col.FindOne(ctx, bson.M{"_id": oid, "userId": ownerID}).Decode(&hotel)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding hotel: %v", err)
	}
	return &hotel, nil
}

func (mdb *MongodbRepo) UpdateHotel(ctx context.Context, id string, update bson.M) (*Hotel, error) {
	col, err := mdb.GetCollection(HotelColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var hotel Hotel
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": update}, opts).Decode(&hotel)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating hotel: %v", err)
	}
	return &hotel, nil
}

func (mdb *MongodbRepo) SearchHotels(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]*Hotel, error) {
	col, err := mdb.GetCollection(HotelColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error searching hotels: %v", err)
	}
	defer cursor.Close(ctx)

	hotels := []*Hotel{}
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("error decoding hotels: %v", err)
	}
	return hotels, nil
}

func (mdb *MongodbRepo) CountHotels(ctx context.Context, filter bson.M) (int64, error) {
	col, err := mdb.GetCollection(HotelColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting hotels: %v", err)
	}
	return total, nil
}

func (mdb *MongodbRepo) ListHotelsByOwner(ctx context.Context, ownerID string) ([]*Hotel, error) {
	return mdb.findHotels(ctx, bson.M{"userId": ownerID}, nil)
}

func (mdb *MongodbRepo) ListAllHotels(ctx context.Context) ([]*Hotel, error) {
	return mdb.findHotels(ctx, bson.M{}, bson.D{{Key: "createdAt", Value: -1}})
}

func (mdb *MongodbRepo) findHotels(ctx context.Context, filter bson.M, sort bson.D) ([]*Hotel, error) {
	col, err := mdb.GetCollection(HotelColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding hotels: %v", err)
	}
	defer cursor.Close(ctx)

	hotels := []*Hotel{}
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("error decoding hotels: %v", err)
	}
	return hotels, nil
}

func (mdb *MongodbRepo) DeleteHotel(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(HotelColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting hotel: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) ApproveHotel(ctx context.Context, id string) (*Hotel, error) {
	return mdb.UpdateHotel(ctx, id, bson.M{"isApproved": true})
}

// IncrementHotelStats applies an atomic $inc to the hotel's denormalized
// booking aggregates. Issued independently of the booking insert; a crash
// in between leaves the counters behind the bookings collection.
func (mdb *MongodbRepo) IncrementHotelStats(ctx context.Context, id string, bookings int64, revenue float64) error {
	col, err := mdb.GetCollection(HotelColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	_, err = col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$inc": bson.M{
			"totalBookings": bookings,
			"totalRevenue":  revenue,
		},
	})
	if err != nil {
		return fmt.Errorf("error incrementing hotel stats: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) SetHotelAverageRating(ctx context.Context, id string, rating float64) error {
	col, err := mdb.GetCollection(HotelColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	_, err = col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"averageRating": rating},
	})
	if err != nil {
		return fmt.Errorf("error updating average rating: %v", err)
	}
	return nil
}
