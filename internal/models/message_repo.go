package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessagesRepo interface {
	CreateMessage(ctx context.Context, message *Message) (*Message, error)
	ListInbox(ctx context.Context, receiverID string) ([]*Message, error)
	CountUnread(ctx context.Context, receiverID string) (int64, error)
	MarkMessageRead(ctx context.Context, messageID, receiverID string) (*Message, error)
	DeleteMessage(ctx context.Context, messageID, receiverID string) error
}

func (mdb *MongodbRepo) CreateMessage(ctx context.Context, message *Message) (*Message, error) {
	col, err := mdb.GetCollection(MessageColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	_, err = col.InsertOne(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("error inserting message: %v", err)
	}
	return message, nil
}

func (mdb *MongodbRepo) ListInbox(ctx context.Context, receiverID string) ([]*Message, error) {
	col, err := mdb.GetCollection(MessageColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"receiverId": receiverID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding messages: %v", err)
	}
	defer cursor.Close(ctx)

	messages := []*Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding messages: %v", err)
	}
	return messages, nil
}

func (mdb *MongodbRepo) CountUnread(ctx context.Context, receiverID string) (int64, error) {
	col, err := mdb.GetCollection(MessageColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{"receiverId": receiverID, "isRead": false})
	if err != nil {
		return 0, fmt.Errorf("error counting unread messages: %v", err)
	}
	return count, nil
}

func (mdb *MongodbRepo) MarkMessageRead(ctx context.Context, messageID, receiverID string) (*Message, error) {
	col, err := mdb.GetCollection(MessageColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var message Message
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "receiverId": receiverID},
		bson.M{"$set": bson.M{"isRead": true}},
		opts,
	).Decode(&message)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error marking message read: %v", err)
	}
	return &message, nil
}

func (mdb *MongodbRepo) DeleteMessage(ctx context.Context, messageID, receiverID string) error {
	col, err := mdb.GetCollection(MessageColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return ErrNotFound
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": oid, "receiverId": receiverID})
	if err != nil {
		return fmt.Errorf("error deleting message: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
