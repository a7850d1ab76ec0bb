package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ChatColName = "chat_messages"

type ChatRepo interface {
	InsertMessage(ctx context.Context, msg *ChatMessage) (*ChatMessage, error)
	ListMessages(ctx context.Context) ([]*ChatMessage, error)
}

func (mdb *MongodbRepo) InsertMessage(ctx context.Context, msg *ChatMessage) (*ChatMessage, error) {
	col, err := mdb.GetCollection(ctx, DbName, ChatColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, msg); err != nil {
		return nil, fmt.Errorf("error inserting chat message: %v", err)
	}

	return msg, nil
}

// ListMessages returns the full history, oldest first.
func (mdb *MongodbRepo) ListMessages(ctx context.Context) ([]*ChatMessage, error) {
	col, err := mdb.GetCollection(ctx, DbName, ChatColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding chat messages: %v", err)
	}
	defer cursor.Close(ctx)

	var messages []*ChatMessage
	for cursor.Next(ctx) {
		var msg ChatMessage
		if err := cursor.Decode(&msg); err != nil {
			return nil, fmt.Errorf("error decoding chat message: %v", err)
		}
		messages = append(messages, &msg)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return messages, nil
}
