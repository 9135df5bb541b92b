package repository

import (
	"context"

	"nanumi/internal/domain/message"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const chatCollection = "chat"

type MongoMessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &MongoMessageRepository{coll: db.Collection(chatCollection)}
}

// GetLatestByRoom returns up to limit messages for the room, most recent
// first. Ordering follows the string-encoded sendTime field, the same key
// the messaging gateway writes.
func (r *MongoMessageRepository) GetLatestByRoom(ctx context.Context, roomID int64, limit int64) ([]message.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "sendTime", Value: -1}}).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.M{"roomId": roomID}, opts)
	if err != nil {
		return nil, err
	}

	var msgs []message.ChatMessage
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
