package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atuservicios/servicio-api/schema"
)

// ChatMessage - chat operations scoped to one service request
type ChatMessage interface {
	CreateMessage(requestID, senderID, receiverID, text string) (*schema.Message, error)
	ListMessages(requestID string) ([]schema.Message, error)
	MarkMessagesRead(requestID, receiverID string) (int64, error)
}

// CreateMessage appends a chat message. Text must be non-empty after
// trimming and within the length limit; violations perform no write.
func (m *mongoDB) CreateMessage(requestID, senderID, receiverID, text string) (*schema.Message, error) {
	text, err := schema.ValidMessageText(text)
	if err != nil {
		return nil, err
	}

	msg := schema.Message{
		ID:         uuid.New().String(),
		RequestID:  requestID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Read:       false,
		Timestamp:  time.Now().UnixNano() / int64(time.Millisecond),
	}

	c := m.client.Database(m.database).Collection(schema.MessageCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.InsertOne(ctx, msg); err != nil {
		return nil, err
	}

	return &msg, nil
}

// ListMessages returns the full message feed of a request ordered by
// creation time ascending
func (m *mongoDB) ListMessages(requestID string) ([]schema.Message, error) {
	c := m.client.Database(m.database).Collection(schema.MessageCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx,
		bson.M{"request_id": requestID},
		options.Find().SetSort(bson.M{"ts": 1}),
	)
	if err != nil {
		return nil, err
	}

	messages := make([]schema.Message, 0)
	for cur.Next(ctx) {
		var msg schema.Message
		if err := cur.Decode(&msg); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// MarkMessagesRead flips the read flag of every unread message addressed to
// a receiver within one request. It returns the number of flipped messages.
func (m *mongoDB) MarkMessagesRead(requestID, receiverID string) (int64, error) {
	c := m.client.Database(m.database).Collection(schema.MessageCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := c.UpdateMany(ctx,
		bson.M{
			"request_id":  requestID,
			"receiver_id": receiverID,
			"read":        false,
		},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}
