package db

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"go-soultalk/types"
)

// SaveMessage appends one message to a user's conversation history.
func SaveMessage(client *firestore.Client, userID string, msg types.ChatMessage) (types.ChatMessage, error) {
	ctx := context.Background()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp == "" {
		msg.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := client.Collection("users").Doc(userID).
		Collection("messages").Doc(msg.ID).
		Set(ctx, msg)
	return msg, err
}

// GetChatHistory returns a user's messages, oldest first.
func GetChatHistory(client *firestore.Client, userID string) ([]types.ChatMessage, error) {
	ctx := context.Background()
	var messages []types.ChatMessage

	iter := client.Collection("users").Doc(userID).
		Collection("messages").
		OrderBy("timestamp", firestore.Asc).
		Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var msg types.ChatMessage
		if err := doc.DataTo(&msg); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}
