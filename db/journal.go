package db

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"go-soultalk/types"
)

// CreateJournalEntry stores a new journal entry under a user.
func CreateJournalEntry(client *firestore.Client, userID string, req types.JournalEntryCreate) (types.JournalEntry, error) {
	ctx := context.Background()

	entry := types.JournalEntry{
		ID:        uuid.NewString(),
		Content:   req.Content,
		Mood:      req.Mood,
		Tags:      req.Tags,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}

	_, err := client.Collection("users").Doc(userID).
		Collection("journal").Doc(entry.ID).
		Set(ctx, entry)
	return entry, err
}

// GetJournalEntries returns a user's journal, newest first.
func GetJournalEntries(client *firestore.Client, userID string) ([]types.JournalEntry, error) {
	ctx := context.Background()
	var entries []types.JournalEntry

	iter := client.Collection("users").Doc(userID).
		Collection("journal").
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var entry types.JournalEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
