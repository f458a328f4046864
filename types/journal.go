package types

// JournalEntry is a private journal entry stored under a user.
type JournalEntry struct {
	ID        string   `firestore:"id" json:"id"`
	Content   string   `firestore:"content" json:"content"`
	Mood      string   `firestore:"mood" json:"mood"`
	Tags      []string `firestore:"tags" json:"tags"`
	CreatedAt string   `firestore:"createdAt" json:"timestamp"`
}

type JournalEntryCreate struct {
	Content string   `json:"content" binding:"required"`
	Mood    string   `json:"mood" binding:"required"`
	Tags    []string `json:"tags"`
}
