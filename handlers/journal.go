package handlers

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-soultalk/db"
	"go-soultalk/types"
)

// GetJournal returns a user's journal entries, newest first.
func GetJournal(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.Param("userID")

	entries, err := db.GetJournalEntries(firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []types.JournalEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// CreateJournalEntry stores a new journal entry for a user.
func CreateJournalEntry(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.Param("userID")

	var request types.JournalEntryCreate
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := db.CreateJournalEntry(firestoreClient, userID, request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}
