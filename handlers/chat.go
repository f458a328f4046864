package handlers

import (
	"log"
	"net/http"

	"cloud.google.com/go/firestore"
	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"

	"go-soultalk/db"
	"go-soultalk/nlp"
	"go-soultalk/types"
)

// GetChatHistory returns a user's messages, oldest first.
func GetChatHistory(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.Param("userID")

	messages, err := db.GetChatHistory(firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if messages == nil {
		messages = []types.ChatMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

// SaveMessage stores one message in a user's history. When the caller did
// not provide a sentiment score and the language client is up, the message
// is scored before saving, same as every stored post gets scored in the
// analysis pipeline.
func SaveMessage(c *gin.Context, firestoreClient *firestore.Client, nlpClient *language.Client) {
	userID := c.Param("userID")

	var request types.MessageCreate
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := types.ChatMessage{
		Role:            request.Role,
		Content:         request.Text,
		DetectedEmotion: request.Sentiment,
	}

	if request.SentimentScore != nil {
		msg.SentimentScore = *request.SentimentScore
	} else if nlpClient != nil && request.Role == "user" {
		sentiment, err := nlp.AnalyzeSentiment(nlpClient, request.Text)
		if err != nil {
			log.Printf("Warning: sentiment scoring failed for message: %v", err)
		} else {
			msg.SentimentScore = float64(sentiment.Score)
		}
	}

	saved, err := db.SaveMessage(firestoreClient, userID, msg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, saved)
}
