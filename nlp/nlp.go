package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"
)

type Sentiment struct {
	Score     float32 `firestore:"score" json:"score"`
	Magnitude float32 `firestore:"magnitude" json:"magnitude"`
}

// languageClient is a singleton language client instance.
var (
	languageClient *language.Client
	clientErr      error
	clientOnce     sync.Once
)

// InitLanguageClient initializes and returns a language client. Missing or
// bad credentials are returned as an error so callers can run without
// message-level sentiment scoring instead of dying.
func InitLanguageClient() (*language.Client, error) {
	clientOnce.Do(func() {
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		if encodedCreds == "" {
			clientErr = fmt.Errorf("NATURAL_LANGUAGE_CREDENTIALS not set")
			return
		}

		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			clientErr = fmt.Errorf("failed to decode Natural Language credentials: %w", err)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, clientErr = language.NewClient(context.Background(), opt)
	})

	return languageClient, clientErr
}

// CloseLanguageClient closes the language client.
func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}

// AnalyzeSentiment scores text with the Cloud Natural Language API.
func AnalyzeSentiment(client *language.Client, text string) (Sentiment, error) {
	var sentiment Sentiment
	ctx := context.Background()
	req := &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeSentiment(ctx, req)
	if err != nil {
		return sentiment, fmt.Errorf("AnalyzeSentiment error: %w", err)
	}

	sentiment.Score = resp.DocumentSentiment.Score
	sentiment.Magnitude = resp.DocumentSentiment.Magnitude

	return sentiment, nil
}
