package types

// ChatMessage is one message in a user's conversation history.
// DetectedEmotion and SentimentScore are filled in at save time when the
// analysis pipeline produced them.
type ChatMessage struct {
	ID              string  `firestore:"id" json:"id"`
	Role            string  `firestore:"role" json:"role"`
	Content         string  `firestore:"content" json:"text"`
	Timestamp       string  `firestore:"timestamp" json:"timestamp"`
	DetectedEmotion string  `firestore:"detectedEmotion,omitempty" json:"sentiment,omitempty"`
	SentimentScore  float64 `firestore:"sentimentScore" json:"sentimentScore"`
}

type MessageCreate struct {
	Role           string   `json:"role" binding:"required"`
	Text           string   `json:"text" binding:"required"`
	Sentiment      string   `json:"sentiment"`
	SentimentScore *float64 `json:"sentimentScore"`
	EmotionContext string   `json:"emotionContext"`
}

// ChatReply is the generated companion response.
// Source is "openai", "fallback", or "crisis_protocol".
type ChatReply struct {
	Response string `json:"response"`
	Source   string `json:"source"`
	Error    string `json:"error,omitempty"`
}

// ConversationMessage is the transcript shape accepted by the summarize endpoint.
type ConversationMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type SummaryResult struct {
	Summary string `json:"summary"`
	Source  string `json:"source"`
}
