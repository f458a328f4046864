package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-soultalk/types"
)

func TestSummarizeConversationEmpty(t *testing.T) {
	result := SummarizeConversation(context.Background(), nil, nil)
	assert.Equal(t, "No conversation yet.", result.Summary)
	assert.Equal(t, "empty", result.Source)
}

func TestSummarizeConversationFallbackRecap(t *testing.T) {
	messages := []types.ConversationMessage{
		{Role: "user", Text: "message one"},
		{Role: "assistant", Text: "message two"},
		{Role: "user", Text: "message three"},
		{Role: "assistant", Text: "message four"},
		{Role: "user", Text: "message five"},
		{Role: "assistant", Text: "message six"},
	}

	result := SummarizeConversation(context.Background(), nil, messages)

	assert.Equal(t, "fallback", result.Source)
	assert.True(t, strings.HasPrefix(result.Summary, "Recent: "))
	// Only the last five messages make the recap.
	assert.NotContains(t, result.Summary, "message one")
	assert.Contains(t, result.Summary, "user: message five")
	assert.Contains(t, result.Summary, "assistant: message six")
}

func TestRecentRecapTruncatesLongMessages(t *testing.T) {
	long := strings.Repeat("x", 80)
	recap := recentRecap([]types.ConversationMessage{{Role: "user", Text: long}})
	assert.Equal(t, "Recent: user: "+strings.Repeat("x", 50), recap)
}

func TestRecentRecapMissingRole(t *testing.T) {
	recap := recentRecap([]types.ConversationMessage{{Text: "hello"}})
	assert.Equal(t, "Recent: unknown: hello", recap)
}

func TestTopicRecapLastThree(t *testing.T) {
	messages := []types.ConversationMessage{
		{Text: "first"},
		{Text: "second"},
		{Text: "third"},
		{Text: "fourth"},
	}
	recap := topicRecap(messages)
	assert.Equal(t, "Topics: second; third; fourth...", recap)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncateRunes("héllo", 10))
	assert.Equal(t, "hé", truncateRunes("héllo", 2))
	assert.Equal(t, "", truncateRunes("", 5))
}
