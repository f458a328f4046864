package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-soultalk/types"
)

const maxTranscriptLength = 15000 // Rough character limit for the prompt

// SummarizeConversation produces a short summary of a transcript. OpenAI
// when available, otherwise a truncated recap of the most recent messages.
func SummarizeConversation(ctx context.Context, client *openai.Client, messages []types.ConversationMessage) types.SummaryResult {
	if len(messages) == 0 {
		return types.SummaryResult{Summary: "No conversation yet.", Source: "empty"}
	}

	if client == nil {
		return types.SummaryResult{Summary: recentRecap(messages), Source: "fallback"}
	}

	summary, err := callOpenAISummary(ctx, client, messages)
	if err != nil {
		log.Printf("Summarization failed: %v", err)
		return types.SummaryResult{Summary: topicRecap(messages), Source: "fallback"}
	}

	return types.SummaryResult{Summary: summary, Source: "openai"}
}

func callOpenAISummary(ctx context.Context, client *openai.Client, messages []types.ConversationMessage) (string, error) {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role == "" {
			role = "user"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, m.Text))
	}
	transcript := strings.Join(lines, "\n")
	if len(transcript) > maxTranscriptLength {
		log.Printf("Warning: transcript exceeds max length (%d), truncating.", maxTranscriptLength)
		transcript = transcript[:maxTranscriptLength]
	}

	prompt := fmt.Sprintf("Summarize this mental health support conversation in 2-3 sentences.\nFocus on the key emotions and topics discussed.\n\nConversation:\n%s\n\nSummary:", transcript)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes mental health support conversations concisely.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5, // Lower temperature for more focused summary
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// recentRecap covers the no-client path: the last few messages with roles.
func recentRecap(messages []types.ConversationMessage) string {
	recent := messages
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	parts := make([]string, 0, len(recent))
	for _, m := range recent {
		role := m.Role
		if role == "" {
			role = "unknown"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", role, truncateRunes(m.Text, 50)))
	}
	return "Recent: " + strings.Join(parts, " | ")
}

// topicRecap covers the call-failed path: just the last few texts.
func topicRecap(messages []types.ConversationMessage) string {
	recent := messages
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	parts := make([]string, 0, len(recent))
	for _, m := range recent {
		parts = append(parts, truncateRunes(m.Text, 30))
	}
	return "Topics: " + strings.Join(parts, "; ") + "..."
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
