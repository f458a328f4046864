package chat

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"

	"go-soultalk/types"
)

const systemInstruction = `You are SoulTalk, a compassionate and supportive mental health companion AI.

Your role is to:
1. Listen actively and empathetically to users
2. Provide emotional support without judgment
3. Offer gentle coping strategies when appropriate
4. Recognize signs of distress and respond with care
5. Encourage professional help when needed

Guidelines:
- Be warm, understanding, and patient
- Use "I" statements and validate feelings
- Don't diagnose or prescribe medications
- If someone is in crisis, prioritize safety and suggest crisis resources
- Keep responses concise but caring (2-4 sentences usually)
- Mirror the user's emotional tone appropriately

Remember: You are a supportive companion, not a replacement for professional mental health care.`

const crisisResponse = "I hear you, and I'm really glad you reached out. What you're feeling matters, " +
	"and you don't have to face this alone. If you're in immediate danger, please " +
	"contact a crisis helpline or emergency services. I'm here to listen and support you."

// Keep the rolling conversation context bounded.
const maxHistoryMessages = 20

// Responder generates companion responses: OpenAI when available, a
// deterministic rule-based reply when not. The crisis protocol bypasses both.
type Responder struct {
	client *openai.Client

	mu      sync.Mutex
	history []openai.ChatCompletionMessage
}

// NewResponder wraps an OpenAI client. A nil client is allowed; every call
// then uses the rule-based fallback.
func NewResponder(client *openai.Client) *Responder {
	return &Responder{client: client}
}

// Generate produces a reply to one user message. An active crisis flag
// overrides everything with the fixed safe response.
func (r *Responder) Generate(ctx context.Context, message, emotionContext string, isCrisis bool) types.ChatReply {
	if isCrisis {
		return types.ChatReply{Response: crisisResponse, Source: "crisis_protocol"}
	}

	if r.client != nil {
		reply, err := r.callOpenAI(ctx, message, emotionContext)
		if err == nil {
			return types.ChatReply{Response: reply, Source: "openai"}
		}
		log.Printf("OpenAI response generation failed: %v", err)
	}

	return types.ChatReply{
		Response: fallbackResponse(message, emotionContext),
		Source:   "fallback",
		Error:    "OpenAI unavailable, using rule-based response",
	}
}

func (r *Responder) callOpenAI(ctx context.Context, message, emotionContext string) (string, error) {
	contextPrefix := ""
	if emotionContext != "" {
		contextPrefix = fmt.Sprintf("[User seems to be feeling %s] ", emotionContext)
	}
	userMessage := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: contextPrefix + message,
	}

	r.mu.Lock()
	messages := make([]openai.ChatCompletionMessage, 0, len(r.history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemInstruction,
	})
	messages = append(messages, r.history...)
	messages = append(messages, userMessage)
	r.mu.Unlock()

	resp, err := r.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:     openai.GPT4oMini,
			Messages:  messages,
			MaxTokens: 200,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)

	r.mu.Lock()
	r.history = append(r.history, userMessage, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply,
	})
	if len(r.history) > maxHistoryMessages {
		r.history = r.history[len(r.history)-maxHistoryMessages:]
	}
	r.mu.Unlock()

	return reply, nil
}

// Client exposes the underlying OpenAI client (nil when not configured).
func (r *Responder) Client() *openai.Client {
	return r.client
}

// Reset clears the rolling conversation context.
func (r *Responder) Reset() {
	r.mu.Lock()
	r.history = nil
	r.mu.Unlock()
	log.Println("Chat session reset")
}

// fallbackResponses holds a pool of supportive lines per emotion. The pool
// is indexed by a hash of the message so the same message always gets the
// same line while different messages vary.
var fallbackResponses = map[string][]string{
	"happy": {
		"That's wonderful to hear! What's bringing you joy today?",
		"I love hearing that! What made today special for you?",
		"That positivity is contagious! Want to share what's going well?",
		"Happiness looks good on you! Tell me more about it.",
		"That's great! Celebrating the good moments is so important. What happened?",
	},
	"joy": {
		"Such joyful energy! What's making you feel this way?",
		"That's beautiful! I'd love to hear more about what's bringing you joy.",
		"Wonderful! Let's savor this good feeling together. What's the story?",
	},
	"sad": {
		"I hear you. It's okay to feel this way. Would you like to talk about what's on your mind?",
		"That sounds really hard. I'm here to listen whenever you're ready to share.",
		"It takes courage to acknowledge when we're feeling down. What's weighing on your heart?",
		"I'm sorry you're going through this. Sometimes just talking helps - what's happening?",
		"Feeling sad is part of being human. You don't have to carry this alone. What's going on?",
	},
	"sadness": {
		"I can sense you're going through something difficult. Want to talk about it?",
		"It's okay to not be okay. I'm here for you - what's troubling you?",
		"Sometimes life gets heavy. I'm listening. What would help to get off your chest?",
	},
	"angry": {
		"It sounds like something is frustrating you. Take a deep breath - I'm here to listen.",
		"I can hear the frustration. What's going on that's making you feel this way?",
		"Anger is a signal that something matters to you. What happened?",
		"It's okay to feel angry. Let it out - what's bothering you?",
		"That sounds really frustrating. Tell me what's going on.",
	},
	"anger": {
		"Those feelings are valid. What triggered this frustration?",
		"I hear you. Sometimes we need to vent. What's on your mind?",
		"Anger can be overwhelming. Let's talk through it - what happened?",
	},
	"fearful": {
		"I understand that can feel scary. You're safe here. What's worrying you?",
		"Fear is a tough emotion. You're not alone in this. What's on your mind?",
		"It's brave to acknowledge when we're scared. What's making you feel this way?",
		"I'm here with you. Let's work through those worries together.",
	},
	"fear": {
		"That sounds unsettling. What specifically is making you feel afraid?",
		"Fear can be overwhelming, but you don't have to face it alone. Tell me more.",
	},
	"anxious": {
		"It's natural to feel anxious sometimes. Let's take this one step at a time.",
		"Anxiety can be overwhelming. Take a breath - I'm here with you.",
		"I understand that feeling. What's making you anxious right now?",
		"Let's slow down together. What's weighing on your mind?",
		"Anxiety is tough. Sometimes talking through it helps. What's going on?",
	},
	"surprised": {
		"Oh! That sounds unexpected. Tell me more about what happened.",
		"Wow, that sounds like quite a surprise! What's the story?",
		"Life can throw curveballs! How are you processing this surprise?",
	},
	"surprise": {
		"That caught you off guard! How do you feel about it?",
		"Unexpected moments can be a lot to handle. Tell me more.",
	},
	"neutral": {
		"I'm here for you. What would you like to talk about?",
		"How can I support you today?",
		"I'm listening. What's on your mind?",
		"Tell me what's going on with you today.",
		"I'm here whenever you're ready to share.",
	},
	"disgust": {
		"That sounds really unpleasant. What happened?",
		"I can hear that was disturbing. Want to talk about it?",
	},
}

func fallbackResponse(message, emotionContext string) string {
	emotionKey := strings.ToLower(emotionContext)
	if emotionKey == "" {
		emotionKey = "neutral"
	}
	pool, ok := fallbackResponses[emotionKey]
	if !ok {
		pool = fallbackResponses["neutral"]
	}

	sum := sha256.Sum256([]byte(message))
	index := binary.BigEndian.Uint64(sum[:8]) % uint64(len(pool))
	return pool[index]
}
