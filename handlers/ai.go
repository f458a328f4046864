package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-soultalk/analysis"
	"go-soultalk/chat"
	"go-soultalk/types"
)

type textAnalysisRequest struct {
	Text string `json:"text"`
}

type faceEmotionRequest struct {
	Image string `json:"image"` // Base64 encoded image
}

type chatRequest struct {
	Message        string `json:"message"`
	EmotionContext string `json:"emotion_context"`
	IsCrisis       bool   `json:"is_crisis"`
}

type summarizeRequest struct {
	Messages []types.ConversationMessage `json:"messages"`
}

// AnalyzeText runs the complete pipeline: sentiment, emotion, crisis.
func AnalyzeText(c *gin.Context, analyzer *analysis.Analyzer) {
	var request textAnalysisRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(request.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text cannot be empty"})
		return
	}

	c.JSON(http.StatusOK, analyzer.AnalyzeTextComplete(request.Text))
}

// AnalyzeSentiment runs sentiment resolution only.
func AnalyzeSentiment(c *gin.Context, analyzer *analysis.Analyzer) {
	var request textAnalysisRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text cannot be empty"})
		return
	}

	c.JSON(http.StatusOK, analyzer.AnalyzeSentiment(request.Text))
}

// AnalyzeEmotion runs emotion resolution only.
func AnalyzeEmotion(c *gin.Context, analyzer *analysis.Analyzer) {
	var request textAnalysisRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text cannot be empty"})
		return
	}

	c.JSON(http.StatusOK, analyzer.AnalyzeEmotion(request.Text))
}

// DetectCrisis runs crisis fusion only. The emotion verdict is computed
// first since the fusion consumes it.
func DetectCrisis(c *gin.Context, analyzer *analysis.Analyzer) {
	var request textAnalysisRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text cannot be empty"})
		return
	}

	emotion := analyzer.AnalyzeEmotion(request.Text)
	c.JSON(http.StatusOK, analyzer.DetectCrisis(request.Text, emotion))
}

// AnalyzeFace classifies the facial expression in a base64-encoded image.
func AnalyzeFace(c *gin.Context, analyzer *analysis.Analyzer) {
	var request faceEmotionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image cannot be empty"})
		return
	}

	log.Printf("[FACE] Received image (%d chars)", len(request.Image))
	result := analyzer.DetectFaceEmotion(request.Image)
	log.Printf("[FACE] Result: emotion=%s, confidence=%.2f, face_detected=%v, source=%s",
		result.Emotion, result.Confidence, result.FaceDetected, result.Source)

	c.JSON(http.StatusOK, result)
}

// Chat generates a companion response.
func Chat(c *gin.Context, responder *chat.Responder) {
	var request chatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	reply := responder.Generate(c.Request.Context(), request.Message, request.EmotionContext, request.IsCrisis)
	c.JSON(http.StatusOK, reply)
}

// Summarize condenses a conversation transcript.
func Summarize(c *gin.Context, responder *chat.Responder) {
	var request summarizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := chat.SummarizeConversation(c.Request.Context(), responder.Client(), request.Messages)
	c.JSON(http.StatusOK, result)
}

// ResetChat clears the responder's conversation context.
func ResetChat(c *gin.Context, responder *chat.Responder) {
	responder.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Chat session reset"})
}

// Health reports which AI services are reachable.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"services": gin.H{
			"text_analysis": "available",
			"vision":        "available",
			"chat":          "available",
		},
	})
}
