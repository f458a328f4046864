package routes

import (
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"

	"go-soultalk/analysis"
	"go-soultalk/chat"
	"go-soultalk/handlers"
)

// corsMiddleware allows the web frontend to talk to the API.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := os.Getenv("CLIENT_URL")
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func SetupRouter(
	firestoreClient *firestore.Client,
	nlpClient *language.Client,
	analyzer *analysis.Analyzer,
	responder *chat.Responder,
) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to SoulTalk!",
		})
	})

	// AI analysis routes
	ai := r.Group("/api/ai")
	{
		ai.POST("/analyze-text", func(c *gin.Context) {
			handlers.AnalyzeText(c, analyzer)
		})
		ai.POST("/sentiment", func(c *gin.Context) {
			handlers.AnalyzeSentiment(c, analyzer)
		})
		ai.POST("/emotion", func(c *gin.Context) {
			handlers.AnalyzeEmotion(c, analyzer)
		})
		ai.POST("/crisis", func(c *gin.Context) {
			handlers.DetectCrisis(c, analyzer)
		})
		ai.POST("/analyze-face", func(c *gin.Context) {
			handlers.AnalyzeFace(c, analyzer)
		})
		ai.POST("/chat", func(c *gin.Context) {
			handlers.Chat(c, responder)
		})
		ai.POST("/summarize", func(c *gin.Context) {
			handlers.Summarize(c, responder)
		})
		ai.POST("/reset-chat", func(c *gin.Context) {
			handlers.ResetChat(c, responder)
		})
		ai.GET("/health", handlers.Health)
	}

	// Account + data routes
	api := r.Group("/api")
	{
		api.POST("/login", func(c *gin.Context) {
			handlers.Login(c, firestoreClient)
		})
		api.POST("/signup", func(c *gin.Context) {
			handlers.Signup(c, firestoreClient)
		})
		api.GET("/users", func(c *gin.Context) {
			handlers.GetUsers(c, firestoreClient)
		})
		api.PUT("/users/:userID", func(c *gin.Context) {
			handlers.UpdateUser(c, firestoreClient)
		})

		api.GET("/chat/:userID", func(c *gin.Context) {
			handlers.GetChatHistory(c, firestoreClient)
		})
		api.POST("/chat/:userID", func(c *gin.Context) {
			handlers.SaveMessage(c, firestoreClient, nlpClient)
		})

		api.GET("/journal/:userID", func(c *gin.Context) {
			handlers.GetJournal(c, firestoreClient)
		})
		api.POST("/journal/:userID", func(c *gin.Context) {
			handlers.CreateJournalEntry(c, firestoreClient)
		})

		api.GET("/exercises", func(c *gin.Context) {
			handlers.GetExercises(c, firestoreClient)
		})
		api.POST("/exercises", func(c *gin.Context) {
			handlers.CreateExercise(c, firestoreClient)
		})
		api.DELETE("/exercises/:exerciseID", func(c *gin.Context) {
			handlers.DeleteExercise(c, firestoreClient)
		})

		api.GET("/soundscapes", func(c *gin.Context) {
			handlers.GetSoundscapes(c, firestoreClient)
		})
		api.POST("/soundscapes", func(c *gin.Context) {
			handlers.CreateSoundscape(c, firestoreClient)
		})
		api.DELETE("/soundscapes/:soundID", func(c *gin.Context) {
			handlers.DeleteSoundscape(c, firestoreClient)
		})
	}

	return r
}
