package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-soultalk/analysis"
	"go-soultalk/chat"
	"go-soultalk/cronjobs"
	"go-soultalk/db"
	"go-soultalk/nlp"
	"go-soultalk/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Print and check env
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	}

	clientURL := os.Getenv("CLIENT_URL")
	fmt.Println("CLIENT_URL: ", clientURL)

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	// Language client scores saved chat messages; the server runs without it.
	nlpClient, err := nlp.InitLanguageClient()
	if err != nil {
		log.Printf("Natural Language client unavailable, message sentiment scoring disabled: %v", err)
	}
	defer nlp.CloseLanguageClient()

	// OpenAI powers the companion responses; without a key the rule-based
	// fallback answers instead.
	var openaiClient *openai.Client
	if apiKey != "" {
		openaiClient = openai.NewClient(apiKey)
	} else {
		log.Println("OPENAI_API_KEY not set, chat responses will use the rule-based fallback")
	}

	analyzer := analysis.NewAnalyzer()
	responder := chat.NewResponder(openaiClient)

	// Initialize cron jobs
	cronjobs.InitCronJobs()

	r := routes.SetupRouter(firestoreClient, nlpClient, analyzer, responder)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
