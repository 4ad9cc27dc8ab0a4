package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultShortlistThreshold is the minimum match score (0-100 scale) for a
// resume to appear in the shortlist.
const DefaultShortlistThreshold = 70

type Config struct {
	DatabaseURL string
	Port        string
	UploadsDir  string

	// LLM configuration for the generative scoring strategy. The strategy is
	// enabled only when an API key is present.
	LLMProvider string // "openai", "groq", "ollama", or "none"
	LLMModel    string
	LLMAPIKey   string

	// ScoreEndpointURL enables the remote HTTP scoring strategy when set.
	ScoreEndpointURL string

	ShortlistThreshold int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}

	llmProvider := os.Getenv("LLM_PROVIDER")
	if llmProvider == "" {
		llmProvider = "openai"
	}

	llmModel := os.Getenv("LLM_MODEL")
	if llmModel == "" {
		llmModel = "gpt-4o-mini"
	}

	llmAPIKey := ""
	switch llmProvider {
	case "openai":
		llmAPIKey = os.Getenv("OPENAI_API_KEY")
	case "groq":
		llmAPIKey = os.Getenv("GROQ_API_KEY")
	}

	threshold := DefaultShortlistThreshold
	if v := os.Getenv("SHORTLIST_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			log.Printf("Warning: invalid SHORTLIST_THRESHOLD %q, using %d", v, DefaultShortlistThreshold)
		} else {
			threshold = n
		}
	}

	return &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Port:               port,
		UploadsDir:         uploadsDir,
		LLMProvider:        llmProvider,
		LLMModel:           llmModel,
		LLMAPIKey:          llmAPIKey,
		ScoreEndpointURL:   os.Getenv("SCORE_ENDPOINT_URL"),
		ShortlistThreshold: threshold,
	}
}
