package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"talenttrace/internal/config"
	"talenttrace/internal/llm"
	"talenttrace/internal/scoring"
	"talenttrace/internal/storage"
)

// TextExtractor converts an uploaded document into plain text.
type TextExtractor interface {
	ExtractText(filename string, r io.Reader) (string, error)
}

type API struct {
	store              storage.Store
	extractor          TextExtractor
	chain              *scoring.Chain
	shortlistThreshold int
}

// NewAPI wires the scoring chain from resolved configuration: the generative
// strategy when a credential is present, the endpoint strategy when a URL is
// present, the heuristic always last.
func NewAPI(store storage.Store, extractor TextExtractor, cfg *config.Config) *API {
	var strategies []scoring.Strategy

	if cfg.LLMAPIKey != "" {
		svc := llm.NewService(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel)
		strategies = append(strategies, scoring.NewGenerativeScorer(svc))
	}
	if cfg.ScoreEndpointURL != "" {
		strategies = append(strategies, scoring.NewEndpointScorer(cfg.ScoreEndpointURL))
	}
	strategies = append(strategies, scoring.NewHeuristicScorer())

	return &API{
		store:              store,
		extractor:          extractor,
		chain:              scoring.NewChain(strategies...),
		shortlistThreshold: cfg.ShortlistThreshold,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

// writeError sends a short human-readable message; internal diagnostics stay
// in the logs.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
