package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"talenttrace/internal/storage"
)

type scoreRequest struct {
	ResumeID       string `json:"resumeId"`
	JobDescription string `json:"jobDescription"`
}

// ScoreResumeHandler scores a stored resume against a job description
// @Summary Score a resume
// @Description Run the scoring fallback chain (generative, endpoint, heuristic) and persist the result
// @Tags scoring
// @Accept json
// @Produce json
// @Param request body scoreRequest true "Resume id and job description"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /score [post]
func (a *API) ScoreResumeHandler(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.ResumeID) == "" || strings.TrimSpace(req.JobDescription) == "" {
		writeError(w, http.StatusBadRequest, "resumeId and jobDescription are required")
		return
	}

	resume, err := a.store.Get(r.Context(), req.ResumeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "resume not found")
			return
		}
		log.Printf("failed to fetch resume: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch resume")
		return
	}
	if strings.TrimSpace(resume.RawText) == "" {
		writeError(w, http.StatusBadRequest, "resume has no extracted text")
		return
	}

	outcome, err := a.chain.Score(r.Context(), resume.RawText, req.JobDescription)
	if err != nil {
		log.Printf("scoring failed for resume %s: %v", resume.ID, err)
		writeError(w, http.StatusInternalServerError, "scoring is currently unavailable")
		return
	}

	if err := a.store.UpdateScore(r.Context(), resume.ID, outcome.Score, outcome.Justification); err != nil {
		log.Printf("failed to persist score for resume %s: %v", resume.ID, err)
		writeError(w, http.StatusInternalServerError, "failed to save score")
		return
	}

	log.Printf("resume %s scored %d via %s", resume.ID, outcome.Score, outcome.Source)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":            resume.ID,
		"matchScore":    outcome.Score,
		"justification": outcome.Justification,
		"source":        outcome.Source,
	})
}
