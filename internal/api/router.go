package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"service": "talenttrace", "status": "running"})
	})

	// Resume endpoints
	mux.HandleFunc("POST /api/upload-resume", a.UploadResumeHandler)
	mux.HandleFunc("GET /api/resumes", a.ListResumesHandler)
	mux.HandleFunc("GET /api/resumes/{id}", a.GetResumeHandler)
	mux.HandleFunc("DELETE /api/resumes/{id}", a.DeleteResumeHandler)
	mux.HandleFunc("GET /api/shortlisted", a.ShortlistedHandler)

	// Scoring endpoint
	mux.HandleFunc("POST /api/score", a.ScoreResumeHandler)

	return mux
}
