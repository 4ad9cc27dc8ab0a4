package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"talenttrace/internal/cv"
	"talenttrace/internal/storage"
)

// maxUploadBytes caps resume uploads at 5MB.
const maxUploadBytes = 5 << 20

// UploadResumeHandler ingests a PDF resume
// @Summary Upload a resume
// @Description Upload a PDF resume, extract its text and candidate fields, and store the record
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file (PDF)"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upload-resume [post]
func (a *API) UploadResumeHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+512)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid (max 5MB)")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "application/pdf" && !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, "only PDF files are allowed")
		return
	}

	text, err := a.extractor.ExtractText(header.Filename, file)
	if err != nil {
		log.Printf("text extraction failed for %s: %v", header.Filename, err)
		writeError(w, http.StatusBadRequest, "could not extract text from document")
		return
	}

	fields := cv.ExtractFields(text)
	resume := &storage.Resume{
		FileName:      header.Filename,
		RawText:       text,
		CandidateName: fields.Name,
		Email:         fields.Email,
		Phone:         fields.Phone,
		Skills:        fields.Skills,
	}

	if err := a.store.Create(r.Context(), resume); err != nil {
		log.Printf("failed to save resume: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to process resume")
		return
	}

	log.Printf("resume %s ingested (%d bytes text)", resume.ID, len(text))

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":            resume.ID,
		"fileName":      resume.FileName,
		"candidateName": resume.CandidateName,
		"email":         resume.Email,
		"phone":         resume.Phone,
		"skills":        resume.Skills,
		"textLength":    len(text),
	})
}

// ListResumesHandler lists all resumes
// @Summary List resumes
// @Description List all stored resumes, highest score first, then newest first
// @Tags resumes
// @Produce json
// @Success 200 {array} storage.Resume
// @Router /resumes [get]
func (a *API) ListResumesHandler(w http.ResponseWriter, r *http.Request) {
	resumes, err := a.store.List(r.Context())
	if err != nil {
		log.Printf("failed to list resumes: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}
	writeJSON(w, http.StatusOK, resumes)
}

// GetResumeHandler fetches one resume
// @Summary Get a resume
// @Tags resumes
// @Produce json
// @Param id path string true "Resume ID"
// @Success 200 {object} storage.Resume
// @Failure 404 {object} map[string]string
// @Router /resumes/{id} [get]
func (a *API) GetResumeHandler(w http.ResponseWriter, r *http.Request) {
	resume, err := a.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "resume not found")
			return
		}
		log.Printf("failed to fetch resume: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch resume")
		return
	}
	writeJSON(w, http.StatusOK, resume)
}

// DeleteResumeHandler deletes a resume
// @Summary Delete a resume
// @Description Delete a resume permanently. There is no undo.
// @Tags resumes
// @Produce json
// @Param id path string true "Resume ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /resumes/{id} [delete]
func (a *API) DeleteResumeHandler(w http.ResponseWriter, r *http.Request) {
	err := a.store.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "resume not found")
			return
		}
		log.Printf("failed to delete resume: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to delete resume")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ShortlistedHandler lists resumes meeting the shortlist threshold
// @Summary List shortlisted resumes
// @Description List resumes whose match score meets or exceeds the configured threshold
// @Tags resumes
// @Produce json
// @Success 200 {array} storage.Resume
// @Router /shortlisted [get]
func (a *API) ShortlistedHandler(w http.ResponseWriter, r *http.Request) {
	resumes, err := a.store.ListByMinScore(r.Context(), a.shortlistThreshold)
	if err != nil {
		log.Printf("failed to list shortlisted resumes: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}
	writeJSON(w, http.StatusOK, resumes)
}
