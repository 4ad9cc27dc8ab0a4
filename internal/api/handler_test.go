package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenttrace/internal/config"
	"talenttrace/internal/storage"
)

// stubExtractor stands in for the PDF text extractor.
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(_ string, _ io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func testConfig() *config.Config {
	// No credential and no endpoint URL: the chain resolves via the heuristic.
	return &config.Config{ShortlistThreshold: config.DefaultShortlistThreshold}
}

func newTestServer(t *testing.T, extractor TextExtractor) (*httptest.Server, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	srv := httptest.NewServer(NewRouter(NewAPI(store, extractor, testConfig())))
	t.Cleanup(srv.Close)
	return srv, store
}

func uploadPDF(t *testing.T, srv *httptest.Server, filename string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 fake body"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/upload-resume", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestUploadExtractsCandidateFields(t *testing.T) {
	srv, store := newTestServer(t, &stubExtractor{text: "John Doe\njohn@doe.com\nSkills: Java, SQL"})

	resp := uploadPDF(t, srv, "john.pdf")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Equal(t, "John Doe", body["candidateName"])
	assert.Equal(t, "john@doe.com", body["email"])
	assert.Equal(t, []interface{}{"Java", "SQL"}, body["skills"])

	stored, err := store.Get(t.Context(), body["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, "john.pdf", stored.FileName)
	assert.Nil(t, stored.MatchScore, "matchScore must be absent until first scored")
}

func TestUploadRejectsMissingFile(t *testing.T) {
	srv, _ := newTestServer(t, &stubExtractor{text: "x"})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/upload-resume", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRejectsNonPDF(t *testing.T) {
	srv, store := newTestServer(t, &stubExtractor{text: "x"})

	resp := uploadPDF(t, srv, "resume.docx")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	list, err := store.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, list, "rejected uploads must not create records")
}

func TestUploadRejectsWhenExtractionFails(t *testing.T) {
	srv, store := newTestServer(t, &stubExtractor{err: errors.New("garbled document")})

	resp := uploadPDF(t, srv, "broken.pdf")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	list, err := store.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, list, "no partial record on extraction failure")
}

func TestScoreHeuristicPathIsDeterministic(t *testing.T) {
	srv, store := newTestServer(t, &stubExtractor{text: "John Doe\njohn@doe.com\nSkills: Java, SQL"})

	resp := uploadPDF(t, srv, "john.pdf")
	id := decodeBody(t, resp)["id"].(string)

	score := func() map[string]interface{} {
		payload := `{"resumeId": "` + id + `", "jobDescription": "Requires Java and SQL, 3 years experience"}`
		resp, err := http.Post(srv.URL+"/api/score", "application/json", strings.NewReader(payload))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return decodeBody(t, resp)
	}

	first := score()
	second := score()

	assert.Equal(t, "heuristic", first["source"])
	assert.Contains(t, first["justification"], "[source: heuristic]")
	assert.Equal(t, first["matchScore"], second["matchScore"])

	stored, err := store.Get(t.Context(), id)
	require.NoError(t, err)
	require.NotNil(t, stored.MatchScore)
	require.NotNil(t, stored.Justification)
	assert.InDelta(t, float64(*stored.MatchScore), first["matchScore"].(float64), 0.01)
}

func TestScoreValidation(t *testing.T) {
	srv, _ := newTestServer(t, &stubExtractor{text: "x"})

	cases := []string{
		`{"resumeId": "", "jobDescription": "job"}`,
		`{"resumeId": "abc", "jobDescription": "  "}`,
		`not json`,
	}
	for _, payload := range cases {
		resp, err := http.Post(srv.URL+"/api/score", "application/json", strings.NewReader(payload))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %q", payload)
	}
}

func TestScoreUnknownResume(t *testing.T) {
	srv, _ := newTestServer(t, &stubExtractor{text: "x"})

	payload := `{"resumeId": "nope", "jobDescription": "job"}`
	resp, err := http.Post(srv.URL+"/api/score", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteThenGetReturnsNotFound(t *testing.T) {
	srv, _ := newTestServer(t, &stubExtractor{text: "Jane\nSkills: Go"})

	id := decodeBody(t, uploadPDF(t, srv, "jane.pdf"))["id"].(string)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/resumes/"+id, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/resumes/" + id)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestShortlistedUsesThreshold(t *testing.T) {
	store := storage.NewMemoryStore()
	srv := httptest.NewServer(NewRouter(NewAPI(store, &stubExtractor{}, testConfig())))
	t.Cleanup(srv.Close)

	high := &storage.Resume{FileName: "high.pdf", RawText: "x"}
	low := &storage.Resume{FileName: "low.pdf", RawText: "x"}
	require.NoError(t, store.Create(t.Context(), high))
	require.NoError(t, store.Create(t.Context(), low))
	require.NoError(t, store.UpdateScore(t.Context(), high.ID, 85, "great"))
	require.NoError(t, store.UpdateScore(t.Context(), low.ID, 55, "meh"))

	resp, err := http.Get(srv.URL + "/api/shortlisted")
	require.NoError(t, err)
	defer resp.Body.Close()

	var list []storage.Resume
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "high.pdf", list[0].FileName)
}

func TestHealthAndStatus(t *testing.T) {
	srv, _ := newTestServer(t, &stubExtractor{})

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/status")
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, "talenttrace", body["service"])
}
