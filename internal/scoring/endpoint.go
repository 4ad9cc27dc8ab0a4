package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	httpclient "talenttrace/pkg/http"
)

const endpointTimeout = 30 * time.Second

// EndpointScorer POSTs the resume and job description to a configured HTTP
// scoring endpoint and accepts its reply only when the schema matches.
type EndpointScorer struct {
	url    string
	client *httpclient.Client
}

func NewEndpointScorer(url string) *EndpointScorer {
	return &EndpointScorer{
		url:    url,
		client: httpclient.NewClient(endpointTimeout),
	}
}

func (e *EndpointScorer) Name() string { return "endpoint" }

func (e *EndpointScorer) Attempt(ctx context.Context, resumeText, jobDescription string) (*Result, error) {
	body, err := json.Marshal(map[string]string{
		"resumeText":     resumeText,
		"jobDescription": jobDescription,
	})
	if err != nil {
		return nil, err
	}

	resp, err := e.client.PostJSON(ctx, e.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoring endpoint returned status %d", resp.StatusCode)
	}

	var parsed struct {
		Score         *float64 `json:"score"`
		Justification *string  `json:"justification"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode scoring endpoint reply: %w", err)
	}
	if parsed.Score == nil || parsed.Justification == nil {
		return nil, fmt.Errorf("scoring endpoint reply missing score or justification")
	}

	return &Result{Score: *parsed.Score, Justification: *parsed.Justification}, nil
}
