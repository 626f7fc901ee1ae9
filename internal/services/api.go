// API service for making raw HTTP requests to the catalog backend
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIService provides methods for making raw HTTP requests to the backend.
// Used by the api debug command; workflows go through [CatalogAPI] instead.
type APIService struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIService creates a new raw API client for the backend.
func NewAPIService(baseURL string, client *http.Client) *APIService {
	if baseURL == "" {
		baseURL = defaultCatalogBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &APIService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// BaseURL returns the backend base URL the client targets.
func (a *APIService) BaseURL() string {
	return a.baseURL
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

func (a *APIService) do(ctx context.Context, method, path string, data []byte) (*APIResponse, error) {
	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       raw,
	}

	var jsonData any
	if err := json.Unmarshal(raw, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}

// Get performs a GET request to the specified path and returns the raw response.
func (a *APIService) Get(ctx context.Context, path string) (*APIResponse, error) {
	return a.do(ctx, http.MethodGet, path, nil)
}

// Put performs a PUT request with the given JSON data and returns the raw response.
func (a *APIService) Put(ctx context.Context, path string, data []byte) (*APIResponse, error) {
	return a.do(ctx, http.MethodPut, path, data)
}
