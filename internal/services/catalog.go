// HTTP implementation of [CatalogAPI]
//
// Targets json-server style REST semantics: GET /authors, GET /authors?q=,
// GET /authors/:id, PUT /authors/:id, GET /categories.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/desertthunder/vidcat/internal/models"
	"github.com/desertthunder/vidcat/internal/shared"
	"golang.org/x/time/rate"
)

const defaultCatalogBaseURL = "http://localhost:3000"

// authorPayload is the PUT body for an author update: the response shape
// minus the id, which rides in the URL.
type authorPayload struct {
	Name   string                 `json:"name"`
	Videos []models.VideoResponse `json:"videos"`
}

// HTTPCatalog implements [CatalogAPI] over HTTP with client-side rate limiting.
type HTTPCatalog struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewHTTPCatalog creates a catalog client for the given base URL.
// A rps of zero or less disables rate limiting.
func NewHTTPCatalog(baseURL string, client *http.Client, rps float64) *HTTPCatalog {
	if baseURL == "" {
		baseURL = defaultCatalogBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	return &HTTPCatalog{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    limiter,
	}
}

func (c *HTTPCatalog) Name() string {
	return "catalog"
}

// doRequest performs an HTTP request against the backend and decodes the JSON
// response into result when non-nil.
func (c *HTTPCatalog) doRequest(ctx context.Context, method, endpoint string, body, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s: status %d", shared.ErrAPIRequest, method, endpoint, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Authors retrieves every author with embedded videos.
func (c *HTTPCatalog) Authors(ctx context.Context) ([]models.AuthorResponse, error) {
	var authors []models.AuthorResponse
	if err := c.doRequest(ctx, http.MethodGet, "/authors", nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

// SearchAuthors retrieves the authors matching the search term.
func (c *HTTPCatalog) SearchAuthors(ctx context.Context, term string) ([]models.AuthorResponse, error) {
	endpoint := fmt.Sprintf("/authors?q=%s", url.QueryEscape(term))

	var authors []models.AuthorResponse
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

// Author retrieves a single author by id.
func (c *HTTPCatalog) Author(ctx context.Context, id int64) (*models.AuthorResponse, error) {
	var author models.AuthorResponse
	endpoint := fmt.Sprintf("/authors/%d", id)
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// UpdateAuthor replaces an author record and returns the backend's echo.
func (c *HTTPCatalog) UpdateAuthor(ctx context.Context, author models.AuthorResponse) (*models.AuthorResponse, error) {
	payload := authorPayload{Name: author.Name, Videos: author.Videos}

	var updated models.AuthorResponse
	endpoint := fmt.Sprintf("/authors/%d", author.ID)
	if err := c.doRequest(ctx, http.MethodPut, endpoint, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Categories retrieves the full category collection.
func (c *HTTPCatalog) Categories(ctx context.Context) ([]models.CategoryResponse, error) {
	var categories []models.CategoryResponse
	if err := c.doRequest(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
