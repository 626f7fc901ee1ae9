// package testing contains shared testing utilities
package testing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/desertthunder/vidcat/internal/models"
	"github.com/desertthunder/vidcat/internal/shared"
)

// MockCatalog is a configurable test double for [services.CatalogAPI].
// Every backend call is recorded so tests can assert on the exact set of
// requests a workflow issued.
type MockCatalog struct {
	AuthorsFunc       func(ctx context.Context) ([]models.AuthorResponse, error)
	SearchAuthorsFunc func(ctx context.Context, term string) ([]models.AuthorResponse, error)
	AuthorFunc        func(ctx context.Context, id int64) (*models.AuthorResponse, error)
	UpdateAuthorFunc  func(ctx context.Context, author models.AuthorResponse) (*models.AuthorResponse, error)
	CategoriesFunc    func(ctx context.Context) ([]models.CategoryResponse, error)

	mu      sync.Mutex
	calls   []string
	updates []models.AuthorResponse
}

func (m *MockCatalog) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

// Calls returns the recorded backend calls in issue order.
func (m *MockCatalog) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.calls...)
}

// Updates returns the author payloads passed to UpdateAuthor.
func (m *MockCatalog) Updates() []models.AuthorResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AuthorResponse{}, m.updates...)
}

func (m *MockCatalog) Name() string { return "mock" }

func (m *MockCatalog) Authors(ctx context.Context) ([]models.AuthorResponse, error) {
	m.record("GET /authors")
	if m.AuthorsFunc != nil {
		return m.AuthorsFunc(ctx)
	}
	return nil, nil
}

func (m *MockCatalog) SearchAuthors(ctx context.Context, term string) ([]models.AuthorResponse, error) {
	m.record("GET /authors?q=" + term)
	if m.SearchAuthorsFunc != nil {
		return m.SearchAuthorsFunc(ctx, term)
	}
	return nil, nil
}

func (m *MockCatalog) Author(ctx context.Context, id int64) (*models.AuthorResponse, error) {
	m.record(fmt.Sprintf("GET /authors/%d", id))
	if m.AuthorFunc != nil {
		return m.AuthorFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCatalog) UpdateAuthor(ctx context.Context, author models.AuthorResponse) (*models.AuthorResponse, error) {
	m.record(fmt.Sprintf("PUT /authors/%d", author.ID))
	m.mu.Lock()
	m.updates = append(m.updates, author)
	m.mu.Unlock()
	if m.UpdateAuthorFunc != nil {
		return m.UpdateAuthorFunc(ctx, author)
	}
	echo := author
	return &echo, nil
}

func (m *MockCatalog) Categories(ctx context.Context) ([]models.CategoryResponse, error) {
	m.record("GET /categories")
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx)
	}
	return nil, nil
}

// NewTestDB opens an in-memory database with migrations applied and closes it
// when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.OpenJournalDB(shared.DatabaseConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
