package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/vidcat/internal/models"
	"github.com/desertthunder/vidcat/internal/shared"
)

func TestHTTPCatalog(t *testing.T) {
	t.Run("Authors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.URL.Path != "/authors" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `[{"id":1,"name":"Nora","videos":[{"id":10,"name":"Zebra Documentary","catIds":[1,2]}]}]`)
		}))
		defer server.Close()

		client := NewHTTPCatalog(server.URL, server.Client(), 0)
		authors, err := client.Authors(context.Background())
		if err != nil {
			t.Fatalf("Authors failed: %v", err)
		}

		if len(authors) != 1 || authors[0].Name != "Nora" {
			t.Fatalf("unexpected authors: %+v", authors)
		}
		if len(authors[0].Videos) != 1 || authors[0].Videos[0].CatIDs[1] != 2 {
			t.Errorf("unexpected embedded videos: %+v", authors[0].Videos)
		}
	})

	t.Run("SearchAuthorsEscapesTerm", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			io.WriteString(w, `[]`)
		}))
		defer server.Close()

		client := NewHTTPCatalog(server.URL, server.Client(), 0)
		if _, err := client.SearchAuthors(context.Background(), "john smith & co"); err != nil {
			t.Fatalf("SearchAuthors failed: %v", err)
		}

		if gotQuery != "q=john+smith+%26+co" {
			t.Errorf("expected escaped query, got %q", gotQuery)
		}
	})

	t.Run("Author", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/authors/7" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			io.WriteString(w, `{"id":7,"name":"Amir","videos":[]}`)
		}))
		defer server.Close()

		client := NewHTTPCatalog(server.URL, server.Client(), 0)
		author, err := client.Author(context.Background(), 7)
		if err != nil {
			t.Fatalf("Author failed: %v", err)
		}
		if author.ID != 7 || author.Name != "Amir" {
			t.Errorf("unexpected author: %+v", author)
		}
	})

	t.Run("UpdateAuthorOmitsID", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			if r.Method != http.MethodPut {
				t.Errorf("expected PUT, got %s", r.Method)
			}
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("failed to decode body: %v", err)
			}
			io.WriteString(w, `{"id":1,"name":"Nora","videos":[{"id":10,"name":"Zebra Documentary","catIds":[1]}]}`)
		}))
		defer server.Close()

		client := NewHTTPCatalog(server.URL, server.Client(), 0)
		updated, err := client.UpdateAuthor(context.Background(), models.AuthorResponse{
			ID:   1,
			Name: "Nora",
			Videos: []models.VideoResponse{
				{ID: 10, Name: "Zebra Documentary", CatIDs: []int64{1}},
			},
		})
		if err != nil {
			t.Fatalf("UpdateAuthor failed: %v", err)
		}

		if gotPath != "/authors/1" {
			t.Errorf("expected id in the URL, got %q", gotPath)
		}
		if _, ok := gotBody["id"]; ok {
			t.Error("PUT body must not carry the author id")
		}
		if gotBody["name"] != "Nora" {
			t.Errorf("unexpected body: %v", gotBody)
		}
		if updated.ID != 1 || len(updated.Videos) != 1 {
			t.Errorf("unexpected echo: %+v", updated)
		}
	})

	t.Run("Categories", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/categories" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			io.WriteString(w, `[{"id":1,"name":"Thriller"},{"id":2,"name":"Crime"}]`)
		}))
		defer server.Close()

		client := NewHTTPCatalog(server.URL, server.Client(), 0)
		categories, err := client.Categories(context.Background())
		if err != nil {
			t.Fatalf("Categories failed: %v", err)
		}
		if len(categories) != 2 || categories[1].Name != "Crime" {
			t.Errorf("unexpected categories: %+v", categories)
		}
	})

	t.Run("NonSuccessStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewHTTPCatalog(server.URL, server.Client(), 0)
		if _, err := client.Authors(context.Background()); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("RateLimiterHonorsContext", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[]`)
		}))
		defer server.Close()

		// One token per hundred seconds; the second call has to wait and the
		// canceled context aborts it.
		client := NewHTTPCatalog(server.URL, server.Client(), 0.01)
		if _, err := client.Authors(context.Background()); err != nil {
			t.Fatalf("first call failed: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := client.Authors(ctx); err == nil {
			t.Error("expected rate limiter to surface the canceled context")
		}
	})
}
