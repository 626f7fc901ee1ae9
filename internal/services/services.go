// package services defines interface CatalogAPI for interacting with the catalog backend
package services

import (
	"context"

	"github.com/desertthunder/vidcat/internal/models"
)

// CatalogAPI defines the backend operations the catalog workflows depend on.
//
// Authors are the unit of persistence: videos are never fetched or written
// independently, they ride along inside author responses.
type CatalogAPI interface {
	// Authors retrieves every author with its videos embedded.
	Authors(ctx context.Context) ([]models.AuthorResponse, error)

	// SearchAuthors retrieves the authors matching the given term.
	SearchAuthors(ctx context.Context, term string) ([]models.AuthorResponse, error)

	// Author retrieves a single author by id.
	Author(ctx context.Context, id int64) (*models.AuthorResponse, error)

	// UpdateAuthor replaces an author record. The request body is the author
	// payload minus the id; the backend echoes the updated author back.
	UpdateAuthor(ctx context.Context, author models.AuthorResponse) (*models.AuthorResponse, error)

	// Categories retrieves the full category collection.
	Categories(ctx context.Context) ([]models.CategoryResponse, error)

	// Name returns the name of the backend (for logs and diagnostics).
	Name() string
}
