package http

import (
	"context"

	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/metadata"
)

// This file consolidates the interface definitions used by HTTP controllers.

// BookStore provides all catalog operations the book endpoints need.
// Implemented by books.Repository.
type BookStore interface {
	List(search, genre string) ([]entities.Book, error)
	GetByID(id uint) (*entities.Book, error)
	Create(book *entities.Book) error
	Update(book *entities.Book) error
	Delete(id uint) error
	DistinctGenres() ([]string, error)
	DistinctAuthors() ([]string, error)
	GetStats() (*books.Stats, error)
}

// VolumeSearcher queries an external book-metadata service.
// Implemented by metadata.GoogleBooksClient.
type VolumeSearcher interface {
	Search(ctx context.Context, query string) (*metadata.SearchResult, error)
}

// SnapshotWriter exports the catalog to a backup file.
// Implemented by exporters.SnapshotExporter.
type SnapshotWriter interface {
	Export() (string, error)
}
