// Package books provides database operations for catalog entries.
//
// This package implements the BookStore interface defined in
// internal/http/stores.go.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(123)
package books

import (
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// GenreAll is the sentinel genre filter meaning "no genre restriction".
// Matched case-insensitively.
const GenreAll = "todos"

// Stats summarizes the catalog. The distinct counts use the same
// trim/non-empty filter as DistinctGenres and DistinctAuthors.
type Stats struct {
	TotalBooks   int64 `json:"total_books"`
	TotalGenres  int   `json:"total_genres"`
	TotalAuthors int   `json:"total_authors"`
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all books matching the given filters. A non-empty search term
// matches title, author or genre by case-insensitive substring. A non-empty
// genre narrows results by genre substring, unless it is the GenreAll
// sentinel. Filters compose with AND.
func (r *Repository) List(search, genre string) ([]entities.Book, error) {
	query := r.db.Model(&entities.Book{})

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?) OR LOWER(genre) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	if genre = strings.TrimSpace(genre); genre != "" && !strings.EqualFold(genre, GenreAll) {
		query = query.Where("LOWER(genre) LIKE LOWER(?)", "%"+genre+"%")
	}

	books := make([]entities.Book, 0)
	err := query.Find(&books).Error
	return books, err
}

// GetByID retrieves a book by its ID.
// Returns gorm.ErrRecordNotFound when no such book exists.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// Create persists a new book, assigning its ID.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// Update persists all fields of an existing book.
func (r *Repository) Update(book *entities.Book) error {
	return r.db.Save(book).Error
}

// Delete removes a book by ID.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}

// DistinctGenres returns the sorted set of non-null genre values that are
// non-empty after trimming. Values are deduplicated as trimmed raw strings,
// so casing variants stay distinct.
func (r *Repository) DistinctGenres() ([]string, error) {
	return r.distinctColumn("genre")
}

// DistinctAuthors returns the sorted set of non-null, non-empty author values.
func (r *Repository) DistinctAuthors() ([]string, error) {
	return r.distinctColumn("author")
}

func (r *Repository) distinctColumn(column string) ([]string, error) {
	var raw []string
	err := r.db.Model(&entities.Book{}).
		Where(column + " IS NOT NULL").
		Distinct().
		Pluck(column, &raw).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(raw))
	values := make([]string, 0, len(raw))
	for _, value := range raw {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	sort.Strings(values)
	return values, nil
}

// GetStats returns the total row count plus distinct genre and author counts.
func (r *Repository) GetStats() (*Stats, error) {
	var total int64
	if err := r.db.Model(&entities.Book{}).Count(&total).Error; err != nil {
		return nil, err
	}

	genres, err := r.DistinctGenres()
	if err != nil {
		return nil, err
	}
	authors, err := r.DistinctAuthors()
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalBooks:   total,
		TotalGenres:  len(genres),
		TotalAuthors: len(authors),
	}, nil
}
