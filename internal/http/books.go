package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// BooksController implements the Book resource API.
type BooksController struct {
	store BookStore
}

// NewBooksController creates a new BooksController.
func NewBooksController(store BookStore) *BooksController {
	return &BooksController{
		store: store,
	}
}

// CreateBookRequest is the request body for creating a book.
// Title and author are required; the rest defaults to absent.
type CreateBookRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Year        *int    `json:"year"`
	Genre       *string `json:"genre"`
	Description *string `json:"description"`
}

// UpdateBookRequest is the request body for a partial book update.
// Absent (or null) fields keep their stored values.
type UpdateBookRequest struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Year        *int    `json:"year"`
	Genre       *string `json:"genre"`
	Description *string `json:"description"`
}

// ListBooks handles GET /api/books?search=&genre=
func (controller *BooksController) ListBooks(c *gin.Context) {
	books, err := controller.store.List(c.Query("search"), c.Query("genre"))
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// GetBook handles GET /api/books/:id
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// CreateBook handles POST /api/books
func (controller *BooksController) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title and author are required")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Author) == "" {
		respondBadRequest(c, "title and author are required")
		return
	}

	book := &entities.Book{
		Title:       req.Title,
		Author:      req.Author,
		Year:        req.Year,
		Genre:       req.Genre,
		Description: req.Description,
	}
	if err := controller.store.Create(book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	respondCreated(c, book)
}

// UpdateBook handles PUT /api/books/:id
//
// Each provided field replaces the stored value; absent fields are kept.
// A provided title or author must be non-empty.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "update book")
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "request body is required")
		return
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			respondBadRequest(c, "title cannot be empty")
			return
		}
		book.Title = *req.Title
	}
	if req.Author != nil {
		if strings.TrimSpace(*req.Author) == "" {
			respondBadRequest(c, "author cannot be empty")
			return
		}
		book.Author = *req.Author
	}
	if req.Year != nil {
		book.Year = req.Year
	}
	if req.Genre != nil {
		book.Genre = req.Genre
	}
	if req.Description != nil {
		book.Description = req.Description
	}

	if err := controller.store.Update(book); err != nil {
		respondInternalError(c, err, "update book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /api/books/:id
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := controller.store.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "delete book")
		return
	}

	if err := controller.store.Delete(id); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}

	respondSuccess(c, "book deleted successfully")
}

// GetGenres handles GET /api/genres
func (controller *BooksController) GetGenres(c *gin.Context) {
	genres, err := controller.store.DistinctGenres()
	if err != nil {
		respondInternalError(c, err, "list genres")
		return
	}
	c.JSON(http.StatusOK, genres)
}

// GetAuthors handles GET /api/authors
func (controller *BooksController) GetAuthors(c *gin.Context) {
	authors, err := controller.store.DistinctAuthors()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.JSON(http.StatusOK, authors)
}

// GetStats handles GET /api/stats
func (controller *BooksController) GetStats(c *gin.Context) {
	stats, err := controller.store.GetStats()
	if err != nil {
		respondInternalError(c, err, "collection stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
