package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/database"
)

// RouterConfig carries every dependency the router needs. Constructed once
// at startup and passed into NewRouter; controllers never reach for globals.
type RouterConfig struct {
	BookStore      BookStore
	Searcher       VolumeSearcher
	Exporter       SnapshotWriter // nil disables POST /api/backup
	Database       *database.Database
	TemplatesPath  string
	StaticPath     string
	AllowedOrigins []string
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	// Load HTML templates and static assets for the catalog pages
	if cfg.TemplatesPath != "" {
		tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
		router.SetHTMLTemplate(tmpl)
	}
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.BookStore)
	metadataController := NewMetadataController(cfg.Searcher)
	backupController := NewBackupController(cfg.Exporter)
	uiController := NewUIController()

	// Health endpoint
	router.GET("/health", health.Status)

	// Books API endpoints
	router.GET("/api/books", booksController.ListBooks)
	router.GET("/api/books/:id", booksController.GetBook)
	router.POST("/api/books", booksController.CreateBook)
	router.PUT("/api/books/:id", booksController.UpdateBook)
	router.DELETE("/api/books/:id", booksController.DeleteBook)

	// Aggregate read endpoints
	router.GET("/api/genres", booksController.GetGenres)
	router.GET("/api/authors", booksController.GetAuthors)
	router.GET("/api/stats", booksController.GetStats)

	// External metadata search proxy
	router.GET("/api/search-google-books", metadataController.SearchGoogleBooks)

	// Backup endpoint
	router.POST("/api/backup", backupController.TriggerBackup)

	// HTML pages
	if cfg.TemplatesPath != "" {
		router.GET("/", uiController.IndexPage)
		router.GET("/add", uiController.AddBookPage)
		router.GET("/edit/:id", uiController.EditBookPage)
	}

	return router
}
