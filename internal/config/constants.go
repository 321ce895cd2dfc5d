package config

const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./books.db"

	// DefaultGoogleBooksBaseURL is the base URL of the Google Books volumes API
	DefaultGoogleBooksBaseURL = "https://www.googleapis.com/books/v1"
)
