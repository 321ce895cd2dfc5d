// Command seed fills a catalog database with sample books.
// Usage: go run cmd/seed/main.go [-db path/to/books.db]
package main

import (
	"flag"
	"log"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/entities"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func sampleBooks() []entities.Book {
	return []entities.Book{
		{
			Title:       "Dune",
			Author:      "Frank Herbert",
			Year:        intPtr(1965),
			Genre:       strPtr("Science Fiction"),
			Description: strPtr("Paul Atreides and the desert planet Arrakis."),
		},
		{
			Title:  "Foundation",
			Author: "Isaac Asimov",
			Year:   intPtr(1951),
			Genre:  strPtr("Science Fiction"),
		},
		{
			Title:       "The Hobbit",
			Author:      "J.R.R. Tolkien",
			Year:        intPtr(1937),
			Genre:       strPtr("Fantasy"),
			Description: strPtr("Bilbo Baggins goes on an adventure."),
		},
		{
			Title:  "Pride and Prejudice",
			Author: "Jane Austen",
			Year:   intPtr(1813),
			Genre:  strPtr("Romance"),
		},
		{
			Title:  "Clean Code",
			Author: "Robert C. Martin",
			Year:   intPtr(2008),
		},
	}
}

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the catalog database file")
	flag.Parse()

	log.Printf("Seeding catalog at %s...", *dbPath)

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repo := books.NewRepository(db.DB)

	for _, book := range sampleBooks() {
		if err := repo.Create(&book); err != nil {
			log.Printf("Failed to save book %s: %v", book.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s (id=%d)", book.Title, book.Author, book.ID)
	}

	log.Printf("Done")
}
