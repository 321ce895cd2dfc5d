package books

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	dbPath := "./test_books_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.Book{}))

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestRepository_CreateAndGetByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := &entities.Book{
		Title:  "Dune",
		Author: "Frank Herbert",
		Year:   intPtr(1965),
		Genre:  strPtr("Sci-Fi"),
	}
	require.NoError(t, repo.Create(book))
	assert.NotZero(t, book.ID)

	found, err := repo.GetByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", found.Title)
	assert.Equal(t, "Frank Herbert", found.Author)
	require.NotNil(t, found.Year)
	assert.Equal(t, 1965, *found.Year)
	require.NotNil(t, found.Genre)
	assert.Equal(t, "Sci-Fi", *found.Genre)
	assert.Nil(t, found.Description)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Update(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := &entities.Book{Title: "Dune", Author: "Frank Herbert"}
	require.NoError(t, repo.Create(book))

	book.Genre = strPtr("Science Fiction")
	book.Year = intPtr(1965)
	require.NoError(t, repo.Update(book))

	found, err := repo.GetByID(book.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Genre)
	assert.Equal(t, "Science Fiction", *found.Genre)
	require.NotNil(t, found.Year)
	assert.Equal(t, 1965, *found.Year)
}

func TestRepository_Delete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := &entities.Book{Title: "Dune", Author: "Frank Herbert"}
	require.NoError(t, repo.Create(book))

	require.NoError(t, repo.Delete(book.ID))

	_, err := repo.GetByID(book.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	books, err := repo.List("", "")
	require.NoError(t, err)
	assert.Empty(t, books)
}

func seedCatalog(t *testing.T, repo *Repository) {
	t.Helper()
	fixtures := []entities.Book{
		{Title: "Foundation", Author: "Isaac Asimov", Genre: strPtr("Sci-Fi")},
		{Title: "I, Robot", Author: "Isaac Asimov", Genre: strPtr("Sci-Fi")},
		{Title: "Dune", Author: "Frank Herbert", Genre: strPtr("Science Fiction")},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: strPtr("Fantasy")},
		{Title: "Clean Code", Author: "Robert C. Martin"},
	}
	for i := range fixtures {
		require.NoError(t, repo.Create(&fixtures[i]))
	}
}

func TestRepository_List_Search(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	t.Run("matches author case-insensitively", func(t *testing.T) {
		books, err := repo.List("asimov", "")
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})

	t.Run("matches title substring", func(t *testing.T) {
		books, err := repo.List("hobbit", "")
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "The Hobbit", books[0].Title)
	})

	t.Run("matches genre substring", func(t *testing.T) {
		books, err := repo.List("fantasy", "")
		require.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("no match yields empty non-nil slice", func(t *testing.T) {
		books, err := repo.List("zzz-no-such-book", "")
		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})
}

func TestRepository_List_GenreFilter(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	t.Run("filters by genre substring", func(t *testing.T) {
		books, err := repo.List("", "sci")
		require.NoError(t, err)
		// "Sci-Fi" x2 and "Science Fiction"
		assert.Len(t, books, 3)
	})

	t.Run("sentinel genre means no filter", func(t *testing.T) {
		all, err := repo.List("", "")
		require.NoError(t, err)

		books, err := repo.List("", "Todos")
		require.NoError(t, err)
		assert.Len(t, books, len(all))
	})

	t.Run("composes with search", func(t *testing.T) {
		books, err := repo.List("asimov", "sci-fi")
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})
}

func TestRepository_DistinctGenres(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	fixtures := []entities.Book{
		{Title: "A", Author: "X", Genre: strPtr("Sci-Fi")},
		{Title: "B", Author: "X", Genre: strPtr("sci-fi ")},
		{Title: "C", Author: "X", Genre: strPtr("")},
		{Title: "D", Author: "X"},
		{Title: "E", Author: "X", Genre: strPtr("Sci-Fi")},
	}
	for i := range fixtures {
		require.NoError(t, repo.Create(&fixtures[i]))
	}

	genres, err := repo.DistinctGenres()
	require.NoError(t, err)
	// Trimmed, deduplicated, sorted; casing variants stay distinct.
	assert.Equal(t, []string{"Sci-Fi", "sci-fi"}, genres)
}

func TestRepository_DistinctAuthors(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	authors, err := repo.DistinctAuthors()
	require.NoError(t, err)
	assert.Equal(t, []string{"Frank Herbert", "Isaac Asimov", "J.R.R. Tolkien", "Robert C. Martin"}, authors)
}

func TestRepository_GetStats(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalBooks)
	// "Sci-Fi", "Science Fiction", "Fantasy"; the genre-less book is excluded.
	assert.Equal(t, 3, stats.TotalGenres)
	assert.Equal(t, 4, stats.TotalAuthors)
}

func TestRepository_GetStats_EmptyCatalog(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalBooks)
	assert.Equal(t, 0, stats.TotalGenres)
	assert.Equal(t, 0, stats.TotalAuthors)
}
