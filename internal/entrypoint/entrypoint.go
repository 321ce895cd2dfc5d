package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/exporters"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/metadata"
	"github.com/mrlokans/bookshelf/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the backup scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	repo := books.NewRepository(db.DB)

	googleBooksClient := metadata.NewGoogleBooksClient(
		cfg.GoogleBooks.BaseURL,
		cfg.GoogleBooks.Timeout,
		cfg.GoogleBooks.MaxResults,
	)

	// Catalog backups are opt-in via BACKUP_DIR
	var exporter *exporters.SnapshotExporter
	var backupScheduler *scheduler.BackupScheduler
	if cfg.Backup.Dir != "" {
		exporter = exporters.NewSnapshotExporter(repo, cfg.Backup.Dir, cfg.Backup.Retention)
		backupScheduler = scheduler.NewBackupScheduler(exporter, cfg.Backup.Schedule)
		if err := backupScheduler.Start(); err != nil {
			log.Fatalf("Failed to start backup scheduler: %v", err)
		}
	} else {
		log.Printf("Catalog backups disabled (BACKUP_DIR not set)")
	}

	routerCfg := http_controllers.RouterConfig{
		BookStore:      repo,
		Searcher:       googleBooksClient,
		Database:       db,
		TemplatesPath:  cfg.UI.TemplatesPath,
		StaticPath:     cfg.UI.StaticPath,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Version:        version,
	}
	if exporter != nil {
		routerCfg.Exporter = exporter
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if backupScheduler != nil {
			backupScheduler.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
