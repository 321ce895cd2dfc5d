// Package scheduler runs periodic catalog backups on a cron schedule.
package scheduler

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/bookshelf/internal/exporters"
)

// BackupScheduler runs the snapshot exporter on a cron schedule.
type BackupScheduler struct {
	exporter *exporters.SnapshotExporter
	schedule string

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

// NewBackupScheduler creates a scheduler using a standard 5-field cron spec.
func NewBackupScheduler(exporter *exporters.SnapshotExporter, schedule string) *BackupScheduler {
	return &BackupScheduler{
		exporter: exporter,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *BackupScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.runBackup); err != nil {
		return fmt.Errorf("invalid backup schedule '%s': %w", s.schedule, err)
	}

	s.cron.Start()
	s.isRunning = true

	log.Printf("Backup scheduler: started with schedule '%s'", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running backup.
func (s *BackupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false

	log.Printf("Backup scheduler: stopped")
}

func (s *BackupScheduler) runBackup() {
	path, err := s.exporter.Export()
	if err != nil {
		log.Printf("Backup scheduler: export failed: %v", err)
		return
	}
	log.Printf("Backup scheduler: wrote %s", path)
}
