package http

import (
	"github.com/gin-gonic/gin"
)

// BackupController triggers on-demand catalog snapshots.
type BackupController struct {
	exporter SnapshotWriter // nil when backups are not configured
}

// NewBackupController creates a new BackupController.
func NewBackupController(exporter SnapshotWriter) *BackupController {
	return &BackupController{
		exporter: exporter,
	}
}

// TriggerBackup handles POST /api/backup
func (bc *BackupController) TriggerBackup(c *gin.Context) {
	if bc.exporter == nil {
		respondBadRequest(c, "backups are not configured (set BACKUP_DIR)")
		return
	}

	path, err := bc.exporter.Export()
	if err != nil {
		respondInternalError(c, err, "catalog backup")
		return
	}

	c.JSON(200, SuccessResponse{
		Message: "backup written",
		Data:    gin.H{"path": path},
	})
}
