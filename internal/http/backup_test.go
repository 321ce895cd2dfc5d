package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSnapshotWriter struct {
	path string
	err  error
}

func (f *fakeSnapshotWriter) Export() (string, error) {
	return f.path, f.err
}

func doBackup(exporter SnapshotWriter) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/backup", NewBackupController(exporter).TriggerBackup)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/backup", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestBackupController_TriggerBackup(t *testing.T) {
	t.Run("returns 400 when not configured", func(t *testing.T) {
		w := doBackup(nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "BACKUP_DIR")
	})

	t.Run("returns the written path", func(t *testing.T) {
		w := doBackup(&fakeSnapshotWriter{path: "/backups/catalog-20240101-000000.json"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "catalog-20240101-000000.json")
	})

	t.Run("returns 500 on export failure", func(t *testing.T) {
		w := doBackup(&fakeSnapshotWriter{err: errors.New("disk full")})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
