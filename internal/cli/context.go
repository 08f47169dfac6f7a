package cli

import (
	"strings"

	"github.com/julianstephens/vitalog/internal/backup"
	"github.com/julianstephens/vitalog/internal/config"
	"github.com/julianstephens/vitalog/internal/logger"
	"github.com/julianstephens/vitalog/internal/store"
)

// Context carries the shared dependencies every command runs against.
type Context struct {
	Store  *store.Store
	Config config.Config
}

// FileBacked reports whether the store persists to a plain file that the
// backup manager can copy. Anything that is not a SQLite database or a
// Postgres connection string is file backed, matching the backend switch
// in main.
func (c *Context) FileBacked() bool {
	path := c.Store.StoragePath()
	if strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://") {
		return false
	}
	return !strings.HasSuffix(path, ".db")
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.FileBacked() {
		return
	}
	mgr := backup.NewManager(c.Store.StoragePath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
