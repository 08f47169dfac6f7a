package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "vitalog.json")
	if err := os.WriteFile(storePath, []byte(`{"version": 1}`), 0600); err != nil {
		t.Fatal(err)
	}
	return NewManager(storePath), storePath
}

func TestCreateBackup(t *testing.T) {
	mgr, _ := setupTestManager(t)

	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "vitalog-") || !strings.HasSuffix(path, ".json") {
		t.Errorf("unexpected backup name: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("backup unreadable: %v", err)
	}
	if string(data) != `{"version": 1}` {
		t.Errorf("backup content mismatch: %s", data)
	}
}

func TestCreateBackupMissingStorageFile(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected an error when the storage file does not exist")
	}
}

func TestCreateBackupUniqueNames(t *testing.T) {
	mgr, _ := setupTestManager(t)

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if first == second {
		t.Error("backups created in the same minute must get distinct names")
	}
}

func TestListBackups(t *testing.T) {
	mgr, _ := setupTestManager(t)

	if backups, err := mgr.ListBackups(); err != nil || len(backups) != 0 {
		t.Fatalf("expected no backups before any create, got %v / %v", backups, err)
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatal(err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	if backups[0].Timestamp.Before(backups[1].Timestamp) {
		t.Error("expected newest first")
	}
}

func TestRestoreBackup(t *testing.T) {
	mgr, storePath := setupTestManager(t)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	// The live file moves on after the backup was taken.
	if err := os.WriteFile(storePath, []byte(`{"version": 2}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	data, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version": 1}` {
		t.Errorf("expected restored content, got %s", data)
	}

	// The pre-restore state must itself be preserved as a safety backup.
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, b := range backups {
		content, err := os.ReadFile(b.Path)
		if err != nil {
			continue
		}
		if string(content) == `{"version": 2}` {
			found = true
		}
	}
	if !found {
		t.Error("expected a safety backup of the pre-restore state")
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	mgr, _ := setupTestManager(t)
	if err := mgr.RestoreBackup(filepath.Join(mgr.BackupDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing backup")
	}
}
