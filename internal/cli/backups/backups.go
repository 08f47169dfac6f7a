// Package backups holds the backup management commands.
package backups

import (
	"fmt"

	"github.com/julianstephens/vitalog/internal/backup"
	"github.com/julianstephens/vitalog/internal/cli"
)

func manager(ctx *cli.Context) (*backup.Manager, error) {
	if !ctx.FileBacked() {
		return nil, fmt.Errorf("backups are only available for file storage (current backend: %s)", ctx.Store.StoragePath())
	}
	return backup.NewManager(ctx.Store.StoragePath()), nil
}

// BackupCreateCmd snapshots the storage file.
type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	ctx.Store.Flush()
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Backup created: %s\n", path)
	return nil
}

// BackupListCmd lists the available backups, newest first.
type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	fmt.Println(cli.TitleStyle.Render("Backups"))
	for _, b := range backups {
		fmt.Printf("  %s  %6.1f KB  %s\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), float64(b.Size)/1024, b.Path)
	}
	return nil
}

// BackupRestoreCmd replaces the storage file with a backup. The store must
// be re-opened afterwards, so the command instructs the next invocation to
// pick up the restored document.
type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	if err := mgr.RestoreBackup(c.Path); err != nil {
		return err
	}
	fmt.Println(cli.OkStyle.Render("Backup restored. The restored data is live on the next run."))
	return nil
}
