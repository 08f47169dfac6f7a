package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/vitalog/internal/store"
)

// ExportCmd writes the whole document to a date-named JSON file.
type ExportCmd struct {
	Out string `short:"o" help:"Output file path. Defaults to vitalog_data_<date>.json in the current directory."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	data, err := ctx.Store.Export()
	if err != nil {
		return err
	}

	out := c.Out
	if out == "" {
		out = store.ExportFilename(time.Now())
	}
	if err := os.WriteFile(out, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("Exported data to %s\n", out)
	return nil
}

// ImportCmd validates an exported document and replaces the current one.
type ImportCmd struct {
	File string `arg:"" help:"Path to a previously exported JSON document."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	// Keep a backup of the current state before replacing it.
	ctx.PerformAutomaticBackup()

	if err := ctx.Store.Import(data); err != nil {
		return err
	}
	ctx.Store.Flush()
	fmt.Println("Import complete.")
	return nil
}
