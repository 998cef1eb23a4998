package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/salahtrack/internal/export"
)

type ExportCmd struct {
	Output string `arg:"" optional:"" help:"CSV file to write (defaults to stdout)." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	records, err := ctx.Store.GetAllRecords()
	if err != nil {
		return err
	}

	if c.Output == "" {
		return export.WriteCSV(os.Stdout, records)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Output, err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, records); err != nil {
		return err
	}
	fmt.Printf("✓ Exported %d records to %s\n", len(records), c.Output)
	return nil
}

type ImportCmd struct {
	Input string `arg:"" help:"CSV file to import." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	f, err := os.Open(c.Input)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", c.Input, err)
	}
	defer f.Close()

	result, err := export.ReadCSV(f)
	if err != nil {
		return err
	}

	count, err := ctx.Store.ImportRecords(result.Records)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Imported %d records\n", count)
	if result.Skipped > 0 {
		fmt.Printf("⚠ Skipped %d malformed rows:\n", result.Skipped)
		for _, warning := range result.Warnings {
			fmt.Printf("   %s\n", warning)
		}
	}
	return nil
}
