package fixer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revolutionary-ui/revui/internal/cli"
	"github.com/revolutionary-ui/revui/internal/export"
)

// RepairFile parses the JSON tree in path and repairs it. The file is left
// untouched; see Apply.
func RepairFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	nodes, err := export.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Repair(nodes, path), nil
}

// Apply writes the repaired tree back to path, creating a .bak backup first.
// It does nothing when no fix was made.
func Apply(path string, result *Result) error {
	if !result.Changed() {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	backupPath := path + ".bak"
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return fmt.Errorf("creating backup %s: %w", backupPath, err)
	}

	out, err := export.JSON(result.Components)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// PrintResult displays the fixes and whatever the fixer could not resolve.
func PrintResult(out io.Writer, result *Result, name string) {
	errorCount := len(result.Remaining.Errors())
	warnCount := len(result.Remaining.Warnings())
	fixCount := len(result.Fixes)

	header := fmt.Sprintf("── %s: %d fixed, %d errors, %d warnings left ", name, fixCount, errorCount, warnCount)
	pad := 50 - len([]rune(header))
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(out, "%s%s\n\n", cli.Heading(header), strings.Repeat("─", pad))

	if fixCount > 0 {
		fmt.Fprintln(out, cli.Info("Fixes:"))
		for i, f := range result.Fixes {
			fmt.Fprintf(out, "  %d. %s %s\n", i+1, cli.Muted(f.Code), f.Description)
		}
		fmt.Fprintln(out)
	}

	if errorCount+warnCount > 0 {
		cli.PrintDiagnostics(out, result.Remaining)
	}
}
