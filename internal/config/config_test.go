package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/revolutionary-ui/revui/internal/export"
)

func writeConfig(t *testing.T, dir, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, Dir), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Canvas != "main" {
		t.Errorf("canvas = %q, want main", cfg.Canvas)
	}
	if cfg.Export != export.DefaultOptions() {
		t.Errorf("export = %+v, want defaults", cfg.Export)
	}
	if cfg.Drag.Proximity != 50 {
		t.Errorf("proximity = %v, want 50", cfg.Drag.Proximity)
	}
}

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
canvas: landing
log_level: debug
export:
  framework: vue
  styling: tailwind
builder:
  grid_size: 16
  snap_to_grid: true
drag:
  proximity: 30
watch:
  debounce: 1s
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Canvas != "landing" {
		t.Errorf("canvas = %q", cfg.Canvas)
	}
	if cfg.Export.Framework != export.Vue || cfg.Export.Styling != export.StylingTailwind {
		t.Errorf("export = %+v", cfg.Export)
	}
	if cfg.Export.Format != export.FormatCode || !cfg.Export.TypeScript {
		t.Errorf("keys absent from the file should keep defaults, got %+v", cfg.Export)
	}
	if cfg.Builder.GridSize != 16 || !cfg.Builder.SnapToGrid || cfg.Builder.Device != "desktop" {
		t.Errorf("builder = %+v", cfg.Builder)
	}
	if cfg.Drag.Proximity != 30 || cfg.Drag.CanvasWidth != 1200 {
		t.Errorf("drag = %+v", cfg.Drag)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("debounce = %v", cfg.Watch.Debounce)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("level = %v", cfg.Level())
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "canvas: [", "parsing"},
		{"bad framework", "export:\n  framework: solid\n", `unsupported framework "solid"`},
		{"bad level", "log_level: loud\n", "unknown log level"},
		{"empty canvas", "canvas: ''\n", "canvas name is empty"},
		{"negative proximity", "drag:\n  proximity: -1\n", "proximity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.data)
			_, err := Load(dir)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "canvas: landing\nlog_level: info\n")
	t.Setenv(EnvCanvas, "scratch")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas != "scratch" {
		t.Errorf("canvas = %q, want scratch", cfg.Canvas)
	}
	if cfg.Level() != slog.LevelError {
		t.Errorf("level = %v, want error", cfg.Level())
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Canvas = "docs"
	cfg.Export.Framework = export.Svelte
	cfg.Watch.Debounce = 750 * time.Millisecond

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Canvas != "docs" || got.Export.Framework != export.Svelte || got.Watch.Debounce != 750*time.Millisecond {
		t.Errorf("reloaded config differs: %+v", got)
	}
}

func TestDatabasePath(t *testing.T) {
	cfg := Default()
	if got := cfg.DatabasePath("/proj"); got != filepath.Join("/proj", ".revui", "canvas.db") {
		t.Errorf("relative path = %q", got)
	}
	cfg.Database = "/var/lib/revui.db"
	if got := cfg.DatabasePath("/proj"); got != "/var/lib/revui.db" {
		t.Errorf("absolute path = %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "INFO", " warn ", "error"} {
		if _, err := ParseLevel(name); err != nil {
			t.Errorf("ParseLevel(%q): %v", name, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
