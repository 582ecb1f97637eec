package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/cli"
	"github.com/revolutionary-ui/revui/internal/config"
	"github.com/revolutionary-ui/revui/internal/registry"
	"github.com/revolutionary-ui/revui/internal/session"
	"github.com/revolutionary-ui/revui/internal/store"
	"github.com/revolutionary-ui/revui/internal/templates"
	"github.com/revolutionary-ui/revui/internal/version"
)

// canvasFlag is set by the global --canvas flag.
var canvasFlag string

func main() {
	// Parse global flags before command dispatch
	args := filterGlobalFlags(os.Args[1:])

	if len(args) < 1 {
		printBanner()
		printUsage()
		os.Exit(0)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "version", "--version", "-v":
		fmt.Printf("revui v%s\n", version.Info())
	case "help", "--help", "-h":
		printUsage()
	case "components":
		cmdComponents(rest)
	case "templates":
		cmdTemplates()
	case "init":
		cmdInit(rest)
	case "canvases":
		cmdCanvases()
	case "tree":
		cmdTree(rest)
	case "add":
		cmdAdd(rest)
	case "update":
		cmdUpdate(rest)
	case "rename":
		cmdRename(rest)
	case "lock", "unlock":
		cmdLock(rest, cmd == "lock")
	case "hide", "show":
		cmdShow(rest, cmd == "show")
	case "delete":
		cmdDelete(rest)
	case "move":
		cmdMove(rest)
	case "duplicate":
		cmdDuplicate(rest)
	case "undo":
		cmdUndo()
	case "redo":
		cmdRedo()
	case "template":
		cmdTemplate(rest)
	case "import":
		cmdImport(rest)
	case "drop":
		cmdDrop(rest)
	case "clear":
		cmdClear()
	case "check":
		cmdCheck(rest)
	case "export":
		cmdExport(rest)
	default:
		fmt.Fprintln(os.Stderr, cli.Error(fmt.Sprintf("Unknown command: %s", cmd)))
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// filterGlobalFlags strips --no-color and --canvas from the args list and
// applies them.
func filterGlobalFlags(args []string) []string {
	var filtered []string
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--no-color":
			cli.ColorEnabled = false
		case arg == "--canvas" && i+1 < len(args):
			canvasFlag = args[i+1]
			i++
		case strings.HasPrefix(arg, "--canvas="):
			canvasFlag = strings.TrimPrefix(arg, "--canvas=")
		default:
			filtered = append(filtered, arg)
		}
	}
	return filtered
}

// ── Project ──

// project is the loaded configuration plus the open canvas.
type project struct {
	dir   string
	cfg   *config.Config
	log   *slog.Logger
	store *store.Store
	sess  *session.Session
}

// loadConfig reads the project config and sets up logging and the theme.
func loadConfig() (string, *config.Config, *slog.Logger) {
	dir, err := os.Getwd()
	if err != nil {
		fail("Could not determine current directory")
	}
	cfg, err := config.Load(dir)
	if err != nil {
		fail(err.Error())
	}
	if canvasFlag != "" {
		cfg.Canvas = canvasFlag
	}
	if err := cli.SetTheme(cfg.Theme); err != nil {
		fail(fmt.Sprintf("%s: %v", config.Dir+"/config.yaml", err))
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)
	return dir, cfg, logger
}

// openProject loads config and the current canvas. The caller must close.
func openProject() *project {
	dir, cfg, logger := loadConfig()

	st, err := store.Open(cfg.DatabasePath(dir), logger)
	if err != nil {
		fail(fmt.Sprintf("Could not open canvas database: %v", err))
	}
	sess, err := session.Load(context.Background(), st, sessionOptions(cfg, logger))
	if err != nil {
		st.Close()
		fail(fmt.Sprintf("Could not load canvas %s: %v", cfg.Canvas, err))
	}
	return &project{dir: dir, cfg: cfg, log: logger, store: st, sess: sess}
}

func sessionOptions(cfg *config.Config, logger *slog.Logger) session.Options {
	settings := cfg.Builder
	return session.Options{
		Name:      cfg.Canvas,
		Width:     cfg.Drag.CanvasWidth,
		Proximity: cfg.Drag.Proximity,
		Settings:  &settings,
		Logger:    logger,
	}
}

func (p *project) close() {
	p.store.Close()
}

// save persists the canvas or exits.
func (p *project) save() {
	if err := p.sess.Save(context.Background(), p.store); err != nil {
		p.close()
		fail(err.Error())
	}
}

// resolve expands a component id or id prefix or exits.
func (p *project) resolve(ref string) string {
	return p.mustResolve(ref, false)
}

// resolveParent is resolve that also accepts "root" for the canvas root.
func (p *project) resolveParent(ref string) string {
	return p.mustResolve(ref, true)
}

func (p *project) mustResolve(ref string, allowRoot bool) string {
	id, err := resolveRef(p.sess, ref, allowRoot)
	if err != nil {
		p.close()
		fail(err.Error())
	}
	return id
}

// resolveRef maps "root" to "" where a parent is expected and otherwise
// returns the id of an existing component.
func resolveRef(s *session.Session, ref string, allowRoot bool) (string, error) {
	if ref == "root" {
		if allowRoot {
			return "", nil
		}
		return "", fmt.Errorf("%w: root is the canvas, not a component", session.ErrUnknownNode)
	}
	return s.Resolve(ref)
}

// ── Catalog ──

func cmdComponents(args []string) {
	categories := registry.Categories()
	if len(args) > 0 {
		if len(registry.ListByCategory(args[0])) == 0 {
			fail(fmt.Sprintf("Unknown category %q. Available: %s", args[0], strings.Join(categories, ", ")))
		}
		categories = []string{args[0]}
	}
	for i, c := range categories {
		if i > 0 {
			fmt.Println()
		}
		cli.PrintComponents(os.Stdout, registry.ListByCategory(c))
	}
}

func cmdTemplates() {
	for i, c := range templates.Categories() {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(cli.Heading(c))
		for _, t := range templates.ListByCategory(c) {
			fmt.Printf("  %s %s  %s\n", cli.Accent(fmt.Sprintf("%-16s", t.ID)), t.Name, cli.Muted(t.Description))
		}
	}
}

// ── init ──

func cmdInit(args []string) {
	dir, cfg, logger := loadConfig()

	if _, err := os.Stat(filepath.Join(dir, config.Dir, "config.yaml")); os.IsNotExist(err) {
		if err := config.Save(dir, cfg); err != nil {
			fail(err.Error())
		}
		fmt.Println(cli.Success(fmt.Sprintf("Created %s/config.yaml", config.Dir)))
	}

	st, err := store.Open(cfg.DatabasePath(dir), logger)
	if err != nil {
		fail(fmt.Sprintf("Could not create canvas database: %v", err))
	}
	p := &project{dir: dir, cfg: cfg, log: logger, store: st}
	defer p.close()

	p.sess, err = session.Load(context.Background(), st, sessionOptions(cfg, logger))
	if err != nil {
		p.close()
		fail(err.Error())
	}
	if len(args) > 0 {
		applyTemplate(p, args[0])
	}
	p.save()
	fmt.Println(cli.Success(fmt.Sprintf("Canvas %q ready (%s). Run 'revui tree' to see it", cfg.Canvas, cfg.Database)))
}

func cmdCanvases() {
	p := openProject()
	defer p.close()

	list, err := p.store.List(context.Background())
	if err != nil {
		p.close()
		fail(err.Error())
	}
	if len(list) == 0 {
		fmt.Println(cli.Muted("No saved canvases. Run 'revui init' to create one."))
		return
	}
	for _, c := range list {
		marker := "  "
		if c.Name == p.cfg.Canvas {
			marker = cli.Accent("* ")
		}
		fmt.Printf("%s%-20s %4d nodes  %s\n", marker, c.Name, c.Nodes, cli.Muted(c.UpdatedAt.Local().Format("2006-01-02 15:04")))
	}
}

// ── Helpers ──

// printBanner shows the logo and the current canvas, without creating the
// database when there is none yet.
func printBanner() {
	dir, cfg, logger := loadConfig()
	info := &cli.BannerInfo{Canvas: cfg.Canvas}
	if _, err := os.Stat(cfg.DatabasePath(dir)); err == nil {
		if st, err := store.Open(cfg.DatabasePath(dir), logger); err == nil {
			if c, err := st.Load(context.Background(), cfg.Canvas); err == nil {
				info.Components = builder.Count(c.Components)
			}
			info.Database = cfg.Database
			st.Close()
		}
	}
	cli.PrintBanner(os.Stdout, version.Version, info)
}

// fail prints msg as an error and exits.
func fail(msg string) {
	fmt.Fprintln(os.Stderr, cli.Error(msg))
	os.Exit(1)
}

// usage prints a usage line and exits.
func usage(line string) {
	fmt.Fprintln(os.Stderr, "Usage: revui "+line)
	os.Exit(1)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func printUsage() {
	fmt.Print(`revui — build UI component trees from the terminal and export them as code.

Usage:
  revui [--canvas name] [--no-color] <command> [args]

Project:
  init [template]              Create .revui/ and the canvas (optionally from a template)
  canvases                     List saved canvases
  components [category]        List component types
  templates                    List templates

Editing:
  tree [--json]                Show the component tree
  add <type> [--parent id] [--index n]
                               Add a component with default props
  update <id> key=value...     Set props (numbers and true/false are typed)
  rename <id> <name>           Change a component's label
  lock|unlock <id>             Pin a component on the canvas
  hide|show <id>               Toggle canvas visibility
  delete <id>                  Delete a component and its children
  move <id> <parent|root> <index>
                               Move a component to a drop index
  duplicate <id>               Copy a component with fresh ids
  undo, redo                   Step through edit history
  template <id>                Append a template to the canvas
  import <file.json>           Replace the tree with a JSON export
  drop <type|id> <x> <y>       Drop at canvas coordinates via drop zones
  clear                        Remove every component

Output:
  check [file.json] [--fix]    Validate the canvas or a JSON tree, repairing
                               what can be fixed safely with --fix
  export [--format f] [--framework f] [--styling s] [--ts|--no-ts]
         [--no-imports] [--name N] [--out file] [--watch]
                               Generate code, factory config or JSON

Ids may be shortened to any unique prefix, as shown by 'revui tree'.

Flags:
  --canvas <name>   Canvas to edit (default from config, or REVUI_CANVAS)
  --no-color        Disable colored output
  --version, -v     Print the version
  --help, -h        Show this help message
`)
}
