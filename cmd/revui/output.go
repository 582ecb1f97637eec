package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/revolutionary-ui/revui/internal/analyzer"
	"github.com/revolutionary-ui/revui/internal/cli"
	"github.com/revolutionary-ui/revui/internal/export"
	"github.com/revolutionary-ui/revui/internal/fixer"
	"github.com/revolutionary-ui/revui/internal/session"
	"github.com/revolutionary-ui/revui/internal/watch"
)

// ── check ──

func cmdCheck(args []string) {
	fix := false
	var file string
	for _, a := range args {
		switch {
		case a == "--fix":
			fix = true
		case file == "" && !strings.HasPrefix(a, "-"):
			file = a
		default:
			fail(fmt.Sprintf("Unknown option: %s", a))
		}
	}

	if file != "" {
		checkFile(file, fix)
		return
	}

	p := openProject()
	defer p.close()

	if fix {
		res := p.sess.Repair()
		if res.Changed() {
			p.save()
		}
		fixer.PrintResult(os.Stdout, res, p.sess.Name())
		if res.Remaining.HasErrors() {
			p.close()
			os.Exit(1)
		}
		return
	}

	ds := p.sess.Analyze()
	cli.PrintDiagnostics(os.Stdout, ds)
	if ds.HasErrors() {
		p.close()
		os.Exit(1)
	}
}

// checkFile validates a JSON tree on disk, repairing it in place with fix.
func checkFile(file string, fix bool) {
	if fix {
		res, err := fixer.RepairFile(file)
		if err != nil {
			fail(err.Error())
		}
		if err := fixer.Apply(file, res); err != nil {
			fail(err.Error())
		}
		fixer.PrintResult(os.Stdout, res, file)
		if res.Changed() {
			fmt.Println(cli.Muted(fmt.Sprintf("Original saved as %s.bak", file)))
		}
		if res.Remaining.HasErrors() {
			os.Exit(1)
		}
		return
	}

	data, err := os.ReadFile(file)
	if err != nil {
		fail(fmt.Sprintf("Error reading %s: %v", file, err))
	}
	nodes, err := export.Parse(data)
	if err != nil {
		fail(fmt.Sprintf("Error in %s: %v", file, err))
	}
	ds := analyzer.Analyze(nodes, file)
	cli.PrintDiagnostics(os.Stdout, ds)
	if ds.HasErrors() {
		os.Exit(1)
	}
}

// ── export ──

type exportFlags struct {
	opts  export.Options
	out   string
	watch bool
}

func parseExportFlags(args []string, defaults export.Options) exportFlags {
	f := exportFlags{opts: defaults}
	value := func(i int) string {
		if i+1 >= len(args) {
			fail(fmt.Sprintf("%s needs a value", args[i]))
		}
		return args[i+1]
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--format":
			f.opts.Format = export.Format(value(i))
			i++
		case "--framework":
			f.opts.Framework = export.Framework(value(i))
			i++
		case "--styling":
			f.opts.Styling = export.Styling(value(i))
			i++
		case "--name":
			f.opts.ComponentName = value(i)
			i++
		case "--out", "-o":
			f.out = value(i)
			i++
		case "--ts":
			f.opts.TypeScript = true
		case "--no-ts":
			f.opts.TypeScript = false
		case "--no-imports":
			f.opts.IncludeImports = false
		case "--no-prettier":
			f.opts.Prettier = false
		case "--watch":
			f.watch = true
		default:
			fail(fmt.Sprintf("Unknown option: %s", args[i]))
		}
	}
	if err := f.opts.Validate(); err != nil {
		fail(err.Error())
	}
	return f
}

func cmdExport(args []string) {
	p := openProject()
	defer p.close()
	f := parseExportFlags(args, p.cfg.Export)

	if err := writeExport(p.sess, f); err != nil {
		p.close()
		fail(err.Error())
	}
	if f.out != "" {
		fmt.Fprintln(os.Stderr, cli.Success(fmt.Sprintf("Wrote %s", f.out)))
	}
	if !f.watch {
		return
	}
	if err := watchExport(p, f); err != nil {
		p.close()
		fail(err.Error())
	}
}

// writeExport renders the session and writes it to f.out or stdout.
func writeExport(s *session.Session, f exportFlags) error {
	code, err := s.Export(f.opts)
	if err != nil {
		return err
	}
	if f.out == "" {
		_, err := fmt.Print(code)
		return err
	}
	if err := os.WriteFile(f.out, []byte(code), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", f.out, err)
	}
	return nil
}

// watchExport re-exports whenever the canvas database changes, for example
// when another revui process or the MCP server edits the canvas.
func watchExport(p *project, f exportFlags) error {
	db := p.cfg.DatabasePath(p.dir)
	w, err := watch.New([]string{db}, watch.Options{Debounce: p.cfg.Watch.Debounce, Logger: p.log})
	if err != nil {
		return err
	}
	defer w.Close()

	// Raw mode for ESC is only safe when the export does not go to the terminal.
	in := os.Stdin
	if f.out == "" {
		in = nil
	}
	status := func(msg string) { fmt.Fprint(os.Stderr, msg+"\r\n") }

	status(cli.Info(fmt.Sprintf("Watching canvas %s... (Ctrl+C to stop)", p.sess.Name())))
	err = cli.RunUntilInterrupt(context.Background(), in, func(ctx context.Context) error {
		return w.Run(ctx, func(string) error {
			sess, err := session.Load(ctx, p.store, sessionOptions(p.cfg, p.log))
			if err != nil {
				return err
			}
			now := time.Now().Format("15:04:05")
			if err := writeExport(sess, f); err != nil {
				status(cli.Error(fmt.Sprintf("%s Export failed: %v", now, err)))
				return nil
			}
			if f.out != "" {
				status(cli.Success(fmt.Sprintf("%s Rewrote %s", now, f.out)))
			}
			return nil
		})
	})
	cli.Stopped(os.Stderr, "watching")
	return err
}
