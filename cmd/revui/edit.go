package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/cli"
	"github.com/revolutionary-ui/revui/internal/export"
	"github.com/revolutionary-ui/revui/internal/props"
	"github.com/revolutionary-ui/revui/internal/registry"
	"github.com/revolutionary-ui/revui/internal/session"
	"github.com/revolutionary-ui/revui/internal/templates"
)

// ── tree ──

func cmdTree(args []string) {
	p := openProject()
	defer p.close()

	if len(args) > 0 && args[0] == "--json" {
		out, err := export.JSON(p.sess.Components())
		if err != nil {
			p.close()
			fail(err.Error())
		}
		fmt.Print(out)
		return
	}

	st := p.sess.State()
	cli.PrintTree(os.Stdout, st.Components, cli.TreeOptions{ShortIDs: true, Selected: st.SelectedID})
	n := builder.Count(st.Components)
	fmt.Println(cli.Muted(fmt.Sprintf("%d component%s · canvas %s · undo %d · redo %d",
		n, plural(n), p.sess.Name(), len(st.History.Past), len(st.History.Future))))
}

// ── add ──

func cmdAdd(args []string) {
	if len(args) < 1 {
		usage("add <type> [--parent id] [--index n]")
	}
	typ := args[0]
	var parentRef string
	var index *int
	for i := 1; i < len(args); i++ {
		switch {
		case args[i] == "--parent" && i+1 < len(args):
			parentRef = args[i+1]
			i++
		case args[i] == "--index" && i+1 < len(args):
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 0 {
				fail(fmt.Sprintf("Invalid index %q", args[i+1]))
			}
			index = &n
			i++
		default:
			fail(fmt.Sprintf("Unknown option: %s", args[i]))
		}
	}

	p := openProject()
	defer p.close()

	parent := ""
	if parentRef != "" {
		parent = p.resolveParent(parentRef)
	}
	id, err := p.sess.Add(typ, parent, index)
	if err != nil {
		p.close()
		fail(err.Error())
	}
	p.save()
	fmt.Println(cli.Success(fmt.Sprintf("Added %s %s", registry.Get(typ).Type, shortID(id))))
}

// ── update ──

func cmdUpdate(args []string) {
	if len(args) < 2 {
		usage("update <id> key=value...")
	}
	patch := props.Props{}
	for _, kv := range args[1:] {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			fail(fmt.Sprintf("Expected key=value, got %q", kv))
		}
		patch[k] = props.Parse(v)
	}

	p := openProject()
	defer p.close()

	id := p.resolve(args[0])
	if def := registry.Get(builder.Find(p.sess.Components(), id).Type); def != nil {
		for _, k := range patch.Keys() {
			if err := registry.ValidateProp(def, k, patch[k]); err != nil {
				fmt.Fprintln(os.Stderr, cli.Warn(err.Error()))
			}
		}
	}
	if err := p.sess.Update(id, patch); err != nil {
		if errors.Is(err, session.ErrNoChange) {
			fmt.Println(cli.Info("No change"))
			return
		}
		p.close()
		fail(err.Error())
	}
	p.save()
	fmt.Println(cli.Success(fmt.Sprintf("Updated %s", shortID(id))))
}

// ── rename / lock / show ──

func cmdRename(args []string) {
	if len(args) < 2 {
		usage("rename <id> <name>")
	}
	p := openProject()
	defer p.close()

	id := p.resolve(args[0])
	name := strings.Join(args[1:], " ")
	if err := p.sess.Rename(id, name); err != nil && !errors.Is(err, session.ErrNoChange) {
		p.close()
		fail(err.Error())
	}
	p.save()
	fmt.Println(cli.Success(fmt.Sprintf("Renamed %s to %q", shortID(id), name)))
}

func cmdLock(args []string, locked bool) {
	if len(args) < 1 {
		usage("lock|unlock <id>")
	}
	dispatchOn(args[0], func(id string) builder.Action { return builder.SetLocked{ID: id, Locked: locked} })
}

func cmdShow(args []string, visible bool) {
	if len(args) < 1 {
		usage("hide|show <id>")
	}
	dispatchOn(args[0], func(id string) builder.Action { return builder.SetVisible{ID: id, Visible: visible} })
}

// dispatchOn resolves ref and dispatches the action built for it.
func dispatchOn(ref string, action func(id string) builder.Action) {
	p := openProject()
	defer p.close()

	id := p.resolve(ref)
	a := action(id)
	if !p.sess.Dispatch(a) {
		fmt.Println(cli.Info("No change"))
		return
	}
	p.save()
	fmt.Println(cli.Success(fmt.Sprintf("%s %s", a.Kind(), shortID(id))))
}

// ── delete / move / duplicate ──

func cmdDelete(args []string) {
	if len(args) < 1 {
		usage("delete <id>")
	}
	p := openProject()
	defer p.close()

	id := p.resolve(args[0])
	removed := builder.Count([]*builder.Node{builder.Find(p.sess.Components(), id)})
	if err := p.sess.Delete(id); err != nil {
		p.close()
		fail(err.Error())
	}
	p.save()
	fmt.Println(cli.Success(fmt.Sprintf("Deleted %s (%d component%s)", shortID(id), removed, plural(removed))))
}

func cmdMove(args []string) {
	if len(args) < 3 {
		usage("move <id> <parent|root> <index>")
	}
	index, err := strconv.Atoi(args[2])
	if err != nil || index < 0 {
		fail(fmt.Sprintf("Invalid index %q", args[2]))
	}

	p := openProject()
	defer p.close()

	id := p.resolve(args[0])
	parent := p.resolveParent(args[1])
	if err := p.sess.Move(id, parent, index); err != nil {
		if errors.Is(err, session.ErrNoChange) {
			fmt.Println(cli.Info("No change"))
			return
		}
		p.close()
		fail(err.Error())
	}
	p.save()
	fmt.Println(cli.Success(fmt.Sprintf("Moved %s", shortID(id))))
}

func cmdDuplicate(args []string) {
	if len(args) < 1 {
		usage("duplicate <id>")
	}
	p := openProject()
	defer p.close()

	id := p.resolve(args[0])
	clone, err := p.sess.Duplicate(id)
	if err != nil {
		p.close()
		fail(err.Error())
	}
	p.save()
	fmt.Println(cli.Success(fmt.Sprintf("Duplicated %s as %s", shortID(id), shortID(clone))))
}

// ── undo / redo ──

func cmdUndo() {
	p := openProject()
	defer p.close()
	if !p.sess.Undo() {
		fmt.Println(cli.Info("Nothing to undo"))
		return
	}
	p.save()
	fmt.Println(cli.Success("Undone"))
}

func cmdRedo() {
	p := openProject()
	defer p.close()
	if !p.sess.Redo() {
		fmt.Println(cli.Info("Nothing to redo"))
		return
	}
	p.save()
	fmt.Println(cli.Success("Redone"))
}

// ── template / import / clear ──

func cmdTemplate(args []string) {
	if len(args) < 1 {
		usage("template <id>   (see 'revui templates')")
	}
	p := openProject()
	defer p.close()
	applyTemplate(p, args[0])
	p.save()
}

func applyTemplate(p *project, id string) {
	t := templates.Get(id)
	if t == nil {
		var ids []string
		for _, t := range templates.All() {
			ids = append(ids, t.ID)
		}
		p.close()
		fail(fmt.Sprintf("Unknown template %q. Available: %s", id, strings.Join(ids, ", ")))
	}
	p.sess.Dispatch(builder.LoadTemplate{Components: t.Components})
	n := builder.Count(t.Components)
	fmt.Println(cli.Success(fmt.Sprintf("Added template %s (%d component%s)", t.Name, n, plural(n))))
}

func cmdImport(args []string) {
	if len(args) < 1 {
		usage("import <file.json>")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fail(fmt.Sprintf("Error reading %s: %v", args[0], err))
	}
	nodes, err := export.Parse(data)
	if err != nil {
		fail(fmt.Sprintf("Error in %s: %v", args[0], err))
	}

	p := openProject()
	defer p.close()

	p.sess.Dispatch(builder.Import{Components: nodes})
	p.save()
	n := builder.Count(nodes)
	fmt.Println(cli.Success(fmt.Sprintf("Imported %d component%s from %s", n, plural(n), args[0])))

	if ds := p.sess.Analyze(); len(ds.All()) > 0 {
		fmt.Println()
		cli.PrintDiagnostics(os.Stdout, ds)
	}
}

func cmdClear() {
	p := openProject()
	defer p.close()
	if !p.sess.Dispatch(builder.Clear{}) {
		fmt.Println(cli.Info("Canvas is already empty"))
		return
	}
	p.save()
	fmt.Println(cli.Success("Cleared the canvas (undo restores it)"))
}

// ── drop ──

func cmdDrop(args []string) {
	if len(args) < 3 {
		usage("drop <type|id> <x> <y>")
	}
	x, errX := strconv.ParseFloat(args[1], 64)
	y, errY := strconv.ParseFloat(args[2], 64)
	if errX != nil || errY != nil {
		fail(fmt.Sprintf("Invalid coordinates %s %s", args[1], args[2]))
	}

	p := openProject()
	defer p.close()

	var item builder.DragItem
	if def := registry.Get(args[0]); def != nil {
		item = builder.DragItem{Type: def.Type, IsNew: true}
	} else {
		id := p.resolve(args[0])
		item = builder.DragItem{ID: id, Type: builder.Find(p.sess.Components(), id).Type}
	}

	a, changed, err := p.sess.DropAt(item, builder.Point{X: x, Y: y})
	if err != nil {
		p.close()
		fail(err.Error())
	}
	switch {
	case a == nil:
		fmt.Println(cli.Warn(fmt.Sprintf("No drop zone near (%g, %g) accepts %s", x, y, item.Type)))
	case !changed:
		fmt.Println(cli.Info("No change"))
	default:
		p.save()
		fmt.Println(cli.Success(fmt.Sprintf("Dropped %s (%s)", item.Type, a.Kind())))
	}
}

func shortID(id string) string {
	if len(id) > cli.ShortIDLen {
		return id[:cli.ShortIDLen]
	}
	return id
}
