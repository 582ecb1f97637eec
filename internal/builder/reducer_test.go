package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revolutionary-ui/revui/internal/props"
	"github.com/revolutionary-ui/revui/internal/registry"
)

func empty() *State { return New(DefaultSettings()) }

// addAt returns the state after adding typ under parent, and the new node's id.
func addAt(t *testing.T, s *State, typ, parent string) (*State, string) {
	t.Helper()
	next := Reduce(s, Add{Type: typ, ParentID: parent})
	require.NotSame(t, s, next, "Add(%s) under %q was rejected", typ, parent)
	return next, next.SelectedID
}

// ── Add ──

func TestAddUsesRegistryDefaults(t *testing.T) {
	s, id := addAt(t, empty(), "heading", "")

	require.Len(t, s.Components, 1)
	n := s.Components[0]
	assert.Equal(t, id, n.ID)
	assert.Equal(t, "heading", n.Type)
	assert.Equal(t, "Heading", n.Name)
	assert.Equal(t, registry.Get("heading").DefaultProps, n.Props)
	assert.NotNil(t, n.Children)
	assert.Equal(t, id, s.SelectedID)
}

func TestAddTwiceGivesIdenticalPropsDistinctIDs(t *testing.T) {
	s, a := addAt(t, empty(), "button", "")
	s, b := addAt(t, s, "button", "")

	require.Len(t, s.Components, 2)
	assert.NotEqual(t, a, b)
	assert.Equal(t, s.Components[0].Props, s.Components[1].Props)
}

func TestAddDefaultsAreNotShared(t *testing.T) {
	s, id := addAt(t, empty(), "button", "")
	s = Reduce(s, Update{ID: id, Props: props.Props{"text": props.String("Changed")}})
	assert.Equal(t, "Click me", registry.Get("button").DefaultProps.Text("text"))
}

func TestAddUnknownTypeIsNoop(t *testing.T) {
	s := empty()
	assert.Same(t, s, Reduce(s, Add{Type: "carousel"}))
}

func TestAddUnknownParentIsNoop(t *testing.T) {
	s := empty()
	assert.Same(t, s, Reduce(s, Add{Type: "button", ParentID: "missing"}))
}

func TestAddAtIndex(t *testing.T) {
	s, first := addAt(t, empty(), "text", "")
	s, _ = addAt(t, s, "text", "")
	s = Reduce(s, Add{Type: "heading", Index: At(0)})

	require.Len(t, s.Components, 3)
	assert.Equal(t, "heading", s.Components[0].Type)
	assert.Equal(t, first, s.Components[1].ID)
}

func TestAddIndexOutOfRangeAppends(t *testing.T) {
	s, _ := addAt(t, empty(), "text", "")
	s = Reduce(s, Add{Type: "heading", Index: At(99)})
	assert.Equal(t, "heading", s.Components[1].Type)
}

func TestNonAcceptingParentsNeverGainChildren(t *testing.T) {
	for _, parentType := range registry.Types() {
		if registry.Get(parentType).AcceptsChildren {
			continue
		}
		s, parentID := addAt(t, empty(), parentType, "")
		for _, childType := range registry.Types() {
			s = Reduce(s, Add{Type: childType, ParentID: parentID})
		}
		assert.Empty(t, Find(s.Components, parentID).Children, "%s gained children", parentType)
	}
}

func TestAddRespectsChildTypes(t *testing.T) {
	s, list := addAt(t, empty(), "list", "")
	assert.Same(t, s, Reduce(s, Add{Type: "button", ParentID: list}))

	s, _ = addAt(t, s, "list-item", list)
	assert.Len(t, Find(s.Components, list).Children, 1)
}

// ── Update ──

func TestUpdateMergesProps(t *testing.T) {
	s, id := addAt(t, empty(), "heading", "")
	s = Reduce(s, Update{ID: id, Props: props.Props{"text": props.String("Hi")}})

	n := Find(s.Components, id)
	assert.Equal(t, "Hi", n.Props.Text("text"))
	assert.Equal(t, "32px", n.Props.Text("fontSize"), "untouched props survive")
}

func TestUpdateMissingIsNoop(t *testing.T) {
	s, _ := addAt(t, empty(), "heading", "")
	assert.Same(t, s, Reduce(s, Update{ID: "nope", Props: props.Props{"text": props.String("x")}}))
}

func TestUpdateWithoutChangeRecordsNoHistory(t *testing.T) {
	s, id := addAt(t, empty(), "heading", "")
	assert.Same(t, s, Reduce(s, Update{ID: id, Props: props.Props{"text": props.String("Heading")}}))
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s, id := addAt(t, empty(), "heading", "")
	before := CloneTree(s.Components)

	_ = Reduce(s, Update{ID: id, Props: props.Props{"text": props.String("Changed")}})
	_ = Reduce(s, Rename{ID: id, Name: "Title"})
	_ = Reduce(s, Delete{ID: id})

	assert.Equal(t, before, s.Components)
}

// ── Delete ──

func TestDeleteRemovesSubtreeAndSelection(t *testing.T) {
	s, outer := addAt(t, empty(), "container", "")
	s, inner := addAt(t, s, "button", outer)
	s = Reduce(s, Select{ID: inner})
	s = Reduce(s, Hover{ID: inner})

	s = Reduce(s, Delete{ID: outer})
	assert.Empty(t, s.Components)
	assert.Empty(t, s.SelectedID)
	assert.Empty(t, s.HoveredID)
}

func TestDeleteKeepsUnrelatedSelection(t *testing.T) {
	s, a := addAt(t, empty(), "text", "")
	s, b := addAt(t, s, "text", "")
	s = Reduce(s, Select{ID: a})
	s = Reduce(s, Delete{ID: b})
	assert.Equal(t, a, s.SelectedID)
}

func TestDeleteMissingIsNoop(t *testing.T) {
	s, _ := addAt(t, empty(), "text", "")
	assert.Same(t, s, Reduce(s, Delete{ID: "nope"}))
}

// ── Move ──

func threeTexts(t *testing.T) (*State, []string) {
	s := empty()
	var ids []string
	for i := 0; i < 3; i++ {
		var id string
		s, id = addAt(t, s, "text", "")
		ids = append(ids, id)
	}
	return s, ids
}

func TestMoveReorderForward(t *testing.T) {
	s, ids := threeTexts(t)
	// Drop zone index 3 is "after the last child".
	s = Reduce(s, Move{ID: ids[0], Index: 3})
	assert.Equal(t, []string{ids[1], ids[2], ids[0]}, IDs(s.Components))
}

func TestMoveReorderBackward(t *testing.T) {
	s, ids := threeTexts(t)
	s = Reduce(s, Move{ID: ids[2], Index: 0})
	assert.Equal(t, []string{ids[2], ids[0], ids[1]}, IDs(s.Components))
}

func TestMoveOntoSelfPositionIsNoop(t *testing.T) {
	s, ids := threeTexts(t)
	assert.Same(t, s, Reduce(s, Move{ID: ids[1], Index: 1}))
	assert.Same(t, s, Reduce(s, Move{ID: ids[1], Index: 2}))
}

func TestMoveIntoContainer(t *testing.T) {
	s, box := addAt(t, empty(), "container", "")
	s, btn := addAt(t, s, "button", "")

	s = Reduce(s, Move{ID: btn, ParentID: box, Index: 0})
	require.Len(t, s.Components, 1)
	require.Len(t, s.Components[0].Children, 1)
	assert.Equal(t, btn, s.Components[0].Children[0].ID)
	assert.Equal(t, 2, Count(s.Components), "moved subtree is neither lost nor duplicated")
}

func TestMoveUnknownParentLeavesTreeUnchanged(t *testing.T) {
	s, ids := threeTexts(t)
	next := Reduce(s, Move{ID: ids[0], ParentID: "missing", Index: 0})
	assert.Same(t, s, next)
	assert.Equal(t, ids, IDs(next.Components))
}

func TestMoveIntoOwnSubtreeRejected(t *testing.T) {
	s, outer := addAt(t, empty(), "container", "")
	s, inner := addAt(t, s, "container", outer)

	assert.Same(t, s, Reduce(s, Move{ID: outer, ParentID: inner, Index: 0}))
	assert.Same(t, s, Reduce(s, Move{ID: outer, ParentID: outer, Index: 0}))
}

func TestMoveIntoNonAcceptingParentRejected(t *testing.T) {
	s, btn := addAt(t, empty(), "button", "")
	s, txt := addAt(t, s, "text", "")
	assert.Same(t, s, Reduce(s, Move{ID: txt, ParentID: btn, Index: 0}))
}

func TestMoveOutToRoot(t *testing.T) {
	s, box := addAt(t, empty(), "container", "")
	s, btn := addAt(t, s, "button", box)

	s = Reduce(s, Move{ID: btn, ParentID: "", Index: 0})
	assert.Equal(t, []string{btn, box}, IDs(s.Components))
	assert.Empty(t, Find(s.Components, box).Children)
}

// ── Duplicate ──

func TestDuplicateDeepCopiesWithFreshIDs(t *testing.T) {
	s, box := addAt(t, empty(), "container", "")
	s, inner := addAt(t, s, "card", box)
	s, _ = addAt(t, s, "heading", inner)
	s, _ = addAt(t, s, "button", inner)
	s, _ = addAt(t, s, "text", "")

	original := Find(s.Components, box)
	descendants := Count(original.Children)
	require.Equal(t, 3, descendants)

	s = Reduce(s, Duplicate{ID: box})
	require.Len(t, s.Components, 3)

	clone := s.Components[1]
	assert.Equal(t, "Container Copy", clone.Name)
	assert.Equal(t, descendants, Count(clone.Children))
	assert.Equal(t, clone.ID, s.SelectedID)
	assert.True(t, Equal(original.Children, clone.Children))

	originalIDs := make(map[string]bool)
	for _, id := range IDs([]*Node{original}) {
		originalIDs[id] = true
	}
	cloneIDs := IDs([]*Node{clone})
	seen := make(map[string]bool)
	for _, id := range cloneIDs {
		assert.False(t, originalIDs[id], "clone reuses id %s", id)
		assert.False(t, seen[id], "clone has duplicate id %s", id)
		seen[id] = true
	}
}

func TestDuplicateNested(t *testing.T) {
	s, box := addAt(t, empty(), "container", "")
	s, a := addAt(t, s, "text", box)
	s, b := addAt(t, s, "text", box)

	s = Reduce(s, Duplicate{ID: a})
	children := Find(s.Components, box).Children
	require.Len(t, children, 3)
	assert.Equal(t, a, children[0].ID)
	assert.Equal(t, "Text Copy", children[1].Name)
	assert.Equal(t, b, children[2].ID)
}

func TestDuplicateMissingIsNoop(t *testing.T) {
	s := empty()
	assert.Same(t, s, Reduce(s, Duplicate{ID: "nope"}))
}

// ── Selection ──

func TestSelectionIsNotHistoried(t *testing.T) {
	s, id := addAt(t, empty(), "text", "")
	past := len(s.History.Past)

	s = Reduce(s, ClearSelection{})
	s = Reduce(s, Select{ID: id})
	s = Reduce(s, Hover{ID: id})
	s = Reduce(s, Hover{})

	assert.Equal(t, past, len(s.History.Past))
	assert.Equal(t, id, s.SelectedID)
	assert.Empty(t, s.HoveredID)
}

func TestSelectUnknownIsNoop(t *testing.T) {
	s := empty()
	assert.Same(t, s, Reduce(s, Select{ID: "nope"}))
	assert.Same(t, s, Reduce(s, Hover{ID: "nope"}))
}

// ── History ──

func TestHistoryIsBounded(t *testing.T) {
	s := empty()
	for i := 0; i < 60; i++ {
		s = Reduce(s, Add{Type: "text"})
	}
	assert.Len(t, s.Components, 60)
	assert.LessOrEqual(t, len(s.History.Past), MaxHistory)
	assert.Equal(t, MaxHistory, len(s.History.Past))
}

func TestUndoRedoInverse(t *testing.T) {
	s, _ := addAt(t, empty(), "heading", "")
	before := s.Components

	added := Reduce(s, Add{Type: "button"})
	after := added.Components

	undone := Reduce(added, Undo{})
	assert.Equal(t, before, undone.Components)
	assert.Equal(t, before, undone.History.Present)

	redone := Reduce(undone, Redo{})
	assert.Equal(t, after, redone.Components)
	assert.False(t, redone.History.CanRedo())
}

func TestUndoClearsStaleSelection(t *testing.T) {
	s, id := addAt(t, empty(), "heading", "")
	require.Equal(t, id, s.SelectedID)
	s = Reduce(s, Undo{})
	assert.Empty(t, s.SelectedID)
}

func TestUndoRedoAtBoundariesAreNoops(t *testing.T) {
	s := empty()
	assert.Same(t, s, Reduce(s, Undo{}))
	assert.Same(t, s, Reduce(s, Redo{}))
}

func TestMutationClearsFuture(t *testing.T) {
	s, _ := addAt(t, empty(), "heading", "")
	s = Reduce(s, Undo{})
	require.True(t, s.History.CanRedo())

	s = Reduce(s, Add{Type: "text"})
	assert.False(t, s.History.CanRedo())
}

// ── Templates, import, clear ──

func TestLoadTemplateAppendsFreshCopies(t *testing.T) {
	tpl := []*Node{{ID: "tpl-1", Type: "section", Name: "Hero", Props: props.Props{}, Children: []*Node{
		{ID: "tpl-2", Type: "heading", Name: "Title", Props: props.Props{"text": props.String("Hello")}, Children: []*Node{}},
	}}}

	s, _ := addAt(t, empty(), "text", "")
	s = Reduce(s, LoadTemplate{Components: tpl})
	s = Reduce(s, LoadTemplate{Components: tpl})

	require.Len(t, s.Components, 3)
	assert.Nil(t, Find(s.Components, "tpl-1"))
	assert.NotEqual(t, s.Components[1].ID, s.Components[2].ID)
	assert.True(t, Equal(tpl, s.Components[1:2]))
	assert.Equal(t, "tpl-1", tpl[0].ID, "template source is untouched")
}

func TestImportKeepsUniqueIDs(t *testing.T) {
	in := []*Node{
		{ID: "a", Type: "text", Props: props.Props{}},
		{ID: "a", Type: "text", Props: props.Props{}},
		{Type: "text", Props: props.Props{}},
	}
	s := Reduce(empty(), Import{Components: in})

	ids := IDs(s.Components)
	require.Len(t, ids, 3)
	assert.Equal(t, "a", ids[0])
	assert.NotEqual(t, "a", ids[1])
	assert.NotEmpty(t, ids[2])
	assert.NotEqual(t, ids[1], ids[2])
	assert.True(t, s.History.CanUndo())
}

func TestClear(t *testing.T) {
	s, _ := addAt(t, empty(), "text", "")
	s = Reduce(s, Clear{})
	assert.Empty(t, s.Components)
	assert.Empty(t, s.SelectedID)
	assert.Same(t, s, Reduce(s, Clear{}))

	s = Reduce(s, Undo{})
	assert.Len(t, s.Components, 1)
}

// ── Presentation edits ──

func TestRenameLockVisibility(t *testing.T) {
	s, id := addAt(t, empty(), "card", "")
	s = Reduce(s, Rename{ID: id, Name: "Pricing"})
	s = Reduce(s, SetLocked{ID: id, Locked: true})
	s = Reduce(s, SetVisible{ID: id, Visible: false})

	n := Find(s.Components, id)
	assert.Equal(t, "Pricing", n.Name)
	assert.True(t, n.Locked)
	assert.False(t, n.IsVisible())
	assert.Same(t, s, Reduce(s, SetVisible{ID: id, Visible: false}))
}

func TestDragStateIsNotHistoried(t *testing.T) {
	s := empty()
	item := &DragItem{Type: "button", IsNew: true}
	s = Reduce(s, SetDragged{Item: item})
	s = Reduce(s, SetDropZones{Zones: []DropZone{{ID: "root:0"}}})
	s = Reduce(s, UpdateSettings{Settings: Settings{SnapToGrid: true, GridSize: 10}})

	require.NotNil(t, s.Dragged)
	assert.NotSame(t, item, s.Dragged)
	assert.Len(t, s.DropZones, 1)
	assert.True(t, s.Settings.SnapToGrid)
	assert.False(t, s.History.CanUndo())
}

func TestRestoreTrimsPast(t *testing.T) {
	past := make([][]*Node, 70)
	s := Restore(nil, past, nil, DefaultSettings())
	assert.Len(t, s.History.Past, MaxHistory)
	assert.NotNil(t, s.Components)
}
