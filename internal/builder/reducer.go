package builder

import (
	"strings"

	"github.com/revolutionary-ui/revui/internal/registry"
)

// Reduce applies a to s and returns the resulting state. s is never
// modified; when the action does not apply, s itself is returned.
func Reduce(s *State, a Action) *State {
	switch a := a.(type) {
	case Add:
		return add(s, a)
	case Update:
		return update(s, a)
	case Rename:
		return editNode(s, a.ID, func(n *Node) bool {
			if n.Name == a.Name {
				return false
			}
			n.Name = a.Name
			return true
		})
	case SetLocked:
		return editNode(s, a.ID, func(n *Node) bool {
			if n.Locked == a.Locked {
				return false
			}
			n.Locked = a.Locked
			return true
		})
	case SetVisible:
		return editNode(s, a.ID, func(n *Node) bool {
			if n.IsVisible() == a.Visible {
				return false
			}
			v := a.Visible
			n.Visible = &v
			return true
		})
	case Delete:
		return remove(s, a)
	case Move:
		return move(s, a)
	case Duplicate:
		return duplicate(s, a)
	case Select:
		if Find(s.Components, a.ID) == nil {
			return s
		}
		next := s.clone()
		next.SelectedID = a.ID
		return next
	case ClearSelection:
		if s.SelectedID == "" {
			return s
		}
		next := s.clone()
		next.SelectedID = ""
		return next
	case Hover:
		if a.ID != "" && Find(s.Components, a.ID) == nil {
			return s
		}
		next := s.clone()
		next.HoveredID = a.ID
		return next
	case SetDragged:
		next := s.clone()
		if a.Item != nil {
			item := *a.Item
			next.Dragged = &item
		} else {
			next.Dragged = nil
		}
		return next
	case SetDropZones:
		next := s.clone()
		next.DropZones = append([]DropZone(nil), a.Zones...)
		return next
	case UpdateSettings:
		next := s.clone()
		next.Settings = a.Settings
		return next
	case Undo:
		return undo(s)
	case Redo:
		return redo(s)
	case LoadTemplate:
		if len(a.Components) == 0 {
			return s
		}
		tree := CloneTree(s.Components)
		for _, n := range a.Components {
			tree = append(tree, n.CloneFresh())
		}
		return commit(s, tree)
	case Import:
		return commit(s, importTree(a.Components))
	case Clear:
		if len(s.Components) == 0 {
			return s
		}
		return commit(s, []*Node{})
	}
	return s
}

// ReduceAll folds actions over s in order.
func ReduceAll(s *State, actions ...Action) *State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func add(s *State, a Add) *State {
	def := registry.Get(a.Type)
	if def == nil {
		return s
	}
	if a.ParentID != "" {
		parent := Find(s.Components, a.ParentID)
		if parent == nil || !registry.CanAcceptChild(parent.Type, def.Type) {
			return s
		}
	}

	node := &Node{
		ID:       NewID(),
		Type:     def.Type,
		Name:     def.Name,
		Props:    def.DefaultProps.Clone(),
		Children: []*Node{},
	}

	tree := CloneTree(s.Components)
	index := len(siblingsOf(tree, a.ParentID))
	if a.Index != nil {
		index = *a.Index
	}
	tree = insert(tree, a.ParentID, index, node)

	next := commit(s, tree)
	next.SelectedID = node.ID
	return next
}

func update(s *State, a Update) *State {
	return editNode(s, a.ID, func(n *Node) bool {
		merged := n.Props.Merge(a.Props)
		if merged.Equal(n.Props) {
			return false
		}
		n.Props = merged
		return true
	})
}

// editNode clones the tree, applies edit to the copy of the node with id and
// commits when edit reports a change.
func editNode(s *State, id string, edit func(n *Node) bool) *State {
	if Find(s.Components, id) == nil {
		return s
	}
	tree := CloneTree(s.Components)
	if !edit(Find(tree, id)) {
		return s
	}
	return commit(s, tree)
}

func remove(s *State, a Delete) *State {
	if Find(s.Components, a.ID) == nil {
		return s
	}
	tree, _ := detach(CloneTree(s.Components), a.ID)
	next := commit(s, tree)
	dropStaleRefs(next)
	return next
}

func move(s *State, a Move) *State {
	node := Find(s.Components, a.ID)
	if node == nil {
		return s
	}
	if a.ParentID != "" {
		parent := Find(s.Components, a.ParentID)
		if parent == nil || Contains(node, a.ParentID) || !registry.CanAcceptChild(parent.Type, node.Type) {
			return s
		}
	}

	oldParent, oldIndex, _ := Locate(s.Components, a.ID)
	oldParentID := ""
	if oldParent != nil {
		oldParentID = oldParent.ID
	}

	index := clamp(a.Index, len(siblingsOf(s.Components, a.ParentID)))
	if oldParentID == a.ParentID {
		if index > oldIndex {
			index--
		}
		if index == oldIndex {
			return s
		}
	}

	tree, detached := detach(CloneTree(s.Components), a.ID)
	tree = insert(tree, a.ParentID, index, detached)
	return commit(s, tree)
}

func duplicate(s *State, a Duplicate) *State {
	parent, index, ok := Locate(s.Components, a.ID)
	if !ok {
		return s
	}
	parentID := ""
	if parent != nil {
		parentID = parent.ID
	}

	tree := CloneTree(s.Components)
	clone := Find(tree, a.ID).CloneFresh()
	clone.Name = strings.TrimSpace(clone.Name + " Copy")
	clone.Selected = false
	tree = insert(tree, parentID, index+1, clone)

	next := commit(s, tree)
	next.SelectedID = clone.ID
	return next
}

func undo(s *State) *State {
	h := s.History
	if !h.CanUndo() {
		return s
	}
	last := len(h.Past) - 1
	prev := h.Past[last]

	future := make([][]*Node, 0, len(h.Future)+1)
	future = append(future, s.Components)
	future = append(future, h.Future...)

	next := s.clone()
	next.Components = prev
	next.History = History{
		Past:    append([][]*Node(nil), h.Past[:last]...),
		Present: prev,
		Future:  future,
	}
	dropStaleRefs(next)
	return next
}

func redo(s *State) *State {
	h := s.History
	if !h.CanRedo() {
		return s
	}
	following := h.Future[0]

	past := make([][]*Node, 0, len(h.Past)+1)
	past = append(past, h.Past...)
	past = append(past, s.Components)

	next := s.clone()
	next.Components = following
	next.History = History{
		Past:    past,
		Present: following,
		Future:  append([][]*Node(nil), h.Future[1:]...),
	}
	dropStaleRefs(next)
	return next
}

// commit records s.Components in the past and makes tree the present.
func commit(s *State, tree []*Node) *State {
	past := make([][]*Node, 0, len(s.History.Past)+1)
	past = append(past, s.History.Past...)
	past = append(past, s.Components)
	if len(past) > MaxHistory {
		past = past[len(past)-MaxHistory:]
	}

	next := s.clone()
	next.Components = tree
	next.History = History{Past: past, Present: tree}
	return next
}

// dropStaleRefs clears selection and hover when their node is gone.
func dropStaleRefs(s *State) {
	if s.SelectedID != "" && Find(s.Components, s.SelectedID) == nil {
		s.SelectedID = ""
	}
	if s.HoveredID != "" && Find(s.Components, s.HoveredID) == nil {
		s.HoveredID = ""
	}
}

// importTree copies nodes, keeping ids that are present and unique and
// generating the rest.
func importTree(nodes []*Node) []*Node {
	tree := CloneTree(nodes)
	seen := make(map[string]bool)
	Walk(tree, func(n, _ *Node, _ int) bool {
		if n.ID == "" || seen[n.ID] {
			n.ID = NewID()
		}
		seen[n.ID] = true
		n.Selected = false
		return true
	})
	return tree
}

// siblingsOf returns the children of parentID, or the root list for "".
func siblingsOf(tree []*Node, parentID string) []*Node {
	if parentID == "" {
		return tree
	}
	if p := Find(tree, parentID); p != nil {
		return p.Children
	}
	return nil
}

// insert places n at index among the children of parentID (root for "").
// tree must be a private copy.
func insert(tree []*Node, parentID string, index int, n *Node) []*Node {
	if parentID == "" {
		return insertAt(tree, index, n)
	}
	p := Find(tree, parentID)
	p.Children = insertAt(p.Children, index, n)
	return tree
}

func insertAt(list []*Node, index int, n *Node) []*Node {
	index = clamp(index, len(list))
	out := make([]*Node, 0, len(list)+1)
	out = append(out, list[:index]...)
	out = append(out, n)
	out = append(out, list[index:]...)
	return out
}

// detach removes the node with id from a private copy of the tree and
// returns the pruned tree and the removed node.
func detach(tree []*Node, id string) ([]*Node, *Node) {
	for i, n := range tree {
		if n.ID == id {
			out := make([]*Node, 0, len(tree)-1)
			out = append(out, tree[:i]...)
			out = append(out, tree[i+1:]...)
			return out, n
		}
	}
	for _, n := range tree {
		children, removed := detach(n.Children, id)
		if removed != nil {
			n.Children = children
			return tree, removed
		}
	}
	return tree, nil
}

// clamp bounds an insertion index to [0, n]; negative means "append".
func clamp(index, n int) int {
	if index < 0 || index > n {
		return n
	}
	return index
}
