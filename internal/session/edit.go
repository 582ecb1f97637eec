package session

import (
	"errors"
	"fmt"

	"github.com/revolutionary-ui/revui/internal/builder"
	cerr "github.com/revolutionary-ui/revui/internal/errors"
	"github.com/revolutionary-ui/revui/internal/props"
	"github.com/revolutionary-ui/revui/internal/registry"
)

// Edits below wrap single actions for command-style callers. The reducer
// ignores an action it cannot apply; these say why instead.

var (
	ErrUnknownType = errors.New("unknown component type")
	ErrNotAllowed  = errors.New("not allowed here")
	ErrNoChange    = errors.New("nothing changed")
)

// suggestThreshold matches the analyzer's bar for "Did you mean" hints.
const suggestThreshold = 0.6

// Add inserts a new component of typ under parentID (root when empty) and
// returns its id.
func (s *Session) Add(typ, parentID string, index *int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def := registry.Get(typ)
	if def == nil {
		return "", unknownType(typ)
	}
	if parentID != "" {
		parent := builder.Find(s.state.Components, parentID)
		if parent == nil {
			return "", fmt.Errorf("%w: %s", ErrUnknownNode, parentID)
		}
		if !registry.CanAcceptChild(parent.Type, typ) {
			return "", refused(parent.Type, typ)
		}
	}
	if !s.dispatchLocked(builder.Add{Type: typ, ParentID: parentID, Index: index}) {
		return "", ErrNoChange
	}
	return s.state.SelectedID, nil
}

// Update merges p into the props of node id.
func (s *Session) Update(id string, p props.Props) error {
	return s.edit(id, builder.Update{ID: id, Props: p})
}

// Rename relabels node id.
func (s *Session) Rename(id, name string) error {
	return s.edit(id, builder.Rename{ID: id, Name: name})
}

// Delete removes node id and its subtree.
func (s *Session) Delete(id string) error {
	return s.edit(id, builder.Delete{ID: id})
}

// Duplicate clones node id next to itself and returns the clone's id.
func (s *Session) Duplicate(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if builder.Find(s.state.Components, id) == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	s.dispatchLocked(builder.Duplicate{ID: id})
	return s.state.SelectedID, nil
}

// Move reinserts node id under parentID (root when empty) at drop index.
func (s *Session) Move(id, parentID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	node := builder.Find(s.state.Components, id)
	if node == nil {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	if parentID != "" {
		parent := builder.Find(s.state.Components, parentID)
		if parent == nil {
			return fmt.Errorf("%w: %s", ErrUnknownNode, parentID)
		}
		if builder.Contains(node, parentID) {
			return fmt.Errorf("%w: %s cannot move inside itself", ErrNotAllowed, node.Type)
		}
		if !registry.CanAcceptChild(parent.Type, node.Type) {
			return refused(parent.Type, node.Type)
		}
	}
	if !s.dispatchLocked(builder.Move{ID: id, ParentID: parentID, Index: index}) {
		return ErrNoChange
	}
	return nil
}

// Undo steps back one edit. It reports false when there is nothing to undo.
func (s *Session) Undo() bool { return s.Dispatch(builder.Undo{}) }

// Redo re-applies an undone edit. It reports false when there is nothing to redo.
func (s *Session) Redo() bool { return s.Dispatch(builder.Redo{}) }

func (s *Session) edit(id string, a builder.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if builder.Find(s.state.Components, id) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	if !s.dispatchLocked(a) {
		return ErrNoChange
	}
	return nil
}

func unknownType(typ string) error {
	if hint := cerr.DidYouMean(typ, registry.Types(), suggestThreshold); hint != "" {
		return fmt.Errorf("%w %q. %s", ErrUnknownType, typ, hint)
	}
	return fmt.Errorf("%w %q", ErrUnknownType, typ)
}

func refused(parentType, childType string) error {
	return fmt.Errorf("%w: %s does not accept %s", ErrNotAllowed, parentType, childType)
}
