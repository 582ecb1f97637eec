package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/props"
)

func TestAddReturnsNewID(t *testing.T) {
	s := newTest()
	box, err := s.Add("container", "", nil)
	require.NoError(t, err)
	head, err := s.Add("heading", box, nil)
	require.NoError(t, err)

	n := builder.Find(s.Components(), head)
	require.NotNil(t, n)
	assert.Equal(t, "heading", n.Type)
	assert.Equal(t, box, s.Components()[0].ID)

	first, err := s.Add("text", box, builder.At(0))
	require.NoError(t, err)
	assert.Equal(t, first, s.Components()[0].Children[0].ID)
}

func TestAddExplainsRejection(t *testing.T) {
	s := newTest()
	btn, err := s.Add("button", "", nil)
	require.NoError(t, err)

	_, err = s.Add("buton", "", nil)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), `Did you mean "button"?`)

	_, err = s.Add("text", btn, nil)
	assert.ErrorIs(t, err, ErrNotAllowed)
	assert.Contains(t, err.Error(), "button does not accept text")

	_, err = s.Add("text", "missing", nil)
	assert.ErrorIs(t, err, ErrUnknownNode)

	assert.Len(t, s.Components(), 1)
}

func TestUpdateAndRename(t *testing.T) {
	s := newTest()
	id, err := s.Add("heading", "", nil)
	require.NoError(t, err)

	require.NoError(t, s.Update(id, props.Props{"text": props.String("Hi")}))
	assert.Equal(t, "Hi", builder.Find(s.Components(), id).Props.Text("text"))
	assert.ErrorIs(t, s.Update(id, props.Props{"text": props.String("Hi")}), ErrNoChange)

	require.NoError(t, s.Rename(id, "Title"))
	assert.Equal(t, "Title", builder.Find(s.Components(), id).Name)

	assert.ErrorIs(t, s.Rename("missing", "x"), ErrUnknownNode)
}

func TestMoveExplainsRejection(t *testing.T) {
	s := newTest()
	box, _ := s.Add("container", "", nil)
	inner, _ := s.Add("container", box, nil)
	btn, _ := s.Add("button", "", nil)

	err := s.Move(box, inner, 0)
	assert.ErrorIs(t, err, ErrNotAllowed)

	err = s.Move(box, btn, 0)
	assert.ErrorIs(t, err, ErrNotAllowed)

	assert.ErrorIs(t, s.Move("missing", "", 0), ErrUnknownNode)
	assert.ErrorIs(t, s.Move(btn, "missing", 0), ErrUnknownNode)

	require.NoError(t, s.Move(btn, inner, 0))
	assert.Equal(t, btn, s.Components()[0].Children[0].Children[0].ID)
}

func TestDuplicateDeleteUndoRedo(t *testing.T) {
	s := newTest()
	id, _ := s.Add("button", "", nil)

	clone, err := s.Duplicate(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, clone)
	assert.Equal(t, []string{id, clone}, builder.IDs(s.Components()))

	require.NoError(t, s.Delete(id))
	assert.Equal(t, []string{clone}, builder.IDs(s.Components()))

	assert.True(t, s.Undo())
	assert.Len(t, s.Components(), 2)
	assert.True(t, s.Redo())
	assert.Len(t, s.Components(), 1)
	assert.False(t, s.Redo())

	_, err = s.Duplicate("missing")
	assert.ErrorIs(t, err, ErrUnknownNode)
}
