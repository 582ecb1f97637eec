package builder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revolutionary-ui/revui/internal/props"
)

func sampleTree() []*Node {
	return []*Node{
		{ID: "a", Type: "container", Name: "Outer", Props: props.Props{"padding": props.String("16px")}, Children: []*Node{
			{ID: "b", Type: "heading", Name: "Title", Props: props.Props{"text": props.String("Hi")}, Children: []*Node{}},
			{ID: "c", Type: "flex", Name: "Row", Props: props.Props{}, Children: []*Node{
				{ID: "d", Type: "button", Name: "Go", Props: props.Props{}, Children: []*Node{}},
			}},
		}},
		{ID: "e", Type: "text", Name: "Body", Props: props.Props{}, Children: []*Node{}},
	}
}

func TestWalkOrder(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, IDs(sampleTree()))
	assert.Equal(t, 5, Count(sampleTree()))
}

func TestWalkSkipsChildren(t *testing.T) {
	var seen []string
	Walk(sampleTree(), func(n, _ *Node, _ int) bool {
		seen = append(seen, n.ID)
		return n.ID != "c"
	})
	assert.Equal(t, []string{"a", "b", "c", "e"}, seen)
}

func TestLocate(t *testing.T) {
	tree := sampleTree()
	tests := []struct {
		id     string
		parent string
		index  int
		ok     bool
	}{
		{"a", "", 0, true},
		{"e", "", 1, true},
		{"c", "a", 1, true},
		{"d", "c", 0, true},
		{"zz", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			parent, index, ok := Locate(tree, tt.id)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			if tt.parent == "" {
				assert.Nil(t, parent)
			} else {
				require.NotNil(t, parent)
				assert.Equal(t, tt.parent, parent.ID)
			}
			assert.Equal(t, tt.index, index)
		})
	}
}

func TestContains(t *testing.T) {
	tree := sampleTree()
	a := Find(tree, "a")
	assert.True(t, Contains(a, "a"))
	assert.True(t, Contains(a, "d"))
	assert.False(t, Contains(a, "e"))
	assert.False(t, Contains(a, ""))
}

func TestCloneIsDeep(t *testing.T) {
	tree := sampleTree()
	c := CloneTree(tree)

	c[0].Props["padding"] = props.String("0")
	c[0].Children[1].Children[0].Name = "Changed"

	assert.Equal(t, "16px", tree[0].Props.Text("padding"))
	assert.Equal(t, "Go", Find(tree, "d").Name)
}

func TestCloneFreshReplacesEveryID(t *testing.T) {
	tree := sampleTree()
	c := Find(tree, "a").CloneFresh()

	ids := IDs([]*Node{c})
	require.Len(t, ids, 4)
	for _, id := range ids {
		assert.Nil(t, Find(tree, id))
	}
	assert.True(t, Equal(tree[:1], []*Node{c}))
}

func TestEqualIgnoresIDs(t *testing.T) {
	a := sampleTree()
	b := sampleTree()
	b[0].ID = "other"
	assert.True(t, Equal(a, b))

	b[1].Props = props.Props{"text": props.String("x")}
	assert.False(t, Equal(a, b))
}

func TestNodeJSON(t *testing.T) {
	hidden := false
	n := &Node{ID: "x", Type: "text", Name: "T", Props: props.Props{"size": props.Number(12)}, Children: []*Node{}, Visible: &hidden}

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x","type":"text","name":"T","props":{"size":12},"children":[],"visible":false}`, string(data))

	var back Node
	require.NoError(t, json.Unmarshal(data, &back))
	assert.False(t, back.IsVisible())
	assert.Equal(t, 12.0, mustFloat(t, back.Props.Get("size")))
}

func mustFloat(t *testing.T, v props.Value) float64 {
	t.Helper()
	f, ok := v.Float()
	require.True(t, ok)
	return f
}
