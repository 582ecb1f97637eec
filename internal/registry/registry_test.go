package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revolutionary-ui/revui/internal/props"
)

func TestGet(t *testing.T) {
	d := Get("heading")
	require.NotNil(t, d)
	assert.Equal(t, "Heading", d.Name)
	assert.Equal(t, CategoryTypography, d.Category)
	assert.Equal(t, "Heading", d.DefaultProps.Text("text"))

	assert.NotNil(t, Get("  Button "), "lookup should normalize case and whitespace")
	assert.Nil(t, Get("carousel"))
}

func TestCanAcceptChild(t *testing.T) {
	tests := []struct {
		parent, child string
		want          bool
	}{
		{"container", "button", true},
		{"container", "container", true},
		{"button", "text", false},
		{"heading", "text", false},
		{"list", "list-item", true},
		{"list", "button", false},
		{"container", "list-item", false},
		{"navbar", "link", true},
		{"navbar", "grid", false},
		{"container", "carousel", false},
		{"carousel", "button", false},
	}
	for _, tt := range tests {
		got := CanAcceptChild(tt.parent, tt.child)
		assert.Equal(t, tt.want, got, "CanAcceptChild(%q, %q)", tt.parent, tt.child)
	}
}

func TestCanBeRoot(t *testing.T) {
	assert.True(t, CanBeRoot("section"))
	assert.False(t, CanBeRoot("list-item"))
	assert.False(t, CanBeRoot("unknown"))
}

func TestListByCategory(t *testing.T) {
	layout := ListByCategory(CategoryLayout)
	require.NotEmpty(t, layout)
	assert.Equal(t, "container", layout[0].Type)
	for _, d := range layout {
		assert.Equal(t, CategoryLayout, d.Category)
	}
	assert.Empty(t, ListByCategory("nonexistent"))
}

func TestCategoriesCoverEveryType(t *testing.T) {
	total := 0
	for _, c := range Categories() {
		total += len(ListByCategory(c))
	}
	assert.Equal(t, len(Types()), total)
}

func TestDefaultsMatchSchema(t *testing.T) {
	for _, typ := range Types() {
		d := Get(typ)
		for key, v := range d.DefaultProps {
			assert.NoError(t, ValidateProp(d, key, v), "%s default %q", typ, key)
		}
	}
}

func TestValidateProp(t *testing.T) {
	heading := Get("heading")
	assert.NoError(t, ValidateProp(heading, "level", props.Number(3)))
	assert.Error(t, ValidateProp(heading, "level", props.Number(7)))
	assert.Error(t, ValidateProp(heading, "level", props.Number(0)))
	assert.Error(t, ValidateProp(heading, "level", props.Bool(true)))
	assert.NoError(t, ValidateProp(heading, "textAlign", props.String("center")))
	assert.Error(t, ValidateProp(heading, "textAlign", props.String("justify")))
	assert.NoError(t, ValidateProp(heading, "customThing", props.String("anything")))
	assert.NoError(t, ValidateProp(nil, "x", props.String("y")))

	list := Get("list")
	assert.Error(t, ValidateProp(list, "ordered", props.String("yes")))
}

func TestVisibleCondition(t *testing.T) {
	list := Get("list")
	marker := list.Descriptor("marker")
	require.NotNil(t, marker)

	assert.False(t, list.Visible(marker, props.Props{}))
	assert.False(t, list.Visible(marker, props.Props{"ordered": props.Bool(false)}))
	assert.True(t, list.Visible(marker, props.Props{"ordered": props.Bool(true)}))

	assert.True(t, list.Visible(list.Descriptor("ordered"), props.Props{}))
}
