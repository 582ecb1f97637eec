package props

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueText(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{String("hello"), "hello"},
		{Number(16), "16"},
		{Number(1.5), "1.5"},
		{Bool(true), "true"},
		{List("a", "b"), "a, b"},
		{Value{}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.Text())
	}
}

func TestValueFloat(t *testing.T) {
	f, ok := Number(3).Float()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	f, ok = String(" 42 ").Float()
	assert.True(t, ok)
	assert.Equal(t, 42.0, f)

	_, ok = String("16px").Float()
	assert.False(t, ok)

	_, ok = Bool(true).Float()
	assert.False(t, ok)
}

func TestValueTruthy(t *testing.T) {
	assert.True(t, Bool(true).Truthy())
	assert.False(t, Bool(false).Truthy())
	assert.True(t, String("yes").Truthy())
	assert.False(t, String("no").Truthy())
	assert.True(t, Number(1).Truthy())
	assert.False(t, Value{}.Truthy())
}

func TestJSONRoundTrip(t *testing.T) {
	in := Props{
		"text":    String("Hi"),
		"level":   Number(2),
		"ordered": Bool(false),
		"options": List("one", "two"),
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Props
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
	assert.True(t, in.Equal(out))
}

func TestUnmarshalRejectsObjects(t *testing.T) {
	var out Props
	err := json.Unmarshal([]byte(`{"style":{"color":"red"}}`), &out)
	assert.Error(t, err)
}

func TestOf(t *testing.T) {
	v, err := Of(12)
	require.NoError(t, err)
	assert.Equal(t, Number(12), v)

	v, err = Of([]any{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, List("x", "y"), v)

	_, err = Of([]any{"x", 1})
	assert.Error(t, err)

	_, err = Of(map[string]any{})
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	assert.Equal(t, Bool(true), Parse("true"))
	assert.Equal(t, Number(8), Parse("8"))
	assert.Equal(t, String("8px"), Parse("8px"))
	assert.Equal(t, List("a", "b"), Parse("[a, b]"))
	assert.Equal(t, List(), Parse("[]"))

	for _, text := range []string{"NaN", "Inf", "-inf", "infinity"} {
		assert.Equal(t, String(text), Parse(text), text)
	}
}

func TestOfRejectsNonFinite(t *testing.T) {
	_, err := Of(math.NaN())
	assert.Error(t, err)
	_, err = Of(math.Inf(1))
	assert.Error(t, err)
}

func TestMergeDoesNotMutate(t *testing.T) {
	base := Props{"text": String("a"), "color": String("red")}
	merged := base.Merge(Props{"text": String("b")})

	assert.Equal(t, "a", base.Text("text"))
	assert.Equal(t, "b", merged.Text("text"))
	assert.Equal(t, "red", merged.Text("color"))
}

func TestCloneListIsolation(t *testing.T) {
	base := Props{"options": List("a")}
	c := base.Clone()
	items := c["options"].Items()
	items[0] = "changed"
	assert.Equal(t, []string{"a"}, base["options"].Items())
}

func TestKeysSorted(t *testing.T) {
	p := Props{"b": String(""), "a": String(""), "c": String("")}
	assert.Equal(t, []string{"a", "b", "c"}, p.Keys())
}
