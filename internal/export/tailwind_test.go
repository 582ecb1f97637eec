package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revolutionary-ui/revui/internal/props"
)

func TestSpacingBuckets(t *testing.T) {
	tests := []struct {
		px   float64
		want string
	}{
		{0, "0"},
		{1, "1"}, {4, "1"},
		{5, "2"}, {7, "2"}, {8, "2"},
		{9, "4"}, {16, "4"},
		{17, "6"}, {24, "6"},
		{25, "8"}, {32, "8"},
		{33, "12"}, {400, "12"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpacingBucket(tt.px), "%vpx", tt.px)
	}
}

func TestPaddingBucketDeterminism(t *testing.T) {
	seven := PropsToTailwindClasses(props.Props{"padding": props.String("7px")})
	eight := PropsToTailwindClasses(props.Props{"padding": props.String("8px")})
	assert.Equal(t, []string{"p-2"}, eight)
	assert.Equal(t, seven, eight)
}

func TestPropsToTailwindClasses(t *testing.T) {
	tests := []struct {
		name  string
		props props.Props
		want  []string
	}{
		{"margin number", props.Props{"margin": props.Number(12)}, []string{"m-4"}},
		{"gap rem", props.Props{"gap": props.String("1.5rem")}, []string{"gap-6"}},
		{"percent padding", props.Props{"padding": props.String("5%")}, []string{"p-[5%]"}},
		{"auto margin", props.Props{"margin": props.String("auto")}, []string{"m-auto"}},
		{"full width", props.Props{"width": props.String("100%")}, []string{"w-full"}},
		{"font size", props.Props{"fontSize": props.String("18px")}, []string{"text-lg"}},
		{"font weight", props.Props{"fontWeight": props.String("600")}, []string{"font-semibold"}},
		{"radius", props.Props{"borderRadius": props.String("9999px")}, []string{"rounded-full"}},
		{"colors", props.Props{"backgroundColor": props.String("#FFF"), "color": props.String("rgb(0, 0, 0)")}, []string{"bg-white", "text-[rgb(0,_0,_0)]"}},
		{"align", props.Props{"textAlign": props.String("center")}, []string{"text-center"}},
		{"ignores others", props.Props{"text": props.String("x"), "level": props.Number(2)}, nil},
		{"fixed order", props.Props{"borderRadius": props.String("0"), "padding": props.String("0")}, []string{"p-0", "rounded-none"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PropsToTailwindClasses(tt.props))
		})
	}
}

func TestTailwindLayoutClasses(t *testing.T) {
	assert.Equal(t, []string{"grid", "grid-cols-4", "gap-4"},
		tailwindFor("grid", props.Props{"columns": props.Number(4), "gap": props.String("16px")}))
	assert.Equal(t, []string{"flex", "flex-col", "items-center", "justify-between"},
		tailwindFor("flex", props.Props{"direction": props.String("column"), "align": props.String("center"), "justify": props.String("between")}))
	assert.Equal(t, []string{"flex", "items-stretch", "justify-around"},
		tailwindFor("flex", props.Props{"align": props.String("stretch"), "justify": props.String("around")}))
	assert.Equal(t, []string{"flex"},
		tailwindFor("flex", props.Props{"align": props.String("between"), "justify": props.String("stretch")}))
	assert.Equal(t, []string{"list-decimal"}, tailwindFor("list", props.Props{"ordered": props.Bool(true)}))
}
