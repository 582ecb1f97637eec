// Package props holds the open property bag carried by every component node.
//
// A property value is one of four variants: string, number, bool or a list of
// strings. The bag itself is open: any key may appear, and the registry's
// edit schema is only consulted at the editing boundary.
package props

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindList:
		return "list"
	default:
		return "null"
	}
}

// Value is a single property value.
type Value struct {
	kind Kind
	s    string
	n    float64
	b    bool
	list []string
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// List returns a string-list value. The slice is copied.
func List(items ...string) Value {
	l := make([]string, len(items))
	copy(l, items)
	return Value{kind: KindList, list: l}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v is the null value.
func (v Value) IsZero() bool { return v.kind == KindNull }

// Text returns v rendered as plain text. Numbers use the shortest
// representation, lists are joined with ", ".
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		return strings.Join(v.list, ", ")
	default:
		return ""
	}
}

// Float returns the numeric content of v. Strings holding a number are
// accepted too ("16", "16px" is not).
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.n, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Truthy reports whether v counts as "on". Strings "true", "yes" and "1"
// are truthy so hand-edited imports behave.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n != 0
	case KindString:
		switch strings.ToLower(strings.TrimSpace(v.s)) {
		case "true", "yes", "1":
			return true
		}
		return false
	case KindList:
		return len(v.list) > 0
	default:
		return false
	}
}

// Items returns the list content of v. A string value is returned as a
// one-element list; other kinds yield nil.
func (v Value) Items() []string {
	switch v.kind {
	case KindList:
		out := make([]string, len(v.list))
		copy(out, v.list)
		return out
	case KindString:
		if v.s == "" {
			return nil
		}
		return []string{v.s}
	default:
		return nil
	}
}

// Equal reports whether two values hold the same variant and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindNumber:
		return v.n == o.n
	case KindBool:
		return v.b == o.b
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Any returns v as a plain Go value (string, float64, bool, []string or nil).
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindNumber:
		return v.n
	case KindBool:
		return v.b
	case KindList:
		return v.Items()
	default:
		return nil
	}
}

// MarshalJSON encodes v as its natural JSON value.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// UnmarshalJSON decodes a JSON string, number, bool, null or array of strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	val, err := Of(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// Of converts a plain Go value into a Value. It accepts the shapes produced
// by encoding/json, yaml.v3 and MCP tool arguments.
func Of(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Value{}, fmt.Errorf("props: number %v is not finite", x)
		}
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("props: invalid number %q: %w", x.String(), err)
		}
		return Number(f), nil
	case []string:
		return List(x...), nil
	case []any:
		items := make([]string, 0, len(x))
		for i, item := range x {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("props: list item %d is %T, want string", i, item)
			}
			items = append(items, s)
		}
		return List(items...), nil
	default:
		return Value{}, fmt.Errorf("props: unsupported value type %T", raw)
	}
}

// Parse interprets command-line text: "true"/"false" become booleans,
// finite numeric text becomes a number, a comma-separated "[a,b]" becomes a
// list and anything else (including "NaN" and "Inf") stays a string.
func Parse(text string) Value {
	t := strings.TrimSpace(text)
	switch t {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Number(f)
	}
	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
		inner := strings.TrimSpace(t[1 : len(t)-1])
		if inner == "" {
			return List()
		}
		parts := strings.Split(inner, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return List(parts...)
	}
	return String(text)
}

// Props is the open key-value bag of a node.
type Props map[string]Value

// FromMap converts a plain map into Props.
func FromMap(m map[string]any) (Props, error) {
	out := make(Props, len(m))
	for k, raw := range m {
		v, err := Of(raw)
		if err != nil {
			return nil, fmt.Errorf("prop %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// Clone returns a copy of p. Nil stays nil.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		if v.kind == KindList {
			v = List(v.list...)
		}
		out[k] = v
	}
	return out
}

// Merge returns a new bag with patch shallow-merged over p.
func (p Props) Merge(patch Props) Props {
	out := p.Clone()
	if out == nil {
		out = make(Props, len(patch))
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// Keys returns the keys of p in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value for key, or the null value.
func (p Props) Get(key string) Value { return p[key] }

// Text is shorthand for p.Get(key).Text().
func (p Props) Text(key string) string { return p[key].Text() }

// Has reports whether key is set to a non-null value.
func (p Props) Has(key string) bool {
	v, ok := p[key]
	return ok && !v.IsZero()
}

// Equal reports whether two bags hold the same keys and values.
func (p Props) Equal(o Props) bool {
	if len(p) != len(o) {
		return false
	}
	for k, v := range p {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
