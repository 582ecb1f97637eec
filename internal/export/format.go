package export

import (
	"strings"
	"unicode"

	"github.com/revolutionary-ui/revui/internal/props"
)

// Tidy normalizes whitespace: trailing spaces are trimmed, leading blank
// lines dropped, runs of blank lines collapsed to one, and the output ends
// with exactly one newline.
func Tidy(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := true
	for _, line := range lines {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

// jsString quotes s as a single-quoted JavaScript string literal.
func jsString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// jsValue renders a prop value as a JavaScript literal.
func jsValue(v props.Value) string {
	switch v.Kind() {
	case props.KindString:
		return jsString(v.Text())
	case props.KindNumber, props.KindBool:
		return v.Text()
	case props.KindList:
		items := v.Items()
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = jsString(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "null"
	}
}

// jsKey renders an object key, quoting it unless it is a plain identifier.
func jsKey(k string) string {
	if k == "" {
		return "''"
	}
	for i, r := range k {
		if r == '_' || r == '$' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return jsString(k)
	}
	return k
}

// toPascalCase converts a free-form name to a PascalCase identifier.
// "my card" → "MyCard", "hero-section" → "HeroSection"
func toPascalCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	out := b.String()
	if out == "" {
		return DefaultComponentName
	}
	if unicode.IsDigit([]rune(out)[0]) {
		out = "C" + out
	}
	return out
}

// toKebabCase converts a PascalCase or camelCase string to kebab-case.
// "GeneratedComponent" → "generated-component"
func toKebabCase(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '-')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}

func componentName(opts Options) string {
	return toPascalCase(opts.ComponentName)
}
