package cli

import (
	"fmt"
	"strings"
)

// ColorRole identifies a semantic color in the theme.
type ColorRole int

const (
	RoleSuccess ColorRole = iota
	RoleError
	RoleWarn
	RoleInfo
	RoleAccent
	RoleHeading
	RoleMuted
)

// Theme maps color roles to ANSI escape sequences.
type Theme struct {
	Name   string
	Colors map[ColorRole]string
}

// Built-in themes. The default accent is the builder's primary blue
// (#3B82F6); minimal leaves every role empty so the 16-color fallbacks apply.
var themes = map[string]*Theme{
	"default": {
		Name: "default",
		Colors: map[ColorRole]string{
			RoleSuccess: "\033[38;2;34;197;94m",   // #22C55E
			RoleError:   "\033[38;2;239;68;68m",   // #EF4444
			RoleWarn:    "\033[38;2;234;179;8m",   // #EAB308
			RoleInfo:    "\033[36m",               // cyan
			RoleAccent:  "\033[38;2;59;130;246m",  // #3B82F6
			RoleHeading: "\033[1m",                // bold
			RoleMuted:   "\033[38;2;107;114;128m", // #6B7280
		},
	},
	"dark": {
		Name: "dark",
		Colors: map[ColorRole]string{
			RoleSuccess: "\033[38;2;74;222;128m",
			RoleError:   "\033[38;2;248;113;113m",
			RoleWarn:    "\033[38;2;250;204;21m",
			RoleInfo:    "\033[38;2;103;232;249m",
			RoleAccent:  "\033[38;2;96;165;250m",
			RoleHeading: "\033[1;97m",
			RoleMuted:   "\033[38;2;156;163;175m",
		},
	},
	"light": {
		Name: "light",
		Colors: map[ColorRole]string{
			RoleSuccess: "\033[38;2;21;128;61m",
			RoleError:   "\033[38;2;185;28;28m",
			RoleWarn:    "\033[38;2;161;98;7m",
			RoleInfo:    "\033[38;2;55;65;81m",
			RoleAccent:  "\033[38;2;29;78;216m",
			RoleHeading: "\033[1;30m",
			RoleMuted:   "\033[38;2;107;114;128m",
		},
	},
	"minimal": {
		Name:   "minimal",
		Colors: map[ColorRole]string{},
	},
}

// currentTheme is the active theme.
var currentTheme = themes["default"]

// SetTheme changes the active theme. Returns an error if the name is unknown.
func SetTheme(name string) error {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("unknown theme %q. Available: %s", name, strings.Join(ThemeNames(), ", "))
	}
	currentTheme = t
	return nil
}

// CurrentThemeName returns the name of the active theme.
func CurrentThemeName() string {
	return currentTheme.Name
}

// ThemeNames returns the list of available theme names in display order.
func ThemeNames() []string {
	return []string{"default", "dark", "light", "minimal"}
}

// Colorize wraps msg in the current theme's color for the given role.
func Colorize(role ColorRole, msg string) string {
	if !ColorEnabled {
		return msg
	}
	c := currentTheme.Colors[role]
	if c == "" {
		return msg
	}
	return c + msg + reset
}

// Accent formats text in the theme's accent color.
func Accent(msg string) string {
	return Colorize(RoleAccent, msg)
}

// Heading formats text in the theme's heading style.
func Heading(msg string) string {
	return Colorize(RoleHeading, msg)
}

// Muted formats text in the theme's muted color.
func Muted(msg string) string {
	return Colorize(RoleMuted, msg)
}
