package theme

import "errors"

// Theme is the active visual mode
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is used whenever no valid theme was persisted
const Default = Light

// ErrInvalidTheme is returned when a theme outside {light, dark} is set
var ErrInvalidTheme = errors.New("invalid theme")

// String returns the string representation of Theme
func (t Theme) String() string {
	return string(t)
}

// IsValid returns true for light and dark
func (t Theme) IsValid() bool {
	return t == Light || t == Dark
}

// IsDark reports whether t is the dark theme
func (t Theme) IsDark() bool {
	return t == Dark
}

// Opposite returns the other theme; anything but dark maps to dark
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse converts a persisted name to a Theme. Only the exact strings
// "light" and "dark" are accepted.
func Parse(name string) (Theme, bool) {
	t := Theme(name)
	if !t.IsValid() {
		return "", false
	}
	return t, true
}

// Marker returns the root-scope marker associated with t
func (t Theme) Marker() string {
	return string(t) + "-theme"
}
