package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme paints object tree roles and the short messages commands print
type ColorScheme struct {
	// Success colors confirmations such as "Added account main"
	Success func(format string, a ...interface{}) string

	// Error colors the prefix of a failed command
	Error func(format string, a ...interface{}) string

	// Header colors table headers
	Header func(format string, a ...interface{}) string

	// Disabled indicates if colors are disabled
	Disabled bool

	roles map[Role]*color.Color
}

// NewColorScheme creates a new color scheme
// Colors are automatically disabled for non-TTY outputs, when NO_COLOR is set, or when noColor is true
func NewColorScheme(w io.Writer, noColor bool) *ColorScheme {
	_, noColorEnv := os.LookupEnv("NO_COLOR")
	return newColorScheme(!noColor && !noColorEnv && isTTY(w))
}

// ForcedColorScheme returns a scheme that always emits ANSI codes
func ForcedColorScheme() *ColorScheme {
	return newColorScheme(true)
}

func newColorScheme(useColor bool) *ColorScheme {
	if !useColor {
		return &ColorScheme{
			Success:  fmt.Sprintf,
			Error:    fmt.Sprintf,
			Header:   fmt.Sprintf,
			Disabled: true,
		}
	}

	return &ColorScheme{
		Success:  enabled(color.FgGreen).Sprintf,
		Error:    enabled(color.FgRed, color.Bold).Sprintf,
		Header:   enabled(color.FgWhite, color.Bold).Sprintf,
		Disabled: false,
		roles: map[Role]*color.Color{
			RoleMarker:      enabled(color.FgMagenta, color.Bold),
			RoleBlockKey:    enabled(color.Bold),
			RoleBrace:       enabled(color.FgMagenta, color.Bold),
			RoleBracket:     enabled(color.Bold),
			RoleText:        enabled(color.FgBlue, color.Bold),
			RoleEnum:        enabled(append([]color.Attribute{color.FgBlack, color.Bold}, bg256(141)...)...),
			RolePrice:       enabled(color.FgGreen, color.Bold),
			RoleCurrency:    enabled(color.FgGreen, color.Bold),
			RoleDescription: enabled(append([]color.Attribute{color.Bold}, bg256(234)...)...),
			RoleYes:         enabled(color.FgGreen, color.Bold),
			RoleNo:          enabled(color.FgRed, color.Bold),
			RoleElement:     enabled(color.FgYellow, color.Bold),
		},
	}
}

// Paint styles text for the given role. Roles without a color, and every
// role when the scheme is disabled, are returned unchanged.
func (cs *ColorScheme) Paint(role Role, text string) string {
	if cs.Disabled || text == "" {
		return text
	}
	c, ok := cs.roles[role]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// StatusColor returns Error for a batch with failures and Success otherwise
func (cs *ColorScheme) StatusColor(hasError bool) func(format string, a ...interface{}) string {
	if hasError {
		return cs.Error
	}
	return cs.Success
}

// enabled builds a color that ignores the global NO_COLOR detection of the
// color package; the scheme has already decided to use colors
func enabled(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// bg256 selects a background from the 256-color palette
func bg256(n int) []color.Attribute {
	return []color.Attribute{48, 5, color.Attribute(n)}
}

// isTTY checks if the writer is a TTY
func isTTY(w io.Writer) bool {
	// Check if writer is a file
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}
