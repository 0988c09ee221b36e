package report

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Styles holds the colour functions used to render reports and diffs.
// The zero value is not usable; use NewStyles or Plain.
type Styles struct {
	Error     func(a ...any) string
	Warning   func(a ...any) string
	Path      func(a ...any) string
	Removed   func(a ...any) string
	Added     func(a ...any) string
	Changed   func(a ...any) string
	LineNo    func(a ...any) string
	Separator func(a ...any) string
}

// NewStyles returns coloured styles when enabled, plain ones otherwise.
// Each colour is forced on or off so the result does not depend on
// color.NoColor.
func NewStyles(enabled bool) *Styles {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return &Styles{
		Error:     mk(color.FgRed, color.Bold),
		Warning:   mk(color.FgYellow, color.Bold),
		Path:      mk(color.FgCyan),
		Removed:   mk(color.FgRed),
		Added:     mk(color.FgGreen),
		Changed:   mk(color.FgRed, color.Underline),
		LineNo:    mk(color.Faint),
		Separator: mk(color.FgMagenta),
	}
}

// Plain returns styles which add no escape sequences.
func Plain() *Styles {
	return NewStyles(false)
}

// ColorMode selects when output is coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Enabled reports whether output written to w should be coloured. In
// auto mode that is the case when w is a terminal.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Valid reports whether m is one of the known modes.
func (m ColorMode) Valid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}
