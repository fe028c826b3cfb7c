package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if NoColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// NoColor reports whether color output is disabled, either through the
// NO_COLOR environment variable (https://no-color.org/) or fatih/color's
// terminal detection.
func NoColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return color.NoColor
}

// Semantic formatters.
var (
	// Code formats commands. Yellow, `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file paths and registry keys.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Token formats an encrypted ID. Bold green, never decorated.
	Token = Formatter{color.New(color.FgGreen, color.Bold), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats user values. Cyan, 'single quotes' without color.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary text. Gray, (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
