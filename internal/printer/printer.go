// Package printer provides colored console output helpers for the CLI layer.
package printer

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

func init() {
	// Force color output even when not connected to a TTY.
	// Users can disable with the NO_COLOR environment variable.
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan, color.Bold)
)

// Heading prints a scene heading in bold cyan.
func Heading(format string, a ...any) {
	cyan.Printf(format, a...)
}

// Success prints a success message in green with a checkmark prefix.
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		green.Printf("✓ %s", msg)
	} else {
		green.Print(msg)
	}
}

// Info prints an informational message in the default color.
func Info(format string, a ...any) {
	fmt.Printf(format, a...)
}

// Warning prints a warning message in yellow.
func Warning(format string, a ...any) {
	yellow.Printf(format, a...)
}

// Error prints a failure title to stderr in red and returns a plain error
// carrying the same title for cobra to propagate.
func Error(title string) error {
	red.Fprintf(os.Stderr, "%s\n", title)
	return fmt.Errorf("%s", strings.ToLower(title))
}
