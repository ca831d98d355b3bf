package logx

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

const (
	reset   = "\x1b[0m"
	bold    = "\x1b[1m"
	gray    = "\x1b[90m"
	cyan    = "\x1b[36m"
	blue    = "\x1b[34m"
	yellow  = "\x1b[33m"
	green   = "\x1b[32m"
	magenta = "\x1b[35m"
	red     = "\x1b[31m"
	white   = "\x1b[37m"
)

var enableColor = true

var quiet = false

func init() {
	// Disable color if NO_COLOR is set or stdout is not a terminal
	if os.Getenv("NO_COLOR") != "" {
		enableColor = false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		enableColor = false
	}
}

// SetQuiet silences the line-oriented loggers. The full-screen dashboard
// owns the terminal while it runs, so they have to stop printing.
func SetQuiet(q bool) { quiet = q }

// C returns a color-coded string (or plain string if color disabled)
func C(color, s string) string {
	if !enableColor {
		return s
	}
	return color + s + reset
}

// Cf returns a color-coded formatted string
func Cf(color, format string, args ...any) string {
	return C(color, fmt.Sprintf(format, args...))
}

// Channel returns a consistently-padded colored channel tag
// All channels are 6 chars: [PROG] [GEN ] [EVO ] [CHK ] [WEB ] [SIM ]
// IMPORTANT: Pass 4-char channel names: "PROG", "GEN ", "EVO ", "CHK ", "WEB ", "SIM "
// (Note: GEN, EVO, CHK, WEB, SIM have trailing space for padding)
func Channel(ch string) string {
	color := map[string]string{
		"PROG": cyan,
		"GEN ": blue,
		"EVO ": yellow,
		"CHK ": green,
		"WEB ": magenta,
		"SIM ": red,
	}[ch]

	// Create padded label [XXXX] - left-justify in 4-char width
	label := fmt.Sprintf("[%-4s]", ch)
	return C(color, label)
}

// TS returns a gray UTC timestamp (caller controls time value)
func TS(ts string) string {
	return C(gray, ts)
}

// Colored output helpers for common use cases

// Success returns a green success message (for ✓, PASS, etc.)
func Success(s string) string {
	return C(green, s)
}

// Successf returns a formatted green success message
func Successf(format string, args ...any) string {
	return C(green, fmt.Sprintf(format, args...))
}

// Error returns a red error message (for ✗, FAIL, etc.)
func Error(s string) string {
	return C(red, s)
}

// Errorf returns a formatted red error message
func Errorf(format string, args ...any) string {
	return C(red, fmt.Sprintf(format, args...))
}

// Warn returns a yellow warning message (for ⚠, WARN, etc.)
func Warn(s string) string {
	return C(yellow, s)
}

// Warnf returns a formatted yellow warning message
func Warnf(format string, args ...any) string {
	return C(yellow, fmt.Sprintf(format, args...))
}

// Info returns a cyan info message
func Info(s string) string {
	return C(cyan, s)
}

// Infof returns a formatted cyan info message
func Infof(format string, args ...any) string {
	return C(cyan, fmt.Sprintf(format, args...))
}

// Highlight returns a bold highlighted message
func Highlight(s string) string {
	return C(bold, s)
}

// Highlightf returns a formatted bold highlighted message
func Highlightf(format string, args ...any) string {
	return C(bold, fmt.Sprintf(format, args...))
}

// Dim returns a gray dimmed message (for less important info)
func Dim(s string) string {
	return C(gray, s)
}

// Dimf returns a formatted gray dimmed message
func Dimf(format string, args ...any) string {
	return C(gray, fmt.Sprintf(format, args...))
}

// Checkmark returns a colored checkmark (green) or X (red)
func Checkmark(passed bool) string {
	if passed {
		return Success("✓")
	}
	return Error("✗")
}

// Icon returns a small glyph for a named event kind, or "" for
// unknown names. Glyphs degrade gracefully on plain terminals.
func Icon(name string) string {
	return map[string]string{
		"champion": "★",
		"solved":   "✓",
		"save":     "⤓",
		"web":      "⇄",
		"warn":     "⚠",
		"reject":   "✗",
	}[name]
}

// ScoreColor returns color-coded fitness based on value
// Positive totals are green, negative are red
func ScoreColor(score float32) string {
	if score > 0 {
		return Success(fmt.Sprintf("%.4f", score))
	}
	return Error(fmt.Sprintf("%.4f", score))
}

// DepthColor returns color-coded tree depth based on bloat severity
// Shallow trees (<10) are green, medium (<17) are yellow, deep are red
func DepthColor(depth int) string {
	if depth < 10 {
		return Success(fmt.Sprintf("%d", depth))
	}
	if depth < 17 {
		return Warn(fmt.Sprintf("%d", depth))
	}
	return Error(fmt.Sprintf("%d", depth))
}

// NodesColor returns color-coded node count based on program size
// Small programs (<50) are green, medium (<200) are yellow, large are red
func NodesColor(nodes int) string {
	if nodes < 50 {
		return Success(fmt.Sprintf("%d", nodes))
	}
	if nodes < 200 {
		return Warn(fmt.Sprintf("%d", nodes))
	}
	return Error(fmt.Sprintf("%d", nodes))
}

// FormatDuration formats a duration in a human-readable way
// Shows hours, minutes, and seconds (e.g., "1h23m" or "45m" or "23s")
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if minutes > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}
