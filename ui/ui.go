package ui

import (
	"encoding/json"
)

// Severity classifies the visual weight of a piece of inline text. The print
// layer maps each value to a terminal style; data consumers (JSON, tests)
// see plain text.
type Severity uint8

const (
	SeverityInfo    Severity = iota // plain — no colour emphasis
	SeveritySuccess                 // green  — resolved / positive
	SeverityWarn                    // yellow — needs attention
	SeverityError                   // red    — failure
)

// StyledText pairs a plain string with a Severity annotation. It marshals as
// just the plain text so JSON output carries no ANSI codes.
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI provides all terminal output for accountaddr commands.
//
// Production code uses TerminalUI (colours when stdout is a terminal);
// tests use RecordingUI which captures every call for assertions.
type UI interface {
	// Style returns the text of t coloured according to its Severity, for
	// embedding inside a larger Info/Success/... line. With colours disabled
	// (piped output, RecordingUI) the plain text comes back unchanged.
	Style(t StyledText) string

	// Info writes a neutral status line.
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red. It does NOT exit — callers decide.
	Error(format string, args ...any)

	// Section writes a visual separator centred around a title.
	Section(title string)

	// KeyValue renders an aligned 2-column block, label left, value right,
	// values all starting at the same column. Used for the report echo.
	KeyValue(rows [][2]string)

	// Table renders a full bordered table with an optional header row. Pass
	// nil headers for a clean bordered block.
	Table(headers []string, rows [][]string)

	// Spinner starts an animated spinner with msg and returns a stop
	// function; defer it around the single network call. No-op off-terminal.
	Spinner(msg string) func()

	// Indent returns a child UI one indent level deeper, sharing the same
	// underlying writer.
	Indent() UI
}
