package ui

import (
	"fmt"
	"strings"
)

// Entry records a single UI method call for test assertions.
type Entry struct {
	Method string
	Value  string // the formatted string passed to the method
}

// RecordingUI implements UI for tests. All output is captured in an entry log
// inspectable with Entries and HasMessage. It is colour-free so tests receive
// clean, predictable strings.
type RecordingUI struct {
	entries     *[]Entry
	indentLevel int
}

func NewRecordingUI() *RecordingUI {
	return &RecordingUI{entries: &[]Entry{}}
}

func (r *RecordingUI) record(method, value string) {
	*r.entries = append(*r.entries, Entry{
		Method: method,
		Value:  value,
	})
}

// Entries returns every recorded call in order.
func (r *RecordingUI) Entries() []Entry {
	return *r.entries
}

// HasMessage reports whether any recorded entry contains substr.
func (r *RecordingUI) HasMessage(substr string) bool {
	for _, e := range *r.entries {
		if strings.Contains(e.Value, substr) {
			return true
		}
	}
	return false
}

func (r *RecordingUI) Style(t StyledText) string {
	return t.Text
}

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) {
	r.record("Section", title)
}

func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.record("KeyValue", fmt.Sprintf("%s: %s", row[0], row[1]))
	}
}

func (r *RecordingUI) Table(headers []string, rows [][]string) {
	if len(headers) > 0 {
		r.record("Table", strings.Join(headers, " | "))
	}
	for _, row := range rows {
		r.record("Table", strings.Join(row, " | "))
	}
}

// Spinner records the message; the stop function is a no-op.
func (r *RecordingUI) Spinner(msg string) func() {
	r.record("Spinner", msg)
	return func() {}
}

// Indent returns a child sharing the same entry log, so output ordering is
// preserved across nested scopes.
func (r *RecordingUI) Indent() UI {
	return &RecordingUI{
		entries:     r.entries,
		indentLevel: r.indentLevel + 1,
	}
}
