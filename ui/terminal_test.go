package ui

import (
	"bytes"
	"testing"

	"github.com/logrusorgru/aurora"
)

func newBufferUI(buf *bytes.Buffer) *TerminalUI {
	return &TerminalUI{out: buf, au: aurora.NewAurora(false)}
}

func TestTerminalUIIndent(t *testing.T) {
	var buf bytes.Buffer
	u := newBufferUI(&buf)

	u.Info("top")
	u.Indent().Info("nested")
	u.Indent().Indent().Info("deeper")

	want := "top\n  nested\n    deeper\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTerminalUIKeyValueAlignment(t *testing.T) {
	var buf bytes.Buffer
	u := newBufferUI(&buf)

	u.KeyValue([][2]string{
		{"Salt", "x"},
		{"Salt digest", "y"},
	})

	want := "Salt         x\nSalt digest  y\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTerminalUIIndentedKeyValue(t *testing.T) {
	var buf bytes.Buffer
	u := newBufferUI(&buf)

	u.Indent().KeyValue([][2]string{{"Chain id", "324"}})

	want := "  Chain id  324\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
