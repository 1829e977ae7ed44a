package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestWriteParseErrors(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	WriteParseErrors(&buf, []string{
		"Expected next token to be =, got ; instead.",
		"No prefix parse function for + found.",
	}, false)

	out := buf.String()
	for _, want := range []string{
		"\tExpected next token to be =, got ; instead.\n",
		"\tNo prefix parse function for + found.\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteParseErrors() output missing %q, got %q", want, out)
		}
	}
}

func TestWriteRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	WriteRuntimeError(&buf, "ERROR: type mismatch: INTEGER + BOOLEAN", false)

	if !strings.Contains(buf.String(), "ERROR: type mismatch: INTEGER + BOOLEAN") {
		t.Errorf("WriteRuntimeError() did not write the message verbatim, got %q", buf.String())
	}
}

func TestFarewellRotates(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < len(farewells); i++ {
		seen[Farewell(i)] = true
	}
	if len(seen) != len(farewells) {
		t.Errorf("expected Farewell to cycle through all %d lines, saw %d distinct", len(farewells), len(seen))
	}
	if Farewell(0) != Farewell(len(farewells)) {
		t.Error("expected Farewell to wrap around with period len(farewells)")
	}
}

func TestStripColor(t *testing.T) {
	colored := "\x1b[31mhello\x1b[0m world"
	if got := StripColor(colored); got != "hello world" {
		t.Errorf("StripColor() = %q, want %q", got, "hello world")
	}
}
