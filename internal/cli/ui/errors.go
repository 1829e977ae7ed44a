// Package ui holds the small amount of terminal chrome nettle's CLI
// and REPL print around the interpreter's stable, plain-text output
// contracts — banners, prompts, and colorized error framing. Nothing
// in this package touches the wording of a lex/parse/eval error
// itself; spec.md §6/§7 own that text verbatim.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// WriteParseErrors prints each parser error prefixed by a tab, exactly
// as spec.md §6 specifies for `--parse` mode, optionally colorizing the
// tab-prefixed block (never altering its text).
func WriteParseErrors(w io.Writer, messages []string, useColor bool) {
	red := color.New(color.FgRed)
	if !useColor {
		red.DisableColor()
	}
	for _, msg := range messages {
		red.Fprintf(w, "\t%s\n", msg)
	}
}

// WriteRuntimeError prints a single `ERROR: ...` evaluation result,
// matching the Error object's own Inspect() rendering (spec.md §6).
func WriteRuntimeError(w io.Writer, message string, useColor bool) {
	red := color.New(color.FgRed, color.Bold)
	if !useColor {
		red.DisableColor()
	}
	red.Fprintln(w, message)
}

// WriteBanner prints the REPL's startup banner: name, version, and a
// one-line reminder of how to exit.
func WriteBanner(w io.Writer, name, version string, useColor bool) {
	cyan := color.New(color.FgCyan, color.Bold)
	if !useColor {
		cyan.DisableColor()
	}
	cyan.Fprintf(w, "%s %s\n", name, version)
	fmt.Fprintln(w, "Type an expression, or exit() / Ctrl+D to quit.")
}

// farewells rotates through a small fixed set of sign-off lines,
// chosen deterministically (not via math/rand) by a session-local
// counter, matching the flavor of simian/repl/repl.py's random.choice
// without taking a randomness dependency for it.
var farewells = []string{
	"Goodbye!",
	"See you next time.",
	"Until next time.",
	"Farewell.",
}

// Farewell returns a sign-off line for the given zero-based session
// counter (e.g. number of REPL sessions started by this process).
func Farewell(counter int) string {
	return farewells[counter%len(farewells)]
}

// StripColor removes ANSI SGR escape sequences, used by tests that
// assert on plain-text content regardless of whether color is active.
func StripColor(s string) string {
	var out strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
