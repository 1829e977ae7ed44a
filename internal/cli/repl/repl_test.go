package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nettle-lang/nettle/internal/object"
)

func TestEvalLineModeLexPrintsTokenStream(t *testing.T) {
	var buf bytes.Buffer
	r := New(Options{Mode: ModeLex}, object.NewEnvironment())

	r.evalLine("let x = 5;", &buf)

	out := buf.String()
	assert.Contains(t, out, "Token: {LET}, Literal: {let}")
	assert.Contains(t, out, "Token: {=}, Literal: {=}")
	assert.Contains(t, out, "Token: {INT}, Literal: {5}")
}

func TestEvalLineModeParsePrintsRenderedAST(t *testing.T) {
	var buf bytes.Buffer
	r := New(Options{Mode: ModeParse}, object.NewEnvironment())

	r.evalLine("let x = 1 + 2;", &buf)

	assert.Equal(t, "let x = (1 + 2);\n", buf.String())
}

func TestEvalLineModeParseReportsErrorsWithTabPrefix(t *testing.T) {
	var buf bytes.Buffer
	r := New(Options{Mode: ModeParse}, object.NewEnvironment())

	r.evalLine("let x 5;", &buf)

	assert.Contains(t, buf.String(), "\tExpected next token to be =")
}

func TestEvalLineModeEvalMaintainsSessionEnvironment(t *testing.T) {
	var buf bytes.Buffer
	env := object.NewEnvironment()
	r := New(Options{Mode: ModeEval}, env)

	r.evalLine("let x = 40;", &buf)
	r.evalLine("x + 2;", &buf)

	assert.Equal(t, "42\n", buf.String())
}

func TestEvalLineModeEvalPrintsRuntimeErrors(t *testing.T) {
	var buf bytes.Buffer
	r := New(Options{Mode: ModeEval}, object.NewEnvironment())

	r.evalLine("1 + true;", &buf)

	assert.Contains(t, buf.String(), "ERROR: type mismatch: INTEGER + BOOLEAN")
}

func TestNewDefaultsPrompt(t *testing.T) {
	r := New(Options{}, object.NewEnvironment())
	require.Equal(t, "nettle> ", r.opts.Prompt)
}

func TestNewAssignsDistinctSessionIDs(t *testing.T) {
	a := New(Options{}, object.NewEnvironment())
	b := New(Options{}, object.NewEnvironment())
	assert.NotEqual(t, a.sessionID, b.sessionID)
}
