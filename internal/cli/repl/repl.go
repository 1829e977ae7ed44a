// Package repl implements nettle's interactive loop: the three
// variants simian/repl/repl.py calls Rlpl, Rppl, and Repl (lex-only,
// parse-only, full evaluation), selected by the same mode the CLI uses
// for file execution.
package repl

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nettle-lang/nettle/internal/cli/ui"
	"github.com/nettle-lang/nettle/internal/compiler/lexer"
	"github.com/nettle-lang/nettle/internal/compiler/parser"
	"github.com/nettle-lang/nettle/internal/evaluator"
	"github.com/nettle-lang/nettle/internal/object"
)

// Mode selects which of the three loops Start runs.
type Mode int

const (
	// ModeEval lexes, parses, and evaluates each line against a
	// session-long Environment — simian's Repl.
	ModeEval Mode = iota
	// ModeLex prints each line's token stream — simian's Rlpl.
	ModeLex
	// ModeParse lexes and parses each line, printing the rendered AST
	// or accumulated parse errors — simian's Rppl.
	ModeParse
)

// Options configures a REPL session.
type Options struct {
	Mode        Mode
	Color       bool
	HistoryFile string
	Prompt      string
	Logger      *zap.Logger // nil is valid; Start no-ops logging then.
}

// REPL runs one of the three interactive loops against in and out.
type REPL struct {
	opts      Options
	env       *object.Environment
	sessionID uuid.UUID
	counter   int
}

// New constructs a REPL. env is the Environment full-eval mode
// evaluates against; it is ignored by ModeLex and ModeParse.
func New(opts Options, env *object.Environment) *REPL {
	if opts.Prompt == "" {
		opts.Prompt = "nettle> "
	}
	return &REPL{opts: opts, env: env, sessionID: uuid.New()}
}

// Start runs the loop until exit() is evaluated, EOF (Ctrl+D) is read,
// or the process is interrupted (Ctrl+C on an empty line). On EOF or
// interrupt it prints a farewell line and returns nil; it returns an
// error only when readline fails to start or to read. The `exit`
// builtin ends the process directly.
func (r *REPL) Start(out io.Writer) error {
	if logger := r.opts.Logger; logger != nil {
		logger.Debug("repl session started", zap.String("session_id", r.sessionID.String()), zap.Int("mode", int(r.opts.Mode)))
	}

	ui.WriteBanner(out, "nettle", modeLabel(r.opts.Mode), r.opts.Color)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.opts.Prompt,
		HistoryFile:     r.opts.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if line == "" {
			continue
		}

		r.evalLine(line, out)
	}

	fmt.Fprintln(out, ui.Farewell(r.counter))
	r.counter++
	return nil
}

func (r *REPL) evalLine(line string, out io.Writer) {
	l := lexer.New(line)

	if r.opts.Mode == ModeLex {
		for tok := l.NextToken(); tok.Type != lexer.EOF; tok = l.NextToken() {
			fmt.Fprintln(out, tok.String())
		}
		return
	}

	p := parser.New(l, "")
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		messages := make([]string, len(errs))
		for i, e := range errs {
			messages[i] = e.Error()
		}
		ui.WriteParseErrors(out, messages, r.opts.Color)
		return
	}

	if r.opts.Mode == ModeParse {
		fmt.Fprintln(out, program.String())
		return
	}

	result := evaluator.Eval(program, r.env)
	if result == nil {
		return
	}
	if result.Type() == object.ERROR_OBJ {
		ui.WriteRuntimeError(out, result.Inspect(), r.opts.Color)
		return
	}
	fmt.Fprintln(out, result.Inspect())
}

func modeLabel(m Mode) string {
	switch m {
	case ModeLex:
		return "lexing"
	case ModeParse:
		return "parsing"
	default:
		return "evaluation"
	}
}
