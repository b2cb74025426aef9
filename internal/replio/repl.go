// Package replio implements the interactive read-eval-print loop used by
// the "repl" subcommand: line editing and history via readline, colorized
// output via fatih/color.
package replio

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/hyperaprog/hio/internal/interp"
	"github.com/hyperaprog/hio/internal/lexer"
	"github.com/hyperaprog/hio/internal/parser"
	"github.com/hyperaprog/hio/internal/value"
)

var (
	resultColor = color.New(color.FgCyan)
	errColor    = color.New(color.FgRed)
	bannerColor = color.New(color.FgGreen)
)

// REPL is one interactive session. Each line gets a fresh Interpreter, so
// no state (variables, scopes) carries over from one line to the next.
type REPL struct {
	Prompt string
}

// New creates a REPL with the given prompt. out is accepted for
// symmetry with Run's signature but a REPL holds no output-bound state
// of its own between lines.
func New(prompt string, out io.Writer) *REPL {
	return &REPL{Prompt: prompt}
}

// Run starts the read-eval-print loop, writing banner/output to out and
// reading lines via readline until "exit" or EOF.
func (r *REPL) Run(out io.Writer) error {
	bannerColor.Fprintln(out, "hio REPL")
	fmt.Fprintln(out, "Type 'exit' to quit, 'help' for commands")
	fmt.Fprintln(out)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		trimmed := strings.TrimSpace(line)
		switch trimmed {
		case "":
			continue
		case "exit":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		case "help":
			fmt.Fprintln(out, "Commands:")
			fmt.Fprintln(out, "  exit  - Exit the REPL")
			fmt.Fprintln(out, "  help  - Show this message")
			fmt.Fprintln(out, "  clear - Clear the screen")
			continue
		case "clear":
			fmt.Fprint(out, "\x1b[2J\x1b[1;1H")
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(out, trimmed)
	}
}

func (r *REPL) evalLine(out io.Writer, line string) {
	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		errColor.Fprintf(out, "Error: %s\n", errs[0])
		return
	}

	i := interp.New()
	i.SetOutput(out)
	result, err := i.Run(program)
	if err != nil {
		errColor.Fprintf(out, "Error: %s\n", err)
		return
	}
	if _, isVoid := result.(value.Void); !isVoid {
		resultColor.Fprintf(out, "=> %s\n", result.String())
	}
}
