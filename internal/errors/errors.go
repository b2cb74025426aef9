// Package errors turns the plain error strings the lexer, parser, and
// evaluator return into diagnostics with a source excerpt and a caret
// pointing at the offending column. Lifting happens only at the CLI
// boundary (see cmd/hio/cmd); nothing in the lexer/parser/interp packages
// depends on this one.
package errors

import (
	"fmt"
	"strings"

	"github.com/hyperaprog/hio/internal/token"
)

// CompilerError is a single diagnostic tied to a position in some source.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// NewCompilerError builds a CompilerError for the given position and source.
func NewCompilerError(pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// Error satisfies the error interface via an uncolored Format.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

func (e *CompilerError) header() string {
	if e.File != "" {
		return fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
}

// gutter is the "NNNN | " prefix shown before a source line; its width
// determines how far the caret on the following line must be indented.
func gutter(lineNum int) string {
	return fmt.Sprintf("%4d | ", lineNum)
}

func writeCaret(sb *strings.Builder, indent int, color bool) {
	sb.WriteString(strings.Repeat(" ", indent))
	if color {
		sb.WriteString("\033[1;31m") // Red bold
	}
	sb.WriteString("^")
	if color {
		sb.WriteString("\033[0m")
	}
	sb.WriteString("\n")
}

// Format renders the error as a header line, one line of source with a
// caret under the offending column, then the message. If color is true,
// ANSI escapes highlight the caret and message for a terminal.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder
	sb.WriteString(e.header())

	if line := e.sourceLine(e.Pos.Line); line != "" {
		g := gutter(e.Pos.Line)
		sb.WriteString(g)
		sb.WriteString(line)
		sb.WriteString("\n")
		writeCaret(&sb, len(g)+e.Pos.Column-1, color)
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// sourceLine returns the 1-indexed line lineNum from the error's source,
// or "" if Source is empty or lineNum falls outside it.
func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// sourceWindow returns the lines from (lineNum-before) to (lineNum+after),
// clamped to the source's bounds, plus the (1-indexed) line number of the
// first returned line.
func (e *CompilerError) sourceWindow(lineNum, before, after int) ([]string, int) {
	if e.Source == "" {
		return nil, 0
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return nil, 0
	}

	start := lineNum - before
	if start < 1 {
		start = 1
	}
	end := lineNum + after
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start-1 : end], start
}

// FormatWithContext is like Format but shows contextLines of surrounding
// source above and below the error line, dimming the context and bolding
// the error line itself. It falls back to Format when the error carries
// no source (e.g. a bare runtime error with no file attached). Wired up
// behind the "run"/"compile" subcommands' --context flag.
func (e *CompilerError) FormatWithContext(contextLines int, color bool) string {
	window, startLine := e.sourceWindow(e.Pos.Line, contextLines, contextLines)
	if len(window) == 0 {
		return e.Format(color)
	}

	var sb strings.Builder
	sb.WriteString(e.header())

	for i, line := range window {
		lineNum := startLine + i
		g := gutter(lineNum)
		if lineNum == e.Pos.Line {
			if color {
				sb.WriteString("\033[1m")
			}
			sb.WriteString(g)
			sb.WriteString(line)
			if color {
				sb.WriteString("\033[0m")
			}
			sb.WriteString("\n")
			writeCaret(&sb, len(g)+e.Pos.Column-1, color)
		} else {
			if color {
				sb.WriteString("\033[2m") // Dim
			}
			sb.WriteString(g)
			sb.WriteString(line)
			if color {
				sb.WriteString("\033[0m")
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// FormatErrors renders one or more errors: a lone error is just its own
// Format, while multiple errors are numbered "[Error i of n]" under a
// summary count.
func FormatErrors(errors []*CompilerError, color bool) string {
	return formatAll(errors, color, (*CompilerError).Format)
}

// FormatErrorsWithContext is FormatErrors using FormatWithContext for each
// individual error's rendering.
func FormatErrorsWithContext(errors []*CompilerError, contextLines int, color bool) string {
	return formatAll(errors, color, func(e *CompilerError, color bool) string {
		return e.FormatWithContext(contextLines, color)
	})
}

func formatAll(errors []*CompilerError, color bool, render func(*CompilerError, bool) string) string {
	if len(errors) == 0 {
		return ""
	}
	if len(errors) == 1 {
		return render(errors[0], color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compilation failed with %d error(s):\n\n", len(errors)))
	for i, err := range errors {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errors)))
		sb.WriteString(render(err, color))
		if i < len(errors)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// FromStringErrors lifts the plain error strings returned by the parser
// into CompilerErrors, pairing each with the source/file it came from.
func FromStringErrors(stringErrors []string, source, file string) []*CompilerError {
	errors := make([]*CompilerError, 0, len(stringErrors))
	for _, errStr := range stringErrors {
		pos, message := parseErrorString(errStr)
		errors = append(errors, NewCompilerError(pos, message, source, file))
	}
	return errors
}

// parseErrorString splits a parser error of the form "message at LINE:COL"
// into its message and position. Errors with no " at " suffix (or a
// malformed one) keep the zero position and their text unchanged.
func parseErrorString(errStr string) (token.Position, string) {
	atIndex := strings.LastIndex(errStr, " at ")
	if atIndex == -1 {
		return token.Position{Line: 0, Column: 0}, errStr
	}

	posStr := errStr[atIndex+4:]
	message := strings.TrimSpace(errStr[:atIndex])

	var line, column int
	if _, err := fmt.Sscanf(posStr, "%d:%d", &line, &column); err != nil {
		return token.Position{Line: 0, Column: 0}, errStr
	}
	return token.Position{Line: line, Column: column}, message
}
