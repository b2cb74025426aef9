package errors

import (
	"strings"
	"testing"

	"github.com/hyperaprog/hio/internal/token"
)

func TestFormatIncludesFileLineAndCaret(t *testing.T) {
	src := "let x = ;\n"
	e := NewCompilerError(token.Position{Line: 1, Column: 9}, "Expected INT, got ;", src, "test.hio")
	out := e.Format(false)
	if !strings.Contains(out, "test.hio:1:9") {
		t.Errorf("Format() missing file:line:col header: %s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("Format() missing caret: %s", out)
	}
	if !strings.Contains(out, "Expected INT, got ;") {
		t.Errorf("Format() missing message: %s", out)
	}
}

func TestFormatWithoutFileUsesLineHeader(t *testing.T) {
	e := NewCompilerError(token.Position{Line: 2, Column: 1}, "boom", "a\nb\n", "")
	out := e.Format(false)
	if !strings.Contains(out, "Error at line 2:1") {
		t.Errorf("Format() = %q, missing line header", out)
	}
}

func TestFormatErrorsSingle(t *testing.T) {
	e := NewCompilerError(token.Position{Line: 1, Column: 1}, "boom", "x", "f.hio")
	out := FormatErrors([]*CompilerError{e}, false)
	if out != e.Format(false) {
		t.Errorf("FormatErrors() with one error should equal that error's own Format()")
	}
}

func TestFormatErrorsMultiple(t *testing.T) {
	e1 := NewCompilerError(token.Position{Line: 1, Column: 1}, "first", "x", "f.hio")
	e2 := NewCompilerError(token.Position{Line: 2, Column: 1}, "second", "x", "f.hio")
	out := FormatErrors([]*CompilerError{e1, e2}, false)
	if !strings.Contains(out, "2 error(s)") {
		t.Errorf("FormatErrors() missing error count: %s", out)
	}
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("FormatErrors() missing one of the messages: %s", out)
	}
}

func TestFormatErrorsEmpty(t *testing.T) {
	if out := FormatErrors(nil, false); out != "" {
		t.Errorf("FormatErrors(nil) = %q, want empty", out)
	}
}

func TestFromStringErrorsExtractsPosition(t *testing.T) {
	errs := FromStringErrors([]string{"Expected INT, got ; at 3:5"}, "source", "f.hio")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Pos.Line != 3 || errs[0].Pos.Column != 5 {
		t.Errorf("Pos = %+v, want {3 5}", errs[0].Pos)
	}
	if errs[0].Message != "Expected INT, got ;" {
		t.Errorf("Message = %q, want stripped of position suffix", errs[0].Message)
	}
}

func TestFromStringErrorsWithoutPosition(t *testing.T) {
	errs := FromStringErrors([]string{"something went wrong"}, "source", "f.hio")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Pos.Line != 0 || errs[0].Pos.Column != 0 {
		t.Errorf("Pos = %+v, want zero value when no position is present", errs[0].Pos)
	}
	if errs[0].Message != "something went wrong" {
		t.Errorf("Message = %q, want unchanged", errs[0].Message)
	}
}

func TestFormatWithContextIncludesSurroundingLines(t *testing.T) {
	src := "line1\nline2\nline3\nline4\nline5\n"
	e := NewCompilerError(token.Position{Line: 3, Column: 1}, "boom", src, "f.hio")
	out := e.FormatWithContext(1, false)
	if !strings.Contains(out, "line2") || !strings.Contains(out, "line3") || !strings.Contains(out, "line4") {
		t.Errorf("FormatWithContext(1) missing context lines: %s", out)
	}
}
