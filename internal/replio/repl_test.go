package replio

import (
	"bytes"
	"strings"
	"testing"
)

func TestEvalLinePrintsResultWithArrowPrefix(t *testing.T) {
	var buf bytes.Buffer
	r := New("hio> ", &buf)
	r.evalLine(&buf, `1 + 2;`)
	if got := strings.TrimSpace(buf.String()); !strings.Contains(got, "=> 3") {
		t.Errorf("evalLine output = %q, want to contain \"=> 3\"", got)
	}
}

func TestEvalLineSuppressesVoidResult(t *testing.T) {
	var buf bytes.Buffer
	r := New("hio> ", &buf)
	r.evalLine(&buf, `let x = 1;`)
	if buf.Len() != 0 {
		t.Errorf("evalLine output for a Void result = %q, want empty", buf.String())
	}
}

func TestEvalLineReportsParseError(t *testing.T) {
	var buf bytes.Buffer
	r := New("hio> ", &buf)
	r.evalLine(&buf, `let x = ;`)
	if !strings.Contains(buf.String(), "Error:") {
		t.Errorf("evalLine output = %q, want an Error: line", buf.String())
	}
}

func TestEvalLineReportsRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	r := New("hio> ", &buf)
	r.evalLine(&buf, `print(missing);`)
	if !strings.Contains(buf.String(), "Error:") {
		t.Errorf("evalLine output = %q, want an Error: line", buf.String())
	}
}

func TestEvalLineKeepsNoStateBetweenLines(t *testing.T) {
	// Each line gets a fresh Interpreter, so a variable set on one line
	// must not be visible to the next: the REPL maintains no state between
	// inputs.
	var buf bytes.Buffer
	r := New("hio> ", &buf)
	r.evalLine(&buf, `let x = 10;`)
	buf.Reset()
	r.evalLine(&buf, `print(x);`)
	if !strings.Contains(buf.String(), "Error:") {
		t.Errorf("evalLine output = %q, want an Error: line for an undefined x", buf.String())
	}
}

func TestEvalLineParseErrorDoesNotAffectLaterLines(t *testing.T) {
	var buf bytes.Buffer
	r := New("hio> ", &buf)
	r.evalLine(&buf, `let x = ;`)
	buf.Reset()
	r.evalLine(&buf, `print(1 + 1);`)
	if got := strings.TrimSpace(buf.String()); got != "2" {
		t.Errorf("evalLine output = %q, want 2", got)
	}
}
