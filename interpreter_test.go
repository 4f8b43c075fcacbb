// interpreter_test.go
package minipy

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// --- helpers ---------------------------------------------------------------

type session struct {
	ip  *Interpreter
	out *bytes.Buffer
}

func newSession(t *testing.T, opts Options) *session {
	t.Helper()
	var buf bytes.Buffer
	return &session{ip: NewInterpreter(&buf, opts), out: &buf}
}

func (s *session) run(t *testing.T, src string) {
	t.Helper()
	if err := s.ip.EvalSource(src); err != nil {
		t.Fatalf("eval error for %q: %v", src, err)
	}
}

func (s *session) runErr(t *testing.T, src string) error {
	t.Helper()
	err := s.ip.EvalSource(src)
	if err == nil {
		t.Fatalf("want error for %q, got none", src)
	}
	return err
}

func (s *session) wantOutput(t *testing.T, want string) {
	t.Helper()
	if got := s.out.String(); got != want {
		t.Fatalf("output mismatch:\nwant %q\ngot  %q", want, got)
	}
	s.out.Reset()
}

func wantRuntimeKind(t *testing.T, err error, kind RuntimeErrorKind) *RuntimeError {
	t.Helper()
	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("want *RuntimeError, got %T: %v", err, err)
	}
	if re.Kind != kind {
		t.Fatalf("want kind %d, got %d (%s)", kind, re.Kind, re.Msg)
	}
	return re
}

func runLine(t *testing.T, src string) string {
	t.Helper()
	s := newSession(t, DefaultOptions())
	s.run(t, src)
	return s.out.String()
}

// --- tests -----------------------------------------------------------------

func TestEval_PrintLiteral(t *testing.T) {
	if got := runLine(t, "print 42;"); got != "42\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEval_Precedence(t *testing.T) {
	if got := runLine(t, "print 2 + 3 * 4;"); got != "14\n" {
		t.Fatalf("got %q", got)
	}
	if got := runLine(t, "print (2 + 3) * 4;"); got != "20\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEval_TrueDivision(t *testing.T) {
	// Non-integral quotients render in decimal form, exact ones as integers.
	if got := runLine(t, "print 7 / 2;"); got != "3.5\n" {
		t.Fatalf("got %q", got)
	}
	if got := runLine(t, "print 8 / 2;"); got != "4\n" {
		t.Fatalf("got %q", got)
	}
	if got := runLine(t, "print 1 / 3;"); !strings.HasPrefix(got, "0.333333") {
		t.Fatalf("got %q", got)
	}
}

func TestEval_RealsStayReal(t *testing.T) {
	s := newSession(t, DefaultOptions())
	s.run(t, "let h = 7 / 2;")
	s.run(t, "print h * 2;")
	// 3.5 * 2 is integral but stays a real; 'g' still renders it bare.
	s.wantOutput(t, "7\n")
	s.run(t, "print h + 1;")
	s.wantOutput(t, "4.5\n")
}

func TestEval_SessionStatePersists(t *testing.T) {
	s := newSession(t, DefaultOptions())
	s.run(t, "let x = 10;")
	s.run(t, "print x + 5;")
	s.wantOutput(t, "15\n")
	s.run(t, "let x = 2;")
	s.run(t, "print x;")
	s.wantOutput(t, "2\n")
}

func TestEval_DivisionByZero(t *testing.T) {
	s := newSession(t, DefaultOptions())
	wantRuntimeKind(t, s.runErr(t, "print 5 / 0;"), ErrDivisionByZero)
	wantRuntimeKind(t, s.runErr(t, "print 0 / 0;"), ErrDivisionByZero)
	s.run(t, "let z = 7 / 2;")
	wantRuntimeKind(t, s.runErr(t, "print z / 0;"), ErrDivisionByZero)
	s.wantOutput(t, "")
}

func TestEval_UndefinedVariableStrict(t *testing.T) {
	s := newSession(t, DefaultOptions())
	err := s.runErr(t, "print y;")
	re := wantRuntimeKind(t, err, ErrUndefinedVariable)
	if !strings.Contains(re.Msg, "y") {
		t.Fatalf("message should name the variable: %q", re.Msg)
	}
}

func TestEval_UndefinedVariableLenient(t *testing.T) {
	opts := DefaultOptions()
	opts.LenientVars = true
	s := newSession(t, opts)
	s.run(t, "print y;")
	s.wantOutput(t, "0\n")
	s.run(t, "print y + 3;")
	s.wantOutput(t, "3\n")
}

func TestEval_MalformedStatementLeavesEnvUnchanged(t *testing.T) {
	s := newSession(t, DefaultOptions())
	s.run(t, "let x = 1;")
	if err := s.ip.EvalSource("let = 5;"); err == nil {
		t.Fatal("want parse error")
	}
	if s.ip.Global.Len() != 1 {
		t.Fatalf("env grew to %d bindings", s.ip.Global.Len())
	}
	if v, ok := s.ip.Global.Get("x"); !ok || v.Tag != VTInt || v.Data.(int64) != 1 {
		t.Fatalf("x changed: %#v", v)
	}
}

func TestEval_FailureKeepsEarlierEffects(t *testing.T) {
	s := newSession(t, DefaultOptions())
	err := s.ip.EvalSource("let a = 1; print a; let b = 2 / 0; print 3;")
	wantRuntimeKind(t, err, ErrDivisionByZero)
	// a was bound and printed before the failure; b and the last print never ran.
	s.wantOutput(t, "1\n")
	if _, ok := s.ip.Global.Get("a"); !ok {
		t.Fatal("a should remain bound")
	}
	if _, ok := s.ip.Global.Get("b"); ok {
		t.Fatal("b must not be bound")
	}
}

func TestEval_LeftToRightOperandOrder(t *testing.T) {
	// The undefined left operand fails before the division by zero is seen.
	s := newSession(t, DefaultOptions())
	wantRuntimeKind(t, s.runErr(t, "print nope / 0;"), ErrUndefinedVariable)
}

func TestEval_NegativeResults(t *testing.T) {
	if got := runLine(t, "print 3 - 5;"); got != "-2\n" {
		t.Fatalf("got %q", got)
	}
	if got := runLine(t, "print (3 - 5) / 2;"); got != "-1\n" {
		t.Fatalf("got %q", got)
	}
}
