package minipy

import (
	"fmt"
	"io"
)

// Version is reported by the REPL banner.
const Version = "0.2.0"

// RuntimeErrorKind classifies evaluation failures.
type RuntimeErrorKind int

const (
	// ErrUndefinedVariable: a read of an unbound name under the strict
	// policy.
	ErrUndefinedVariable RuntimeErrorKind = iota
	// ErrDivisionByZero: the right operand of '/' evaluated to zero.
	ErrDivisionByZero
	// ErrUnhandledNode: an AST variant the evaluator does not know.
	// This is an internal defect, never a user-facing condition.
	ErrUnhandledNode
)

// RuntimeError represents an evaluation failure.
type RuntimeError struct {
	Kind RuntimeErrorKind
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR: %s", e.Msg)
}

// Interpreter is one interactive session: a persistent environment plus
// the output stream print statements write to. Construct it once at
// session start; the environment survives across lines and dies with the
// session. Single-threaded by design — one evaluator owns one Env.
type Interpreter struct {
	// Global is the session environment. Exposed so hosts can inspect
	// bindings; programs mutate it only through assignment.
	Global *Env

	out  io.Writer
	opts Options
}

// NewInterpreter creates a session writing print output to out.
func NewInterpreter(out io.Writer, opts Options) *Interpreter {
	return &Interpreter{Global: NewEnv(), out: out, opts: opts}
}

// EvalSource lexes, parses and evaluates one line of source against the
// persistent environment. On failure the line is abandoned at the first
// error; statements fully evaluated before that point keep their effects.
func (ip *Interpreter) EvalSource(src string) error {
	stmts, err := Parse(src, ip.opts)
	if err != nil {
		return err
	}
	return ip.Eval(stmts)
}

// Eval executes statements in order, stopping at the first failure.
func (ip *Interpreter) Eval(stmts []Stmt) error {
	for _, s := range stmts {
		if err := ip.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interpreter) exec(s Stmt) error {
	switch n := s.(type) {
	case *Assign:
		v, err := ip.eval(n.Value)
		if err != nil {
			return err
		}
		ip.Global.Set(n.Name, v)
		return nil
	case *Print:
		v, err := ip.eval(n.Expr)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ip.out, v.String())
		return err
	default:
		return &RuntimeError{
			Kind: ErrUnhandledNode,
			Msg:  fmt.Sprintf("no handler for statement node %T", s),
		}
	}
}

func (ip *Interpreter) eval(e Expr) (Value, error) {
	switch n := e.(type) {
	case *Num:
		return IntVal(n.Value), nil
	case *Var:
		v, ok := ip.Global.Get(n.Name)
		if !ok {
			if ip.opts.LenientVars {
				return IntVal(0), nil
			}
			return Value{}, &RuntimeError{
				Kind: ErrUndefinedVariable,
				Msg:  fmt.Sprintf("undefined variable: %s", n.Name),
			}
		}
		return v, nil
	case *BinOp:
		// Left before right, always; associativity never reorders this.
		l, err := ip.eval(n.Left)
		if err != nil {
			return Value{}, err
		}
		r, err := ip.eval(n.Right)
		if err != nil {
			return Value{}, err
		}
		return ip.arith(n.Op, l, r)
	default:
		return Value{}, &RuntimeError{
			Kind: ErrUnhandledNode,
			Msg:  fmt.Sprintf("no handler for expression node %T", e),
		}
	}
}

// arith applies a binary operator. '/' is true division: exact integer
// quotients stay integers, everything else widens to a real. Division by
// zero fails regardless of the left operand.
func (ip *Interpreter) arith(op TokenType, l, r Value) (Value, error) {
	if l.Tag == VTInt && r.Tag == VTInt {
		a, b := l.Data.(int64), r.Data.(int64)
		switch op {
		case PLUS:
			return IntVal(a + b), nil
		case MINUS:
			return IntVal(a - b), nil
		case MUL:
			return IntVal(a * b), nil
		case DIV:
			if b == 0 {
				return Value{}, ip.divZero()
			}
			if a%b == 0 {
				return IntVal(a / b), nil
			}
			return NumVal(float64(a) / float64(b)), nil
		}
	} else {
		a, b := asFloat(l), asFloat(r)
		switch op {
		case PLUS:
			return NumVal(a + b), nil
		case MINUS:
			return NumVal(a - b), nil
		case MUL:
			return NumVal(a * b), nil
		case DIV:
			if b == 0 {
				return Value{}, ip.divZero()
			}
			return NumVal(a / b), nil
		}
	}
	return Value{}, &RuntimeError{
		Kind: ErrUnhandledNode,
		Msg:  fmt.Sprintf("no handler for operator %s", op),
	}
}

func (ip *Interpreter) divZero() error {
	return &RuntimeError{Kind: ErrDivisionByZero, Msg: "division by zero"}
}
