package minipy

// The syntax tree is a closed set of node variants. Nodes are immutable
// once constructed; evaluation only reads them and mutates the Env.
// Ownership is strictly hierarchical: each child belongs to exactly one
// parent, no sharing, no cycles.

// Node is implemented by every syntax tree variant.
type Node interface {
	node()
}

// Stmt is a top-level statement. A parsed program is an ordered []Stmt,
// evaluated left to right.
type Stmt interface {
	Node
	stmt()
}

// Expr is an expression node; evaluating one yields a numeric value.
type Expr interface {
	Node
	expr()
}

// Num is a non-negative integer literal.
type Num struct {
	Value int64
}

// Var references a variable by name.
type Var struct {
	Name string
}

// BinOp applies a binary operator to two subexpressions. Op is one of
// PLUS, MINUS, MUL, DIV.
type BinOp struct {
	Left  Expr
	Op    TokenType
	Right Expr
}

// Assign binds the result of Value to Name. This is the only mutation
// path into the environment.
type Assign struct {
	Name  string
	Value Expr
}

// Print evaluates Expr and writes the result to the session output.
type Print struct {
	Expr Expr
}

func (*Num) node()    {}
func (*Var) node()    {}
func (*BinOp) node()  {}
func (*Assign) node() {}
func (*Print) node()  {}

func (*Num) expr()   {}
func (*Var) expr()   {}
func (*BinOp) expr() {}

func (*Assign) stmt() {}
func (*Print) stmt()  {}
