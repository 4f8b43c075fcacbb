package minipy

import "fmt"

// Parser is a recursive-descent consumer of the lexer's token stream with
// one token of lookahead. eat is the sole consumption primitive; any kind
// mismatch aborts the parse immediately with a ParseError. No semantic
// checks happen here.
type Parser struct {
	lex  *Lexer
	cur  Token
	opts Options
}

// NewParser wraps a lexer and primes the lookahead token.
func NewParser(lex *Lexer, opts Options) (*Parser, error) {
	p := &Parser{lex: lex, opts: opts}
	tok, err := lex.Next()
	if err != nil {
		return nil, err
	}
	p.cur = tok
	return p, nil
}

// Parse tokenizes and parses src into a statement list.
func Parse(src string, opts Options) ([]Stmt, error) {
	lex := NewLexer(src)
	lex.comments = opts.Comments
	p, err := NewParser(lex, opts)
	if err != nil {
		return nil, err
	}
	return p.Program()
}

// ----- errors -----

// ParseError reports an expected-vs-actual token kind mismatch.
// Col is 0-based.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func (p *Parser) errf(format string, args ...interface{}) error {
	return &ParseError{Line: p.cur.Line, Col: p.cur.Col, Msg: fmt.Sprintf(format, args...)}
}

// eat asserts the current token's kind, then advances past it.
func (p *Parser) eat(tt TokenType) (Token, error) {
	if p.cur.Type != tt {
		return Token{}, p.errf("unexpected token: want %s, got %s", tt, p.cur.Type)
	}
	tok := p.cur
	next, err := p.lex.Next()
	if err != nil {
		return Token{}, err
	}
	p.cur = next
	return tok, nil
}

// ----- grammar -----
//
//	program   := statement* EOF
//	statement := ( "let" VARIABLE "=" expr | VARIABLE "=" expr | "print" expr ) [ ";" ]
//	expr      := term (("+"|"-") term)*
//	term      := factor (("*"|"/") factor)*
//	factor    := NUMBER | VARIABLE | "(" expr ")"

// Program parses the whole input into an ordered statement list.
func (p *Parser) Program() ([]Stmt, error) {
	var stmts []Stmt
	for p.cur.Type != EOF {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *Parser) statement() (Stmt, error) {
	switch p.cur.Type {
	case LET:
		if _, err := p.eat(LET); err != nil {
			return nil, err
		}
		return p.assignTail()
	case VARIABLE:
		if !p.opts.AllowBareAssign {
			return nil, p.errf("unexpected token: want LET or PRINT, got %s", p.cur.Type)
		}
		return p.assignTail()
	case PRINT:
		if _, err := p.eat(PRINT); err != nil {
			return nil, err
		}
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.terminator(); err != nil {
			return nil, err
		}
		return &Print{Expr: e}, nil
	default:
		return nil, p.errf("unexpected token: want LET or PRINT, got %s", p.cur.Type)
	}
}

// assignTail parses VARIABLE "=" expr [";"] after any leading let.
func (p *Parser) assignTail() (Stmt, error) {
	name, err := p.eat(VARIABLE)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(EQ); err != nil {
		return nil, err
	}
	value, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.terminator(); err != nil {
		return nil, err
	}
	return &Assign{Name: name.Literal.(string), Value: value}, nil
}

// terminator consumes the statement's trailing ';' when present. Its
// absence is tolerated unless RequireSemicolon is set and another
// statement follows.
func (p *Parser) terminator() error {
	if p.cur.Type == SEMICOLON {
		_, err := p.eat(SEMICOLON)
		return err
	}
	if p.opts.RequireSemicolon && p.cur.Type != EOF {
		_, err := p.eat(SEMICOLON)
		return err
	}
	return nil
}

func (p *Parser) expr() (Expr, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == PLUS || p.cur.Type == MINUS {
		op := p.cur.Type
		if _, err := p.eat(op); err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		node = &BinOp{Left: node, Op: op, Right: right}
	}
	return node, nil
}

func (p *Parser) term() (Expr, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == MUL || p.cur.Type == DIV {
		op := p.cur.Type
		if _, err := p.eat(op); err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		node = &BinOp{Left: node, Op: op, Right: right}
	}
	return node, nil
}

func (p *Parser) factor() (Expr, error) {
	switch p.cur.Type {
	case NUMBER:
		tok, err := p.eat(NUMBER)
		if err != nil {
			return nil, err
		}
		return &Num{Value: tok.Literal.(int64)}, nil
	case VARIABLE:
		tok, err := p.eat(VARIABLE)
		if err != nil {
			return nil, err
		}
		return &Var{Name: tok.Literal.(string)}, nil
	case LPAREN:
		if _, err := p.eat(LPAREN); err != nil {
			return nil, err
		}
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(RPAREN); err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, p.errf("unexpected token: want NUMBER, VARIABLE or LPAREN, got %s", p.cur.Type)
	}
}
