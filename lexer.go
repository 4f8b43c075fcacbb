package minipy

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer scans a MiniPy source string into tokens.
type Lexer struct {
	src   string
	start int // start index of current token
	cur   int // current index
	line  int // 1-based
	col   int // 0-based column within line

	comments bool // '#' starts a line comment when set

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source with '#' line
// comments enabled.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:      src,
		line:     1,
		col:      0,
		comments: true,
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) make(tt TokenType, lit interface{}) Token {
	return Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	}
}

// skipWhitespace consumes any run of Unicode whitespace.
func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		r, size := utf8.DecodeRuneInString(l.src[l.cur:])
		if !unicode.IsSpace(r) {
			return
		}
		for i := 0; i < size; i++ {
			l.advance()
		}
	}
}

// skipComment eats through the next newline (or end of input).
func (l *Lexer) skipComment() {
	for {
		b, ok := l.peek()
		if !ok {
			return
		}
		l.advance()
		if b == '\n' {
			return
		}
	}
}

// helpers

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}

// ----- errors -----

// LexError reports an unrecognized character. Col is 0-based.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.line, Col: l.col, Msg: msg}
}

// ----- scanners -----

// scanIdentifier parses [A-Za-z_][A-Za-z0-9_]*
func (l *Lexer) scanIdentifier() string {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	return l.src[l.start:l.cur]
}

// scanNumber parses a non-negative decimal integer. No sign, decimal
// point, or exponent; division may still produce non-integer values.
func (l *Lexer) scanNumber() (interface{}, error) {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}
	lex := l.src[l.start:l.cur]
	v, convErr := strconv.ParseInt(lex, 10, 64)
	if convErr != nil {
		return nil, l.err("invalid integer literal")
	}
	return v, nil
}

// ----- main scanner -----

// Next scans and returns the next token. After the source is exhausted it
// keeps returning EOF tokens without erroring.
func (l *Lexer) Next() (Token, error) {
	for {
		l.skipWhitespace()
		l.tokStartLine = l.line
		l.tokStartCol = l.col
		l.start = l.cur

		if l.isAtEnd() {
			return l.make(EOF, nil), nil
		}

		ch, _ := l.peek()

		if ch == '#' && l.comments {
			l.advance()
			l.skipComment()
			continue
		}

		switch ch {
		case '+':
			l.advance()
			return l.make(PLUS, nil), nil
		case '-':
			l.advance()
			return l.make(MINUS, nil), nil
		case '*':
			l.advance()
			return l.make(MUL, nil), nil
		case '/':
			l.advance()
			return l.make(DIV, nil), nil
		case '=':
			l.advance()
			return l.make(EQ, nil), nil
		case ';':
			l.advance()
			return l.make(SEMICOLON, nil), nil
		case '(':
			l.advance()
			return l.make(LPAREN, nil), nil
		case ')':
			l.advance()
			return l.make(RPAREN, nil), nil
		}

		if isDigit(ch) {
			lit, err := l.scanNumber()
			if err != nil {
				return Token{}, err
			}
			return l.make(NUMBER, lit), nil
		}

		if isAlpha(ch) {
			lex := l.scanIdentifier()
			if tt, ok := keywords[lex]; ok {
				return l.make(tt, lex), nil
			}
			return l.make(VARIABLE, lex), nil
		}

		// Report the full rune, not its leading byte.
		r, _ := utf8.DecodeRuneInString(l.src[l.start:])
		return Token{}, &LexError{
			Line: l.tokStartLine,
			Col:  l.tokStartCol,
			Msg:  fmt.Sprintf("unexpected character: %q", r),
		}
	}
}

// Scan tokenizes the entire source and returns tokens (EOF included).
func (l *Lexer) Scan() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
