package minipy

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Literals & identifiers
	NUMBER
	VARIABLE

	// Operators & punctuation
	PLUS      // "+"
	MINUS     // "-"
	MUL       // "*"
	DIV       // "/"
	EQ        // "="
	SEMICOLON // ";"
	LPAREN    // "("
	RPAREN    // ")"

	// Keywords
	LET
	PRINT
)

var tokenNames = [...]string{
	EOF:       "EOF",
	NUMBER:    "NUMBER",
	VARIABLE:  "VARIABLE",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	MUL:       "MUL",
	DIV:       "DIV",
	EQ:        "EQ",
	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LET:       "LET",
	PRINT:     "PRINT",
}

func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return "UNKNOWN"
}

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice
	Literal interface{} // int64 for NUMBER, name string for VARIABLE
	Line    int
	Col     int
}

// keywords map. Keywords are recognized after a full identifier scan, so
// names like "letter" stay identifiers.
var keywords = map[string]TokenType{
	"let":   LET,
	"print": PRINT,
}
