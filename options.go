package minipy

// Options selects between the strict and lenient dialects of the
// grammar. The zero value is the strict dialect without comments;
// DefaultOptions is the strict dialect with comments.
type Options struct {
	// AllowBareAssign permits `x = expr` without the let keyword.
	AllowBareAssign bool `yaml:"allow_bare_assignment"`

	// RequireSemicolon demands a ';' after every statement that is not
	// the last one before EOF. When unset the trailing ';' is always
	// optional.
	RequireSemicolon bool `yaml:"require_semicolon"`

	// Comments enables '#' line comments; with the flag off a '#' is an
	// invalid character.
	Comments bool `yaml:"comments"`

	// LenientVars substitutes 0 for reads of unbound variables instead
	// of failing. The policy applies to the whole session.
	LenientVars bool `yaml:"lenient_vars"`
}

// DefaultOptions is the strict dialect: let required, ';' optional,
// comments supported, unbound reads fail.
func DefaultOptions() Options {
	return Options{Comments: true}
}
