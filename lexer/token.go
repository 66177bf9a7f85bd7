package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit). Tokens are
// values; their fields can only be read.
type Token struct {
	tt     TokenType
	lexeme string
	value  interface{}

	line int
	col  int
}

// NewToken creates a lexical unit whose value is its raw text
func NewToken(tt TokenType, lexeme string, line int, col int) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		value:  lexeme,
		line:   line,
		col:    col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line (1-based) and column (offset from the last newline)
// of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Line returns the 1-based line of the lexical unit
func (t Token) Line() int {
	return t.line
}

// Column returns the column of the lexical unit
func (t Token) Column() int {
	return t.col
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Value returns the value of the lexical unit, which is its text unless a
// post-processing step converted it.
func (t Token) Value() interface{} {
	return t.value
}

// WithValue returns a copy of the token carrying the given value.
func (t Token) WithValue(v interface{}) Token {
	t.value = v
	return t
}

// WithType returns a copy of the token with a different type.
func (t Token) WithType(tt TokenType) Token {
	t.tt = tt
	return t
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt.Name(), t.lexeme, t.line, t.col)
}
