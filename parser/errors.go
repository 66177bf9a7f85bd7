package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lene/lexer"
)

var (
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrMaxDepth              = errors.New("maximum nesting depth exceeded")
	ErrInvalidNumber         = errors.New("invalid number")
)

// SyntacticError reports a token stream that does not form a tree. Token is
// the offending token; for unclosed groups it's the opening parenthesis left
// without a match.
type SyntacticError struct {
	Err   error
	Token lexer.Token
	Depth int
}

func (e *SyntacticError) Error() string {
	line, col := e.Token.Pos()
	return fmt.Sprintf("%v: %q at line %d, column %d (depth %d)", e.Err, e.Token.Text(), line, col, e.Depth)
}

func (e *SyntacticError) Unwrap() error {
	return e.Err
}
