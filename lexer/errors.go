package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrInvalidRule         = errors.New("invalid grammar rule")
	ErrEmptyMatch          = errors.New("rule matched an empty string")
)

// LexicalError reports a position where no grammar rule matches.
type LexicalError struct {
	Char   rune
	Line   int
	Column int
	Err    error
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%v %q on line %d", e.Err, e.Char, e.Line)
}

func (e *LexicalError) Unwrap() error {
	return e.Err
}
