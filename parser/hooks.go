package parser

import (
	"fmt"
	"strconv"

	"github.com/xiam/lene/lexer"
)

// Hook post-processes a token of a given type before it's placed in the
// tree. It can change the token value or type.
type Hook func(tok lexer.Token) (lexer.Token, error)

// NumberHook converts the text of a number into an int64 when it has no
// fractional part, and into a float64 otherwise. Integers too large for an
// int64 are kept as float64.
func NumberHook(tok lexer.Token) (lexer.Token, error) {
	text := tok.Text()
	if !isDecimal(text) {
		return tok, invalidNumber(tok, nil)
	}

	if i64, err := strconv.ParseInt(text, 10, 64); err == nil {
		return tok.WithValue(i64), nil
	}

	f64, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return tok, invalidNumber(tok, err)
	}
	return tok.WithValue(f64), nil
}

func invalidNumber(tok lexer.Token, err error) error {
	if err != nil {
		return fmt.Errorf("%w %q at line %d: %v", ErrInvalidNumber, tok.Text(), tok.Line(), err)
	}
	return fmt.Errorf("%w %q at line %d", ErrInvalidNumber, tok.Text(), tok.Line())
}

// isDecimal accepts an optional sign, digits and at most one dot.
func isDecimal(s string) bool {
	digits, dots := 0, 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		case (r == '-' || r == '+') && i == 0:
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
