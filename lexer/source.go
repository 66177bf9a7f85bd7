package lexer

// Source is a sequence of tokens consumed one at a time. *Scanner
// implements it.
type Source interface {
	Next() bool
	Token() Token
	Err() error
}

type sliceSource struct {
	tokens []Token
	i      int
}

// Slice wraps an already built list of tokens into a Source.
func Slice(tokens []Token) Source {
	return &sliceSource{tokens: tokens, i: -1}
}

func (s *sliceSource) Next() bool {
	if s.i+1 >= len(s.tokens) {
		s.i = len(s.tokens)
		return false
	}
	s.i++
	return true
}

func (s *sliceSource) Token() Token {
	if s.i < 0 || s.i >= len(s.tokens) {
		return Token{}
	}
	return s.tokens[s.i]
}

func (s *sliceSource) Err() error {
	return nil
}

var (
	_ = Source(&Scanner{})
	_ = Source(&sliceSource{})
)
