package lexer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

type lexState func(*Scanner) lexState

// Option configures a Tokenizer
type Option func(*Tokenizer)

// WithRules adds rules to the grammar, or replaces the pattern of rules that
// already exist.
func WithRules(rules ...Rule) Option {
	return func(tk *Tokenizer) {
		tk.grammar = tk.grammar.With(rules...)
	}
}

// WithGrammar replaces the whole grammar.
func WithGrammar(g Grammar) Option {
	return func(tk *Tokenizer) {
		tk.grammar = Grammar{}.With(g...)
	}
}

// WithKeywords turns words equal to any of the given strings into tokens
// whose type is the keyword itself.
func WithKeywords(words ...string) Option {
	return func(tk *Tokenizer) {
		for _, w := range words {
			tk.keywords[w] = struct{}{}
		}
	}
}

// Tokenizer splits text into tokens using an ordered grammar. Its
// configuration is fixed at construction and it can be shared by
// concurrent callers.
type Tokenizer struct {
	grammar  Grammar
	keywords map[string]struct{}

	once   sync.Once
	re     *regexp.Regexp
	groups []int
	err    error
}

// NewTokenizer creates a Tokenizer for the default grammar modified by the
// given options.
func NewTokenizer(opts ...Option) *Tokenizer {
	tk := &Tokenizer{
		grammar:  DefaultGrammar(),
		keywords: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(tk)
	}
	return tk
}

// Grammar returns a copy of the tokenizer grammar.
func (tk *Tokenizer) Grammar() Grammar {
	return Grammar{}.With(tk.grammar...)
}

// Keywords returns the configured keywords, sorted.
func (tk *Tokenizer) Keywords() []string {
	words := make([]string, 0, len(tk.keywords))
	for w := range tk.keywords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// IsKeyword reports whether the given word is a keyword.
func (tk *Tokenizer) IsKeyword(word string) bool {
	_, ok := tk.keywords[word]
	return ok
}

// Matcher returns the compiled grammar. It's compiled the first time it's
// needed and reused afterwards.
func (tk *Tokenizer) Matcher() (*regexp.Regexp, error) {
	tk.once.Do(tk.compile)
	return tk.re, tk.err
}

func (tk *Tokenizer) compile() {
	alternatives := make([]string, 0, len(tk.grammar))
	for _, r := range tk.grammar {
		if !isRuleName(r.Type) {
			tk.err = fmt.Errorf("%w: bad name %q", ErrInvalidRule, r.Type)
			return
		}
		if r.Pattern == "" {
			tk.err = fmt.Errorf("%w: empty pattern for %q", ErrInvalidRule, r.Type)
			return
		}
		alternatives = append(alternatives, fmt.Sprintf("(?P<%s>%s)", r.Type, r.Pattern))
	}

	// A keyword named like a rule would be taken for that rule's tokens.
	for _, w := range tk.Keywords() {
		tt := TokenType(w)
		_, inGrammar := tk.grammar.Pattern(tt)
		_, builtin := defaultGrammar.Pattern(tt)
		if inGrammar || builtin {
			tk.err = fmt.Errorf("%w: keyword %q shadows a rule", ErrInvalidRule, w)
			return
		}
	}

	re, err := regexp.Compile(`^(?:` + strings.Join(alternatives, "|") + `)`)
	if err != nil {
		tk.err = fmt.Errorf("%w: %v", ErrInvalidRule, err)
		return
	}

	groups := make([]int, len(tk.grammar))
	for i, r := range tk.grammar {
		groups[i] = re.SubexpIndex(string(r.Type))
	}
	tk.re, tk.groups = re, groups
}

// Tokenize returns a Scanner that lazily produces the tokens in text.
func (tk *Tokenizer) Tokenize(text string) *Scanner {
	return newScanner(tk, text, false)
}

// Split returns every lexeme matched in text, including the whitespace and
// newlines that Tokenize skips. Joining the result yields text back.
func (tk *Tokenizer) Split(text string) ([]string, error) {
	s := newScanner(tk, text, true)
	lexemes := []string{}
	for s.Next() {
		lexemes = append(lexemes, s.Token().Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lexemes, nil
}

// Scanner walks over a text one token at a time
type Scanner struct {
	tk     *Tokenizer
	in     string
	trivia bool

	state lexState
	tok   Token
	ready bool
	err   error

	pos    int
	origin int
	line   int
}

func newScanner(tk *Tokenizer, in string, trivia bool) *Scanner {
	return &Scanner{
		tk:     tk,
		in:     in,
		trivia: trivia,
		state:  lexDefaultState,
		line:   1,
	}
}

func failedScanner(err error) *Scanner {
	return &Scanner{err: err}
}

// Next advances to the next token. It returns false at the end of the
// input or when an error stops the scan.
func (s *Scanner) Next() bool {
	s.ready = false
	for s.state != nil && !s.ready {
		s.state = s.state(s)
	}
	return s.ready
}

// Token returns the token found by the last call to Next
func (s *Scanner) Token() Token {
	return s.tok
}

// Err returns the error that stopped the scan, if any
func (s *Scanner) Err() error {
	return s.err
}

// All drains the scanner.
func (s *Scanner) All() ([]Token, error) {
	tokens := []Token{}
	for s.Next() {
		tokens = append(tokens, s.Token())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (s *Scanner) emit(tt TokenType, start, end int) {
	s.tok = NewToken(tt, s.in[start:end], s.line, start-s.origin)
	s.ready = true
}

func (s *Scanner) unexpected(err error) lexState {
	r, _ := utf8.DecodeRuneInString(s.in[s.pos:])
	return lexStateError(&LexicalError{
		Char:   r,
		Line:   s.line,
		Column: s.pos - s.origin,
		Err:    err,
	})
}

func lexDefaultState(s *Scanner) lexState {
	if s.pos >= len(s.in) {
		return nil
	}

	re, err := s.tk.Matcher()
	if err != nil {
		return lexStateError(err)
	}

	loc := re.FindStringSubmatchIndex(s.in[s.pos:])
	if loc == nil {
		return s.unexpected(ErrUnexpectedCharacter)
	}
	if loc[1] == 0 {
		return s.unexpected(ErrEmptyMatch)
	}

	for i, g := range s.tk.groups {
		if g > 0 && loc[2*g] >= 0 {
			return lexMatch(s.tk.grammar[i].Type, s.pos, s.pos+loc[1])
		}
	}

	return s.unexpected(ErrUnexpectedCharacter)
}

func lexMatch(tt TokenType, start, end int) lexState {
	return func(s *Scanner) lexState {
		switch tt {
		case TokenNewLine:
			if s.trivia {
				s.emit(tt, start, end)
			}
			s.line++
			s.origin = start
		case TokenWhitespace:
			if s.trivia {
				s.emit(tt, start, end)
			}
		case TokenWord:
			if word := s.in[start:end]; s.tk.IsKeyword(word) {
				tt = TokenType(word)
			}
			s.emit(tt, start, end)
		default:
			s.emit(tt, start, end)
		}
		s.pos = end
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	return func(s *Scanner) lexState {
		s.err = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it
// according to the default grammar, or an error if a token can't be
// identified.
func Tokenize(in []byte) ([]Token, error) {
	return NewTokenizer().Tokenize(string(in)).All()
}
