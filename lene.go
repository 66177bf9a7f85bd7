// Package lene reads documents written in a parenthesized frame notation and
// turns them into trees.
//
// The lexer, parser, ast and stats packages hold the pieces; this package
// wires them together for the common case: text in, tree of raw values out.
package lene

import (
	"io"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/text/encoding"

	"github.com/xiam/lene/ast"
	"github.com/xiam/lene/lexer"
	"github.com/xiam/lene/parser"
)

// Option configures a Reader
type Option func(*Reader)

// WithTokenizer sets the tokenizer used to split the source.
func WithTokenizer(tk *lexer.Tokenizer) Option {
	return func(r *Reader) {
		r.tk = tk
	}
}

// WithParser sets the parser used to build the tree. Without it, words the
// tokenizer reports as keywords are kept as leaves.
func WithParser(p *parser.Parser) Option {
	return func(r *Reader) {
		r.p = p
	}
}

// WithTokens keeps tokens as the leaves of the tree instead of their raw
// values.
func WithTokens() Option {
	return func(r *Reader) {
		r.tokens = true
	}
}

// WithEncoding decodes the source from enc before it's tokenized.
func WithEncoding(enc encoding.Encoding) Option {
	return func(r *Reader) {
		r.enc = enc
	}
}

// WithLogger sets the logger for the reader and its default parser.
func WithLogger(log logr.Logger) Option {
	return func(r *Reader) {
		r.log = log
	}
}

// Reader parses a single document with a configurable pipeline.
type Reader struct {
	stream *lexer.Stream

	tk     *lexer.Tokenizer
	p      *parser.Parser
	enc    encoding.Encoding
	tokens bool
	log    logr.Logger
}

// NewReader creates a Reader over r. Nothing is read until Parse is called.
func NewReader(r io.Reader, opts ...Option) *Reader {
	rd := newReader(opts...)
	rd.stream = lexer.NewStream(r, rd.tk, rd.streamOptions()...)
	return rd
}

// OpenReader creates a Reader over the file at path. A file that can't be
// opened is reported right away.
func OpenReader(path string, opts ...Option) (*Reader, error) {
	rd := newReader(opts...)
	stream, err := lexer.OpenStream(path, rd.tk, rd.streamOptions()...)
	if err != nil {
		return nil, err
	}
	rd.stream = stream
	return rd, nil
}

func newReader(opts ...Option) *Reader {
	rd := &Reader{
		log: logr.Discard(),
	}
	for _, opt := range opts {
		opt(rd)
	}
	if rd.tk == nil {
		rd.tk = lexer.NewTokenizer()
	}
	if rd.p == nil {
		rd.p = parser.New(
			parser.WithContent(keywordTypes(rd.tk)...),
			parser.WithLogger(rd.log),
		)
	}
	return rd
}

// keywordTypes returns the token types the keywords of tk are emitted as.
func keywordTypes(tk *lexer.Tokenizer) []lexer.TokenType {
	words := tk.Keywords()
	types := make([]lexer.TokenType, 0, len(words))
	for _, w := range words {
		types = append(types, lexer.TokenType(w))
	}
	return types
}

func (r *Reader) streamOptions() []lexer.StreamOption {
	return []lexer.StreamOption{
		lexer.WithEncoding(r.enc),
		lexer.WithStreamLogger(r.log),
	}
}

// Parse reads the whole source and returns its tree. The source is read
// only once; parsing again works on the text already read.
func (r *Reader) Parse() (ast.List, error) {
	tree, err := r.p.Parse(r.stream.Scanner())
	if err != nil {
		return nil, err
	}
	if r.tokens {
		return tree, nil
	}
	return parser.Detokenize(tree), nil
}

// Load parses the document read from r.
func Load(r io.Reader, opts ...Option) (ast.List, error) {
	return NewReader(r, opts...).Parse()
}

// Loads parses the document in text.
func Loads(text string, opts ...Option) (ast.List, error) {
	return Load(strings.NewReader(text), opts...)
}

// LoadFile parses the document stored at path.
func LoadFile(path string, opts ...Option) (ast.List, error) {
	r, err := OpenReader(path, opts...)
	if err != nil {
		return nil, err
	}
	return r.Parse()
}

// Parse parses in and returns a tree of raw values.
func Parse(in []byte) (ast.List, error) {
	return Loads(string(in))
}
