package lexer

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-logr/logr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// StreamOption configures a Stream
type StreamOption func(*Stream)

// WithEncoding decodes the source with the given character encoding
// instead of UTF-8.
func WithEncoding(enc encoding.Encoding) StreamOption {
	return func(s *Stream) {
		if enc != nil {
			s.enc = enc
		}
	}
}

// WithStreamLogger sets the logger used to report reads.
func WithStreamLogger(log logr.Logger) StreamOption {
	return func(s *Stream) {
		s.log = log
	}
}

// Stream reads a whole source the first time it's iterated, closes it and
// hands the text to a tokenizer. Iterating again re-tokenizes the text
// already in memory.
type Stream struct {
	src  io.Reader
	name string
	tk   *Tokenizer
	enc  encoding.Encoding
	log  logr.Logger

	once sync.Once
	text string
	err  error
}

// NewStream creates a Stream over r. If r is an io.Closer it's closed after
// being read. A nil tokenizer means the default grammar.
func NewStream(r io.Reader, tk *Tokenizer, opts ...StreamOption) *Stream {
	if tk == nil {
		tk = NewTokenizer()
	}
	s := &Stream{
		src: r,
		tk:  tk,
		enc: unicode.UTF8,
		log: logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenStream opens the file at path and creates a Stream over it. A file
// that can't be opened is reported right away.
func OpenStream(path string, tk *Tokenizer, opts ...StreamOption) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s := NewStream(f, tk, opts...)
	s.name = path
	return s, nil
}

// Name returns the path the stream was opened from, if any.
func (s *Stream) Name() string {
	return s.name
}

// Text returns the decoded contents of the source.
func (s *Stream) Text() (string, error) {
	s.once.Do(s.read)
	return s.text, s.err
}

// Scanner returns a new Scanner over the contents of the source.
func (s *Stream) Scanner() *Scanner {
	text, err := s.Text()
	if err != nil {
		return failedScanner(err)
	}
	return s.tk.Tokenize(text)
}

func (s *Stream) read() {
	if c, ok := s.src.(io.Closer); ok {
		defer c.Close()
	}

	var dec transform.Transformer = s.enc.NewDecoder()
	if s.enc == unicode.UTF8 {
		dec = unicode.BOMOverride(dec)
	}

	buf, err := io.ReadAll(transform.NewReader(s.src, dec))
	if err != nil {
		s.err = fmt.Errorf("reading source %s: %w", s.name, err)
		return
	}

	s.text = string(buf)
	s.log.V(1).Info("read source", "name", s.name, "bytes", len(buf))
}
