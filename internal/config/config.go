// Package config loads the settings that shape the reading pipeline: extra
// grammar rules, keywords, token classes and limits. Settings are read from
// TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-logr/logr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"gopkg.in/yaml.v3"

	"github.com/xiam/lene"
	"github.com/xiam/lene/lexer"
	"github.com/xiam/lene/parser"
	"github.com/xiam/lene/stats"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid config")
)

// Format is the syntax of a configuration file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// Rule is a named pattern added to the default grammar, or replacing the
// pattern of a rule with the same name.
type Rule struct {
	Name    string `toml:"name" yaml:"name"`
	Pattern string `toml:"pattern" yaml:"pattern"`
}

type Config struct {
	Grammar  []Rule   `toml:"grammar" yaml:"grammar"`
	Keywords []string `toml:"keywords" yaml:"keywords"`

	// Content and Ignore name extra token types the parser keeps as leaves
	// or drops. Keywords are always content.
	Content []string `toml:"content" yaml:"content"`
	Ignore  []string `toml:"ignore" yaml:"ignore"`

	// MaxDepth limits group nesting, zero means no limit.
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
	IndexMax int `toml:"index_max" yaml:"index_max"`

	// Encoding is the character set of input documents, as named by the
	// WHATWG encoding standard.
	Encoding string `toml:"encoding" yaml:"encoding"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MaxDepth: parser.DefaultMaxDepth,
		IndexMax: stats.DefaultIndexMax,
		Encoding: "utf-8",
	}
}

// Load reads the configuration file at path. The format is taken from the
// file extension. An empty path returns the default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := LoadFromString(string(content), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromString parses content, filling the fields it leaves out with
// defaults, and validates the result.
func LoadFromString(content string, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(content, cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func detectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Validate checks limits, rules, keywords and the encoding name.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.IndexMax < 0 {
		return fmt.Errorf("%w: index_max must not be negative, got %d", ErrInvalidConfig, c.IndexMax)
	}
	for i, r := range c.Grammar {
		if r.Name == "" || r.Pattern == "" {
			return fmt.Errorf("%w: grammar rule %d needs a name and a pattern", ErrInvalidConfig, i)
		}
	}
	if _, err := c.encoding(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Tokenizer().Matcher(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) encoding() (encoding.Encoding, error) {
	if c.Encoding == "" {
		return unicode.UTF8, nil
	}
	return htmlindex.Get(c.Encoding)
}

// Charset returns the input encoding, UTF-8 when unset or unknown.
func (c *Config) Charset() encoding.Encoding {
	enc, err := c.encoding()
	if err != nil {
		return unicode.UTF8
	}
	return enc
}

// Tokenizer builds a tokenizer for the default grammar plus the configured
// rules and keywords.
func (c *Config) Tokenizer() *lexer.Tokenizer {
	rules := make([]lexer.Rule, 0, len(c.Grammar))
	for _, r := range c.Grammar {
		rules = append(rules, lexer.Rule{Type: lexer.TokenType(r.Name), Pattern: r.Pattern})
	}
	return lexer.NewTokenizer(
		lexer.WithRules(rules...),
		lexer.WithKeywords(c.Keywords...),
	)
}

// Parser builds a parser that keeps configured keywords and content types as
// leaves and drops ignored types.
func (c *Config) Parser(log logr.Logger) *parser.Parser {
	return parser.New(
		parser.WithContent(tokenTypes(c.Keywords)...),
		parser.WithContent(tokenTypes(c.Content)...),
		parser.WithIgnorable(tokenTypes(c.Ignore)...),
		parser.WithMaxDepth(c.MaxDepth),
		parser.WithLogger(log),
	)
}

// ReaderOptions returns the options that make a lene.Reader follow this
// configuration.
func (c *Config) ReaderOptions(log logr.Logger) []lene.Option {
	return []lene.Option{
		lene.WithTokenizer(c.Tokenizer()),
		lene.WithParser(c.Parser(log)),
		lene.WithEncoding(c.Charset()),
		lene.WithLogger(log),
	}
}

func tokenTypes(names []string) []lexer.TokenType {
	types := make([]lexer.TokenType, 0, len(names))
	for _, name := range names {
		types = append(types, lexer.TokenType(name))
	}
	return types
}
