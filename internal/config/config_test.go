package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/xiam/lene"
	"github.com/xiam/lene/ast"
	"github.com/xiam/lene/lexer"
	"github.com/xiam/lene/parser"
)

const tomlConfig = `
keywords = ["define-frame"]
content = ["ASSIGN"]
ignore = ["PRAGMA"]
max_depth = 8
index_max = 2
encoding = "windows-1252"

[[grammar]]
name = "ASSIGN"
pattern = ":="

[[grammar]]
name = "PRAGMA"
pattern = "#[a-z]+"
`

const yamlConfig = `
keywords:
  - define-frame
content:
  - ASSIGN
ignore:
  - PRAGMA
max_depth: 8
index_max: 2
encoding: windows-1252
grammar:
  - name: ASSIGN
    pattern: ":="
  - name: PRAGMA
    pattern: "#[a-z]+"
`

func writeConfig(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, 0, cfg.IndexMax)
	assert.Equal(t, unicode.UTF8, cfg.Charset())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		Name    string
		Content string
	}{
		{"lene.toml", tomlConfig},
		{"lene.yaml", yamlConfig},
		{"lene.yml", yamlConfig},
	}

	expected := &Config{
		Grammar: []Rule{
			{Name: "ASSIGN", Pattern: ":="},
			{Name: "PRAGMA", Pattern: "#[a-z]+"},
		},
		Keywords: []string{"define-frame"},
		Content:  []string{"ASSIGN"},
		Ignore:   []string{"PRAGMA"},
		MaxDepth: 8,
		IndexMax: 2,
		Encoding: "windows-1252",
	}

	for _, tc := range testCases {
		cfg, err := Load(writeConfig(t, tc.Name, tc.Content))
		require.NoError(t, err, tc.Name)
		assert.Equal(t, expected, cfg, tc.Name)
		assert.Equal(t, charmap.Windows1252, cfg.Charset(), tc.Name)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := LoadFromString(`keywords = ["isa"]`, FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, "utf-8", cfg.Encoding)
	assert.Equal(t, []string{"isa"}, cfg.Keywords)

	cfg, err = LoadFromString("max_depth: 0\n", FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxDepth)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeConfig(t, "lene.json", `{}`))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = Load(writeConfig(t, "broken.toml", `max_depth = [`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "broken.yaml", "keywords: [a\n"))
	assert.Error(t, err)

	_, err = LoadFromString("", Format(7))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		Name   string
		Modify func(*Config)
		Valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"no depth limit", func(c *Config) { c.MaxDepth = 0 }, true},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }, false},
		{"negative index", func(c *Config) { c.IndexMax = -3 }, false},
		{"rule without pattern", func(c *Config) { c.Grammar = []Rule{{Name: "X"}} }, false},
		{"rule without name", func(c *Config) { c.Grammar = []Rule{{Pattern: "x"}} }, false},
		{"empty encoding", func(c *Config) { c.Encoding = "" }, true},
		{"latin1", func(c *Config) { c.Encoding = "latin1" }, true},
		{"unknown encoding", func(c *Config) { c.Encoding = "klingon" }, false},
		{"bad pattern", func(c *Config) { c.Grammar = []Rule{{Name: "X", Pattern: "("}} }, false},
		{"keyword named like a rule", func(c *Config) { c.Keywords = []string{"CLOSE"} }, false},
		{"keyword named like a new rule", func(c *Config) {
			c.Grammar = []Rule{{Name: "ASSIGN", Pattern: ":="}}
			c.Keywords = []string{"ASSIGN"}
		}, false},
		{"keyword", func(c *Config) { c.Keywords = []string{"isa"} }, true},
	}

	for _, tc := range testCases {
		cfg := Default()
		tc.Modify(cfg)

		err := cfg.Validate()
		if tc.Valid {
			assert.NoError(t, err, tc.Name)
			continue
		}
		assert.True(t, errors.Is(err, ErrInvalidConfig), tc.Name)
	}
}

func TestPipeline(t *testing.T) {
	cfg, err := LoadFromString(tomlConfig, FormatTOML)
	require.NoError(t, err)

	tk := cfg.Tokenizer()
	assert.Equal(t, []string{"define-frame"}, tk.Keywords())

	pattern, ok := tk.Grammar().Pattern("ASSIGN")
	assert.True(t, ok)
	assert.Equal(t, ":=", pattern)

	tokens, err := tk.Tokenize("(define-frame x #inline)").All()
	require.NoError(t, err)
	assert.Equal(t, lexer.TokenType("define-frame"), tokens[1].Type())
	assert.Equal(t, lexer.TokenType("PRAGMA"), tokens[3].Type())

	tree, err := cfg.Parser(logr.Discard()).Parse(tk.Tokenize("(define-frame x #inline)"))
	require.NoError(t, err)
	assert.Equal(t, ast.List{ast.List{"define-frame", "x"}}, parser.Detokenize(tree))

	_, err = cfg.Parser(logr.Discard()).Parse(tk.Tokenize("(((((((((a)))))))))"))
	assert.True(t, errors.Is(err, parser.ErrMaxDepth))
}

func TestReaderOptions(t *testing.T) {
	cfg, err := LoadFromString(tomlConfig, FormatTOML)
	require.NoError(t, err)

	tree, err := lene.Loads("; caf\xe9\n(define-frame BURNS #inline (x := 1))", cfg.ReaderOptions(logr.Discard())...)
	require.NoError(t, err)
	assert.Equal(t, ast.List{ast.List{"define-frame", "BURNS", ast.List{"x", ":=", int64(1)}}}, tree)
}
