package stats

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/lene/ast"
	"github.com/xiam/lene/lexer"
)

var tree = ast.List{
	"a",
	ast.List{"b", ast.List{"c", "d"}, "e"},
	ast.List{"f", ast.List{"g", ast.List{"h"}, ast.List{"i", ast.List{"j"}}}},
}

func TestFromTree(t *testing.T) {
	testCases := []struct {
		IndexMax int
		Levels   [][]string
	}{
		{
			IndexMax: DefaultIndexMax,
			Levels: [][]string{
				{"a"},
				{"b", "f"},
				{"c", "g"},
				{"h", "i"},
				{"j"},
			},
		},
		{
			IndexMax: 10,
			Levels: [][]string{
				{"a"},
				{"b", "e", "f"},
				{"c", "d", "g"},
				{"h", "i"},
				{"j"},
			},
		},
	}

	for _, tc := range testCases {
		freq := FromTree(tree, tc.IndexMax)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, freq.Depths())

		for depth, values := range tc.Levels {
			h := freq.Depth(depth)
			require.NotNil(t, h)

			assert.Equal(t, len(values), h.B(), "depth %d", depth)
			for _, v := range values {
				assert.Equal(t, 1, h.Get(v), "depth %d, value %q", depth, v)
			}
		}
	}
}

func TestFromTokenTree(t *testing.T) {
	tokens := ast.List{
		ast.List{
			lexer.NewToken(lexer.TokenWord, "define-frame", 1, 1),
			lexer.NewToken(lexer.TokenWord, "BURNS", 1, 14),
			ast.List{lexer.NewToken(lexer.TokenWord, "isa", 2, 3)},
		},
	}
	values := ast.List{ast.List{"define-frame", "BURNS", ast.List{"isa"}}}

	a, b := FromTree(tokens, 0), FromTree(values, 0)
	require.Equal(t, a.Depths(), b.Depths())
	for _, depth := range a.Depths() {
		assert.True(t, a.Depth(depth).Equal(b.Depth(depth)))
	}
	assert.Equal(t, 1, a.Depth(1).Get("define-frame"))
	assert.Equal(t, 0, a.Depth(1).Get("BURNS"))
}

func TestTokenFrequencyUpdate(t *testing.T) {
	alph := FromTree(tree, 3)
	beth := FromTree(tree, 3)

	alph.Update(beth)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, alph.Depths())

	levels := [][]string{
		{"a"},
		{"b", "e", "f"},
		{"c", "d", "g"},
		{"h", "i"},
		{"j"},
	}
	for depth, values := range levels {
		for _, v := range values {
			assert.Equal(t, 2, alph.Depth(depth).Get(v))
		}
	}

	// beth is left untouched
	assert.Equal(t, 1, beth.Depth(0).Get("a"))

	alph.Update(nil)
	assert.Equal(t, 2, alph.Depth(0).Get("a"))
}

func TestTokenFrequencyUpdateMap(t *testing.T) {
	freq := FromTree(tree, 0)
	freq.UpdateMap(map[int]map[any]int{
		0: {"a": 2},
		7: {"deep": 1},
		8: {},
	})

	assert.Equal(t, 3, freq.Depth(0).Get("a"))
	assert.Equal(t, 1, freq.Depth(7).Get("deep"))
	assert.Nil(t, freq.Depth(8))
	assert.Nil(t, freq.Depth(5))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 7}, freq.Depths())
}

func TestTokenFrequencyReport(t *testing.T) {
	freq := FromTree(ast.List{
		ast.List{"define-frame", "BURNS"},
		ast.List{"define-frame", "EATS"},
		ast.List{"define", "area", ast.List{"lambda", ast.List{"r"}}},
		ast.List{"define-frame", "DRINKS"},
	}, 0)

	expected := "" +
		"depth 1:\n" +
		"    define-frame\t3\n" +
		"    define\t1\n" +
		"depth 2:\n" +
		"    lambda\t1\n" +
		"depth 3:\n" +
		"    r\t1\n"

	var buf bytes.Buffer
	require.NoError(t, freq.Report(&buf))
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, expected, freq.String())

	assert.Equal(t, "", NewTokenFrequency().String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTokenFrequencyReportError(t *testing.T) {
	err := FromTree(tree, 0).Report(failingWriter{})
	assert.EqualError(t, err, "disk full")
}
