package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xiam/lene/lexer"
)

func TestList(t *testing.T) {
	list := List{"define-frame", "BURNS", List{"isa"}, []interface{}{"actor"}}

	assert.Equal(t, 4, list.Len())
	assert.Equal(t, "BURNS", list.At(1))
	assert.Equal(t, []List{{"isa"}, {"actor"}}, list.Lists())

	head, ok := list.Head()
	assert.True(t, ok)
	assert.Equal(t, "define-frame", head)

	_, ok = List{}.Head()
	assert.False(t, ok)

	_, ok = List{List{"a"}}.Head()
	assert.False(t, ok)
}

func TestIsList(t *testing.T) {
	assert.True(t, IsList(List{}))
	assert.True(t, IsList([]interface{}{1}))
	assert.False(t, IsList("a"))
	assert.False(t, IsList(lexer.NewToken(lexer.TokenWord, "a", 1, 0)))
	assert.False(t, IsList(nil))
}

func TestValues(t *testing.T) {
	tok := lexer.NewToken(lexer.TokenNumber, "42", 1, 3).WithValue(int64(42))
	tree := List{
		List{lexer.NewToken(lexer.TokenWord, "define", 1, 1), tok, List{}},
	}

	values := Values(tree)
	assert.Equal(t, List{List{"define", int64(42), List{}}}, values)

	// the input tree keeps its tokens
	assert.Equal(t, tok, tree[0].(List)[1])

	head, ok := tree[0].(List).Head()
	assert.True(t, ok)
	assert.Equal(t, "define", head)
}
