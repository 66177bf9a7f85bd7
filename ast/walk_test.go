package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type step struct {
	Index int
	Node  interface{}
	Depth int
}

var tree = List{"a", List{"b", List{"c", "d"}, "e"}, List{"f", List{"g", List{"h"}, List{"i", List{"j"}}}}}

func collect(tree List) []step {
	steps := []step{}
	Walk(tree, func(index int, node interface{}, depth int) bool {
		steps = append(steps, step{index, node, depth})
		return true
	})
	return steps
}

func TestWalk(t *testing.T) {
	assert.Equal(t, []step{
		{0, "a", 0},
		{0, "b", 1},
		{0, "c", 2},
		{1, "d", 2},
		{2, "e", 1},
		{0, "f", 1},
		{0, "g", 2},
		{0, "h", 3},
		{0, "i", 3},
		{0, "j", 4},
	}, collect(tree))

	// walking again starts over
	assert.Equal(t, collect(tree), collect(tree))
}

func TestWalkStop(t *testing.T) {
	seen := []interface{}{}
	Walk(tree, func(_ int, node interface{}, _ int) bool {
		seen = append(seen, node)
		return node != "d"
	})
	assert.Equal(t, []interface{}{"a", "b", "c", "d"}, seen)
}

func TestWalkEmpty(t *testing.T) {
	assert.Equal(t, []step{}, collect(List{}))
	assert.Equal(t, []step{}, collect(List{List{}, List{List{}}}))
}

func TestFlatten(t *testing.T) {
	assert.Equal(t,
		[]interface{}{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
		Flatten(tree),
	)
	assert.Equal(t, []interface{}{}, Flatten(List{}))
}
