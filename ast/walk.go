package ast

// WalkFunc is called for every leaf with its position inside its parent and
// its depth. Returning false stops the walk.
type WalkFunc func(index int, node interface{}, depth int) bool

// Walk visits the leaves of tree depth-first, left to right. Children of the
// root are at depth 0; every enclosing list adds one.
func Walk(tree List, fn WalkFunc) {
	walkLevel(tree, 0, fn)
}

func walkLevel(tree List, depth int, fn WalkFunc) bool {
	for i := range tree {
		if child, ok := AsList(tree[i]); ok {
			if !walkLevel(child, depth+1, fn) {
				return false
			}
			continue
		}
		if !fn(i, tree[i], depth) {
			return false
		}
	}
	return true
}

// Flatten returns all the leaves of tree in depth-first order.
func Flatten(tree List) []interface{} {
	leaves := []interface{}{}
	Walk(tree, func(_ int, node interface{}, _ int) bool {
		leaves = append(leaves, node)
		return true
	})
	return leaves
}
