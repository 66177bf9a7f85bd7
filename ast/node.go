// Package ast defines the parse tree of frame documents and the helpers that
// walk it.
package ast

// List is an interior node of the tree: one parenthesized group. Elements
// are either leaves (tokens or raw values) or nested lists. The root of a
// document is a List holding its top-level groups.
type List []interface{}

// Len returns the number of children
func (l List) Len() int {
	return len(l)
}

// At returns the i-th child
func (l List) At(i int) interface{} {
	return l[i]
}

// Lists returns the children that are themselves lists
func (l List) Lists() []List {
	lists := []List{}
	for i := range l {
		if child, ok := AsList(l[i]); ok {
			lists = append(lists, child)
		}
	}
	return lists
}

// Head returns the value of the first child when it is a leaf. Frame
// declarations use it to name their kind, like "define-frame".
func (l List) Head() (interface{}, bool) {
	if len(l) == 0 || IsList(l[0]) {
		return nil, false
	}
	return ValueOf(l[0]), true
}

// IsList returns true if the node is an interior node
func IsList(node interface{}) bool {
	_, ok := AsList(node)
	return ok
}

// AsList converts a node into a List, accepting plain []interface{} too.
func AsList(node interface{}) (List, bool) {
	switch v := node.(type) {
	case List:
		return v, true
	case []interface{}:
		return List(v), true
	}
	return nil, false
}
