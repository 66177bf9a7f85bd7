package ast

// Valuer is a leaf that carries metadata around a raw value, like a token.
type Valuer interface {
	Value() interface{}
}

// ValueOf returns the raw value of a leaf. Leaves that are not Valuers are
// raw values already.
func ValueOf(node interface{}) interface{} {
	if v, ok := node.(Valuer); ok {
		return v.Value()
	}
	return node
}

// Values returns a copy of the tree where every leaf is replaced by its raw
// value. The given tree is left untouched.
func Values(tree List) List {
	out := make(List, 0, len(tree))
	for i := range tree {
		if child, ok := AsList(tree[i]); ok {
			out = append(out, Values(child))
			continue
		}
		out = append(out, ValueOf(tree[i]))
	}
	return out
}
