package ast

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xiam/lene/lexer"
)

// Print displays a human-readable representation of a tree
func Print(tree List) {
	Fprint(os.Stdout, tree)
}

// Fprint writes a human-readable representation of a tree to w
func Fprint(w io.Writer, tree List) {
	printLevel(w, tree, 0)
}

func printLevel(w io.Writer, node interface{}, level int) {
	indent := strings.Repeat("    ", level)

	if list, ok := AsList(node); ok {
		fmt.Fprintf(w, "%s(list)[%d]\n", indent, len(list))
		for i := range list {
			printLevel(w, list[i], level+1)
		}
		return
	}

	switch v := node.(type) {
	case nil:
		fmt.Fprintf(w, "%s:nil\n", indent)
	case lexer.Token:
		fmt.Fprintf(w, "%s(%s): %#v %v\n", indent, v.Type().Name(), v.Value(), v)
	default:
		fmt.Fprintf(w, "%s(%T): %#v\n", indent, v, v)
	}
}

// Encode transforms a tree back into its text notation. Top-level groups
// are separated by a space.
func Encode(tree List) []byte {
	return encodeLevel(tree, 0)
}

func encodeLevel(node interface{}, level int) []byte {
	if list, ok := AsList(node); ok {
		nodes := make([]string, 0, len(list))
		for i := range list {
			nodes = append(nodes, string(encodeLevel(list[i], level+1)))
		}
		if level == 0 {
			return []byte(strings.Join(nodes, " "))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))
	}

	switch v := node.(type) {
	case nil:
		return []byte(":nil")
	case lexer.Token:
		return []byte(v.Text())
	default:
		return []byte(fmt.Sprintf("%v", v))
	}
}
