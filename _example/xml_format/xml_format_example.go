package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lene"
	"github.com/xiam/lene/ast"
)

func printTree(tree ast.List) {
	for i := range tree {
		printIndentedTree(tree[i], 0)
	}
}

func printIndentedTree(node interface{}, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)

	list, ok := ast.AsList(node)
	if !ok {
		fmt.Printf("%s<%T>%v</%T>\n", indent, node, node, node)
		return
	}

	name := "group"
	if head, ok := list.Head(); ok {
		name = fmt.Sprintf("%v", head)
		list = list[1:]
	}

	fmt.Printf("%s<%s>\n", indent, name)
	for i := range list {
		printIndentedTree(list[i], indentationLevel+1)
	}
	fmt.Printf("%s</%s>\n", indent, name)
}

func main() {
	input := `(define-frame BURNS (isa (value (violent-mop))) (actor (value =actor)) (area (* 3.14 (* r r))))`

	root, err := lene.Loads(input)
	if err != nil {
		log.Fatal("lene.Loads:", err)
	}

	printTree(root)
}
