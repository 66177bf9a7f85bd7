package main

import (
	"log"

	"github.com/xiam/lene/ast"
	"github.com/xiam/lene/parser"
)

func main() {
	input := `(define-frame BURNS (isa (value (violent-mop))) (actor (value =actor)) (area (* 3.14 (* r r))))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
