package main

import (
	"fmt"
	"log"

	"github.com/xiam/lene/lexer"
)

func main() {
	input := `
		(define-frame BURNS ; a comment
			(isa (value (violent-mop)))
			(scenes (value (=goal-scene)))
			(area (* 3.14 (* r r)))
		)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().Name()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
