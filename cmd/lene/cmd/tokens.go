package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/lene/lexer"
)

func newTokensCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens PATH",
		Short: "Prints the tokens of a document",
		Long: `Prints every token of a document on its own line: line, column, type
and matched text. Whitespace and newlines are not tokens.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stream, err := lexer.OpenStream(args[0], a.cfg.Tokenizer(),
				lexer.WithEncoding(a.cfg.Charset()),
				lexer.WithStreamLogger(a.log),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := stream.Scanner()
			for s.Next() {
				tok := s.Token()
				fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Line(), tok.Column(), tok.Type().Name(), tok.Text())
			}
			if err := s.Err(); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return nil
		},
	}
}
