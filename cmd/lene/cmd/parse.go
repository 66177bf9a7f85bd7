package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/lene"
	"github.com/xiam/lene/ast"
)

func newParseCommand(a *app) *cobra.Command {
	var (
		encode bool
		tokens bool
	)

	cmd := &cobra.Command{
		Use:   "parse PATH",
		Short: "Prints the tree of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []lene.Option
			if tokens {
				extra = append(extra, lene.WithTokens())
			}

			tree, err := lene.LoadFile(args[0], a.readerOptions(extra...)...)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if encode {
				_, err := fmt.Fprintf(out, "%s\n", ast.Encode(tree))
				return err
			}
			ast.Fprint(out, tree)
			return nil
		},
	}

	cmd.Flags().BoolVar(&encode, "encode", false, "print the tree back in frame notation")
	cmd.Flags().BoolVar(&tokens, "tokens", false, "keep tokens as leaves")
	return cmd
}
