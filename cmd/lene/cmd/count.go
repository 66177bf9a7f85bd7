package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xiam/lene"
	"github.com/xiam/lene/stats"
)

type countOptions struct {
	recursive bool
	ext       string
	indexMax  int
}

func newCountCommand(a *app) *cobra.Command {
	o := &countOptions{}

	cmd := &cobra.Command{
		Use:   "count [PATH...]",
		Short: "Counts the tokens at each depth of frame documents",
		Long: `Counts the tokens found at each nesting depth of one or more documents.

By default only the first element of every group is counted, which is the
name of the frame or slot the group declares. Documents are read from stdin
when no path is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCount(cmd, o, args)
		},
	}

	cmd.Flags().BoolVarP(&o.recursive, "recursive", "R", false, "read directories recursively")
	cmd.Flags().StringVar(&o.ext, "ext", ".lisp", "extension of the documents read from directories")
	cmd.Flags().IntVar(&o.indexMax, "index-max", 0, "count elements up to this position in their group (default from config)")
	return cmd
}

func (a *app) runCount(cmd *cobra.Command, o *countOptions, args []string) error {
	idxMax := a.cfg.IndexMax
	if cmd.Flags().Changed("index-max") {
		idxMax = o.indexMax
	}
	if idxMax < 0 {
		return fmt.Errorf("index-max must not be negative, got %d", idxMax)
	}

	freq := stats.NewTokenFrequency()

	if len(args) == 0 {
		tree, err := lene.Load(cmd.InOrStdin(), a.readerOptions()...)
		if err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		freq.Update(stats.FromTree(tree, idxMax))
		return renderReport(cmd.OutOrStdout(), freq)
	}

	documents := 0
	for _, arg := range args {
		paths, err := o.collect(arg)
		if err != nil {
			return err
		}
		for _, path := range paths {
			tree, err := lene.LoadFile(path, a.readerOptions()...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			freq.Update(stats.FromTree(tree, idxMax))
			documents++

			a.log.V(1).Info("counted document", "path", path, "groups", len(tree))
		}
	}

	a.log.V(1).Info("counted documents", "documents", documents, "depths", len(freq.Depths()))
	return renderReport(cmd.OutOrStdout(), freq)
}

// collect returns the documents named by path: the path itself for a file,
// or the files with the configured extension under a directory.
func (o *countOptions) collect(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	if !o.recursive {
		return nil, fmt.Errorf("%s is a directory, use -R to read it", path)
	}

	paths := []string{}
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && strings.EqualFold(filepath.Ext(p), o.ext) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
