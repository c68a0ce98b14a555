package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joshsziegler/plsplit/parser"
	"github.com/joshsziegler/plsplit/templates"
)

func newSplitCmd() *cobra.Command {
	var outputFormat string
	var cutoff int

	cmd := &cobra.Command{
		Use:   "split <file|->...",
		Short: "Split scripts and list their statements",
		Long: `Split one or more scripts and list their statements in argument order.

Files are split concurrently. A "-" reads the script from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := splitFiles(cmd, args, cutoff)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "text":
				for _, stmts := range results {
					if err := templates.Text(out, stmts); err != nil {
						return fmt.Errorf("write: %w", err)
					}
				}
			case "json":
				var all []parser.Statement
				for _, stmts := range results {
					all = append(all, stmts...)
				}
				if err := templates.JSON(out, all); err != nil {
					return fmt.Errorf("write: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().IntVar(&cutoff, "cutoff", parser.DefaultClassificationCutoff, "leading keywords examined to classify a statement")

	return cmd
}

// splitFiles splits every path concurrently and returns the statements of
// each in the order of paths.
func splitFiles(cmd *cobra.Command, paths []string, cutoff int) ([][]parser.Statement, error) {
	results := make([][]parser.Statement, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			stmts, err := splitFile(cmd, path, cutoff)
			if err != nil {
				return err
			}
			results[i] = stmts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// splitFile reads path, "-" meaning the command's input, and splits it.
func splitFile(cmd *cobra.Command, path string, cutoff int) ([]parser.Statement, error) {
	script, err := readFile(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	opts := []parser.Option{parser.WithClassificationCutoff(cutoff)}
	if path != "-" {
		opts = append(opts, parser.WithFile(path))
	}
	stmts, err := parser.Split(script, opts...)
	if err != nil {
		return nil, fmt.Errorf("split: %w", err)
	}
	return stmts, nil
}
