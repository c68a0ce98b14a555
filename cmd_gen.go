package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshsziegler/plsplit/name"
	"github.com/joshsziegler/plsplit/parser"
	"github.com/joshsziegler/plsplit/templates"
)

func newGenCmd() *cobra.Command {
	var pkgName string
	var varName string
	var output string

	cmd := &cobra.Command{
		Use:   "gen <file|->",
		Short: "Generate Go source embedding the statements of a script",
		Long: `Generate a Go file declaring a Statement type and a slice holding every
statement of the script in order.

The slice is named after the script file unless --var is given, e.g.
billing_scripts.sql becomes BillingScriptStatements.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			stmts, err := splitFile(cmd, path, parser.DefaultClassificationCutoff)
			if err != nil {
				return err
			}
			if varName == "" {
				varName = defaultVarName(path)
			}

			render := func(w io.Writer) error {
				return templates.GoSource(w, pkgName, varName, stmts)
			}
			if output == "" {
				if err := render(cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("render: %w", err)
				}
				return nil
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			return writeAndClose(f, render)
		},
	}

	cmd.Flags().StringVarP(&pkgName, "package", "p", "migrations", "package name of the generated file")
	cmd.Flags().StringVar(&varName, "var", "", "name of the generated variable")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// writeAndClose renders into w and closes it. A failed close is reported since
// buffered output may be lost.
func writeAndClose(w io.WriteCloser, render func(io.Writer) error) error {
	if err := render(w); err != nil {
		w.Close()
		return fmt.Errorf("render: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func defaultVarName(path string) string {
	if path == "-" {
		return "Statements"
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return name.ToGo(base) + "Statements"
}
