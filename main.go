package main

import (
	"fmt"
	"io"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "plsplit",
		Short: "Split Oracle-style SQL and PL/SQL scripts into statements",
		Long: `Split SQL and PL/SQL scripts into individually executable statements.

Plain statements end at ";". Procedural units, package bodies, Java sources
and views with inline functions end at a "/" alone on its line.`,
		Version:       versioninfo.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newSplitCmd())
	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

// readFile from disk, or from in when path is "-", and return its content as
// a string.
func readFile(path string, in io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(b), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
