package main

import (
	"github.com/carlmjohnson/versioninfo"
	"github.com/spf13/cobra"

	"github.com/joshsziegler/plsplit/lsp"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(versioninfo.Short())
			return server.RunStdio()
		},
	}
}
