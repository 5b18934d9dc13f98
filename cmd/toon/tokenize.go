package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madskristensen/toon/internal/toonconfig"
	"github.com/madskristensen/toon/pkg/toon"
)

func newTokenizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Lex a TOON document and print its token stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args)
			if err != nil {
				return fail("failed to read input: %w", err)
			}

			opts := toon.DefaultOptions()
			if cfg, err := toonconfig.Load(); err == nil {
				opts = cfg.ParseOptions()
			}

			tokens, diags := toon.Tokenize(source, opts)
			for _, t := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), t.String())
			}
			for _, d := range diags {
				fmt.Fprintln(cmd.ErrOrStderr(), d.String())
			}
			return nil
		},
	}
	return cmd
}
