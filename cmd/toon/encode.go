package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/madskristensen/toon/internal/toonconfig"
	"github.com/madskristensen/toon/pkg/toon"
)

func newEncodeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a JSON-with-comments document as canonical TOON",
		Long: `Decode a JSON document (with // and /* */ comments and trailing commas
tolerated) from file or stdin and encode it as canonical TOON text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args)
			if err != nil {
				return fail("failed to read input: %w", err)
			}

			opts := toon.DefaultEncodeOptions()
			if cfg, err := toonconfig.Load(); err == nil {
				opts = cfg.EncodeOptions()
			}

			encoded, err := toon.EncodeJSON(source, opts)
			if err != nil {
				return fail("failed to encode: %w", err)
			}

			return writeOutput(cmd, output, encoded)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write output to file instead of stdout")
	return cmd
}

func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	}
	return os.WriteFile(path, append([]byte(content), '\n'), 0o644)
}
