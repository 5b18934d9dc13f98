package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/madskristensen/toon/internal/toonconfig"
	"github.com/madskristensen/toon/pkg/toon"
)

func newParseCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a TOON document and report its status and diagnostics",
		Long: `Parse a TOON document (or stdin, with no argument) and report whether it
parsed fully, partially, or failed, printing every recorded diagnostic.

Exit status is 0 for a clean or partial parse, 1 if parsing failed
outright (see the "status" line).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args)
			if err != nil {
				return fail("failed to read input: %w", err)
			}

			opts := toon.DefaultOptions()
			if cfg, err := toonconfig.Load(); err == nil {
				opts = cfg.ParseOptions()
			}

			result := toon.Parse(source, opts)
			if !quiet {
				printParseResult(cmd, result)
			}
			if result.Status == toon.StatusFailure {
				return fail("parse failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress diagnostic output (exit code only)")
	return cmd
}

func printParseResult(cmd *cobra.Command, result toon.ParseResult) {
	statusColor := color.New(color.FgGreen)
	switch result.Status {
	case toon.StatusPartial:
		statusColor = color.New(color.FgYellow, color.Bold)
	case toon.StatusFailure:
		statusColor = color.New(color.FgRed, color.Bold)
	}
	statusColor.Fprintf(cmd.OutOrStdout(), "status: %s\n", result.Status)

	if result.Document != nil && len(result.Document.Properties) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "properties: %d\n", len(result.Document.Properties))
	}

	if len(result.Diagnostics) == 0 {
		return
	}
	errColor := color.New(color.FgRed)
	fmt.Fprintf(cmd.OutOrStdout(), "diagnostics (%d):\n", len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		errColor.Fprintf(cmd.OutOrStdout(), "  %s\n", d.String())
	}
}

// readSource reads args[0] if present, else stdin.
func readSource(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
