package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/madskristensen/toon/internal/toonconfig"
	"github.com/madskristensen/toon/internal/toonutil"
	"github.com/madskristensen/toon/pkg/toon"
)

// newCheckCommand walks one or more directories (or takes explicit
// file arguments) and parses every .toon file found, reporting a
// per-file status line and exiting non-zero if any file failed to
// parse. Grounded on the teacher CLI's `format --check` batch-walk
// pattern, adapted from formatting-diff reporting to parse-diagnostic
// reporting.
func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Parse every .toon file under the given paths and report failures",
		Long: `Recursively find .toon files under the given paths (or the current
directory, with no arguments) and parse each one, printing its status.
Exits non-zero if any file failed to parse outright.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}

			opts := toon.DefaultOptions()
			if cfg, err := toonconfig.Load(); err == nil {
				opts = cfg.ParseOptions()
			}

			var files []string
			for _, p := range paths {
				info, err := os.Stat(p)
				if err != nil {
					return fail("failed to stat %s: %w", p, err)
				}
				if info.IsDir() {
					found, err := toonutil.FindTOONFiles(p)
					if err != nil {
						return fail("failed to walk %s: %w", p, err)
					}
					files = append(files, found...)
				} else {
					files = append(files, p)
				}
			}

			if len(files) == 0 {
				return fail("no .toon files found")
			}

			failures := 0
			successColor := color.New(color.FgGreen)
			warnColor := color.New(color.FgYellow, color.Bold)
			errColor := color.New(color.FgRed, color.Bold)

			for _, path := range files {
				data, err := os.ReadFile(path)
				if err != nil {
					errColor.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", path, err)
					failures++
					continue
				}

				result := toon.Parse(string(data), opts)
				switch result.Status {
				case toon.StatusSuccess:
					successColor.Fprintf(cmd.OutOrStdout(), "✓ %s\n", path)
				case toon.StatusPartial:
					warnColor.Fprintf(cmd.OutOrStdout(), "! %s (%d diagnostic(s))\n", path, len(result.Diagnostics))
				case toon.StatusFailure:
					errColor.Fprintf(cmd.OutOrStdout(), "✗ %s (%d diagnostic(s))\n", path, len(result.Diagnostics))
					failures++
				}
				for _, d := range result.Diagnostics {
					fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", d.String())
				}
			}

			if failures > 0 {
				return fail("%d file(s) failed to parse", failures)
			}
			return nil
		},
	}
	return cmd
}
