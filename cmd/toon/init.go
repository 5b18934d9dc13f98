package main

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newInitCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively scaffold a .toon.yml config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			delimiter := "comma"
			indentWidth := "2"
			preferTables := true

			if !yes {
				if err := survey.AskOne(&survey.Select{
					Message: "Default array/table delimiter:",
					Options: []string{"comma", "tab", "pipe"},
					Default: delimiter,
				}, &delimiter); err != nil {
					return err
				}
				if err := survey.AskOne(&survey.Input{
					Message: "Indent width:",
					Default: indentWidth,
				}, &indentWidth, survey.WithValidator(survey.Required)); err != nil {
					return err
				}
				if err := survey.AskOne(&survey.Confirm{
					Message: "Render uniform object arrays as tables?",
					Default: preferTables,
				}, &preferTables); err != nil {
					return err
				}
			}

			content := "max_string_length: 65536\n" +
				"max_token_count: 1000000\n" +
				"max_nesting_depth: 100\n" +
				"max_array_size: 1000000\n" +
				"encode:\n" +
				"  indent_width: " + indentWidth + "\n" +
				"  delimiter: " + delimiter + "\n" +
				"  prefer_tables: " + boolString(preferTables) + "\n"

			if err := os.WriteFile(".toon.yml", []byte(content), 0o644); err != nil {
				return fail("failed to write .toon.yml: %w", err)
			}

			color.New(color.FgGreen, color.Bold).Fprintln(cmd.OutOrStdout(), "wrote .toon.yml")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "accept defaults without prompting")
	return cmd
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
