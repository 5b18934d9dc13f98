// Command toon is the TOON processor CLI: parse, tokenize, and encode
// documents, run a language server for editor integration, and
// scaffold a new project config.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information, set at build time via -ldflags.
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toon",
		Short: "TOON — Token-Oriented Object Notation processor",
		Long: color.CyanString(`toon — a resilient parser and encoder for the TOON data format

TOON is a line-oriented, indentation-sensitive data format: a readable
middle ground between JSON and YAML with first-class compact arrays
and tables.`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newTokenizeCommand())
	rootCmd.AddCommand(newEncodeCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newLSPCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			title := color.New(color.FgCyan, color.Bold)
			value := color.New(color.FgWhite)
			title.Print("toon version: ")
			value.Println(Version)
			title.Print("Git commit: ")
			value.Println(GitCommit)
			title.Print("Build date: ")
			value.Println(BuildDate)
		},
	}
}

func fail(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
