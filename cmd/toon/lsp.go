package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/madskristensen/toon/internal/lspadapter"
	"github.com/madskristensen/toon/internal/toonconfig"
	"github.com/madskristensen/toon/pkg/toon"
)

func newLSPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Run a Language Server Protocol server over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := toon.DefaultOptions()
			if cfg, err := toonconfig.Load(); err == nil {
				opts = cfg.ParseOptions()
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return lspadapter.NewServer(opts).Run(ctx)
		},
	}
}
