package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ArticlesExplorer/internal/logging"
	"ArticlesExplorer/internal/tui"
)

func (c *cli) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTML pages and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				c.cfg.Server.Addr = addr
			}

			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			return a.Serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func (c *cli) browseCmd() *cobra.Command {
	var style, logPath string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Search and read articles in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Nothing may write to stderr while the alternate screen is up.
			logger, closeLog, err := browseLogger(logPath, c.cfg.Logging.Level)
			if err != nil {
				return err
			}
			defer closeLog()
			c.logger = logger

			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			m, err := a.Browser(cmd.Context(), style)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), m)
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "glamour style: dark, light, notty (default: detect)")
	cmd.Flags().StringVar(&logPath, "log", "", "append logs to this file (default: discard)")
	return cmd
}

// browseLogger logs to path, or nowhere when path is empty.
func browseLogger(path, level string) (*slog.Logger, func() error, error) {
	if path == "" {
		return logging.NewWithWriter(io.Discard, level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.NewWithWriter(f, level), f.Close, nil
}
