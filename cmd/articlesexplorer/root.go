package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"ArticlesExplorer/internal/app"
	"ArticlesExplorer/internal/config"
	"ArticlesExplorer/internal/logging"
)

// cli carries what every subcommand needs once the root has loaded config.
type cli struct {
	out     io.Writer
	verbose bool
	cfg     config.Config
	logger  *slog.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	root := &cobra.Command{
		Use:   "articlesexplorer",
		Short: "Browse and search the space biology article catalog",
		Long: `articlesexplorer serves the space biology article catalog over HTTP,
browses it in the terminal, and manages the read and highlight marks.

Example usage:
  articlesexplorer serve                  # HTML pages and JSON API on :8080
  articlesexplorer search microgravity    # Preview matching articles
  articlesexplorer browse                 # Interactive terminal browser
  articlesexplorer state show             # Highlighted and read articles`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.init()
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		c.serveCmd(),
		c.searchCmd(),
		c.browseCmd(),
		c.stateCmd(),
		c.catalogCmd(),
	)
	return root
}

func (c *cli) init() {
	c.cfg = config.Load()
	if c.verbose {
		c.cfg.Logging.Level = "debug"
	}
	c.logger = logging.New(c.cfg.Logging.Level)
}

// open builds the application; callers close it.
func (c *cli) open(ctx context.Context) (*app.Application, error) {
	return app.New(ctx, c.cfg, c.logger)
}
