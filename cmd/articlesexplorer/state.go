package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ArticlesExplorer/internal/app"
	"ArticlesExplorer/internal/interaction"
	"ArticlesExplorer/internal/usecase"
)

func (c *cli) stateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect and change read and highlight marks",
	}

	var asJSON bool
	show := &cobra.Command{
		Use:   "show",
		Short: "List highlighted and read articles",
		Args:  cobra.NoArgs,
		RunE: c.withState(func(ctx context.Context, a *app.Application, st *interaction.Store, _ []string) error {
			if asJSON {
				return writeJSON(c.out, st.Snapshot())
			}
			fmt.Fprint(c.out, usecase.FormatReadingList(a.Views().ReadingList(ctx, st)))
			return nil
		}),
	}
	show.Flags().BoolVar(&asJSON, "json", false, "output the raw id lists as JSON")

	read := &cobra.Command{
		Use:   "read <id>",
		Short: "Toggle the read mark of an article",
		Args:  cobra.ExactArgs(1),
		RunE: c.withState(func(ctx context.Context, a *app.Application, st *interaction.Store, args []string) error {
			item, err := a.Views().ToggleRead(ctx, st, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s: %s\n", args[0], mark(item.Read, "read", "unread"))
			return nil
		}),
	}

	highlight := &cobra.Command{
		Use:   "highlight <id>",
		Short: "Toggle the highlight of an article",
		Args:  cobra.ExactArgs(1),
		RunE: c.withState(func(ctx context.Context, a *app.Application, st *interaction.Store, args []string) error {
			item, err := a.Views().ToggleHighlight(ctx, st, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s: %s\n", args[0], mark(item.Highlighted, "highlighted", "not highlighted"))
			return nil
		}),
	}

	markRead := &cobra.Command{
		Use:   "mark <id>",
		Short: "Mark an article read, as opening it does",
		Args:  cobra.ExactArgs(1),
		RunE: c.withState(func(ctx context.Context, a *app.Application, st *interaction.Store, args []string) error {
			if _, err := a.Views().MarkRead(ctx, st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s: read\n", args[0])
			return nil
		}),
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget every read and highlight mark",
		Args:  cobra.NoArgs,
		RunE: c.withState(func(ctx context.Context, _ *app.Application, st *interaction.Store, _ []string) error {
			if err := st.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "state cleared")
			return nil
		}),
	}

	cmd.AddCommand(show, read, highlight, markRead, clearCmd)
	return cmd
}

type stateFunc func(ctx context.Context, a *app.Application, st *interaction.Store, args []string) error

// withState opens the application and hands the local viewer's store to fn.
func (c *cli) withState(fn stateFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := c.open(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		return fn(ctx, a, a.State(ctx), args)
	}
}

func mark(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}
