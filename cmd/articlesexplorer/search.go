package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ArticlesExplorer/internal/search"
)

func (c *cli) searchCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Preview the articles matching a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			opts := a.SearchOptions()
			s := search.Evaluate(a.Catalog(), opts, strings.Join(args, " "))
			if asJSON {
				return writeJSON(c.out, s)
			}
			printSuggestion(c.out, s, opts.MinQueryLength)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func printSuggestion(w io.Writer, s search.Suggestion, minLength int) {
	if s.State != search.Suggesting.String() {
		fmt.Fprintf(w, "Type at least %d characters to search.\n", minLength)
		return
	}
	if s.Notice != "" {
		fmt.Fprintln(w, s.Notice)
		return
	}
	for _, a := range s.Results {
		fmt.Fprintf(w, "%s\n  %s\n  /article/%s\n", a.Title, a.Description, a.ID)
	}
	if s.Total > len(s.Results) {
		fmt.Fprintf(w, "Showing %d of %d matches\n", len(s.Results), s.Total)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
