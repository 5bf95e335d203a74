package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *cli) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the article catalog",
	}

	var outPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as YAML, the format CATALOG_PATH reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if outPath == "" {
				return a.Catalog().Encode(c.out)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := a.Catalog().Encode(f); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	export.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	topics := &cobra.Command{
		Use:   "topics",
		Short: "List topics with their article counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			for _, t := range a.Catalog().Topics() {
				fmt.Fprintf(c.out, "%-28s %-26s %d\n", t.Slug, t.Name, len(a.Catalog().ByTopic(t.Slug)))
			}
			return nil
		},
	}

	cmd.AddCommand(export, topics)
	return cmd
}
