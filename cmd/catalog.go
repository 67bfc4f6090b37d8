package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/douhashi/gh-labels/internal/github"
	"github.com/douhashi/gh-labels/internal/labels"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCatalogCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "作成される標準ラベルの一覧を表示",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := labels.Catalog()
			if err := labels.ValidateCatalog(catalog); err != nil {
				return fmt.Errorf("invalid label catalog: %w", err)
			}
			return printCatalog(cmd.OutOrStdout(), catalog, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "出力形式 (table, json, yaml)")

	return cmd
}

func printCatalog(w io.Writer, catalog []github.Label, format string) error {
	switch format {
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tCOLOR\tDESCRIPTION")
		for _, l := range catalog {
			fmt.Fprintf(tw, "%s\t#%s\t%s\n", l.Name, l.Color, l.Description)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(catalog); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
