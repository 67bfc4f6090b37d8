package cmd

import (
	"fmt"

	"github.com/douhashi/gh-labels/internal/github"
	"github.com/douhashi/gh-labels/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "バージョン情報を表示",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get())
			return nil
		},
	}
}

// userAgent はAPIリクエストに付与するデフォルトのUser-Agent
func userAgent() string {
	v := version.Get().Version
	if v == "" || v == "dev" {
		return github.DefaultUserAgent
	}
	return "gh-labels/" + v
}
