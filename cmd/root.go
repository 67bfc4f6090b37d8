package cmd

import (
	"fmt"
	"os"

	"github.com/douhashi/gh-labels/internal/logger"
	"github.com/douhashi/gh-labels/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
	rootCmd  *cobra.Command
	appLog   logger.Logger
)

func init() {
	rootCmd = NewRootCmd()
}

// NewRootCmd creates a new root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gh-labels",
		Short: "GitHubリポジトリのラベルを標準セットに揃える",
		Long: `gh-labelsは、GitHubリポジトリの既存ラベルを削除し、
Priority/Status/Typeなどの標準ラベル一式を作成するCLIツールです。`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// ロガーの初期化
			opts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}
			if verbose {
				opts = append(opts, logger.WithLevel("debug"))
			}
			if logLevel != "" {
				opts = append(opts, logger.WithLevel(logLevel))
			}

			var err error
			appLog, err = logger.NewFromEnv(opts...)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "設定ファイルのパス")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "詳細出力")
	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "ログレベル (debug, info, warn, error)")

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
