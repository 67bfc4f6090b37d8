package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/douhashi/gh-labels/internal/config"
	"github.com/douhashi/gh-labels/internal/github"
	"github.com/douhashi/gh-labels/internal/labels"
	"github.com/douhashi/gh-labels/internal/logger"
	"github.com/douhashi/gh-labels/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// テスト時に差し替え可能なServiceFactoryの生成関数
var newServiceFactoryFunc = func(log logger.Logger, cfg *config.Config) labels.ServiceFactory {
	var opts []github.ClientOption
	if cfg.GitHub.BaseURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.GitHub.BaseURL))
	}
	if cfg.Sync.RequestsPerSecond > 0 {
		opts = append(opts, github.WithRequestsPerSecond(cfg.Sync.RequestsPerSecond))
	}
	return labels.DefaultServiceFactory(log, opts...)
}

// リポジトリ情報の自動検出（テスト時に差し替え可能）
var detectRepoFunc = utils.GetGitHubRepoInfo

func newSyncCmd() *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "リポジトリのラベルを標準セットに同期",
		Long: `既存のラベルを取得し、必要に応じてすべて削除した後、
標準ラベル一式を作成します。

--owner/--repoを省略した場合はgit remoteから自動検出します。
トークンは --token、GH_LABELS_GITHUB_TOKEN、GITHUB_TOKEN の順に参照します。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			config.SetDefaults(v)
			if err := bindSyncFlags(v, cmd); err != nil {
				return err
			}
			cfg, err := config.LoadWithViper(v, cfgFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.GitHub.Username == "" || cfg.GitHub.Repo == "" {
				fillRepoFromRemote(ctx, cfg, remote)
			}

			return runSync(ctx, cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().String("owner", "", "リポジトリのオーナー（ユーザー名または組織名）")
	cmd.Flags().String("repo", "", "リポジトリ名")
	cmd.Flags().String("token", "", "GitHubトークン")
	cmd.Flags().String("user-agent", "", "User-Agentヘッダー")
	cmd.Flags().String("base-url", "", "GitHub APIのベースURL（GitHub Enterprise用）")
	cmd.Flags().Bool("clean-existing", true, "作成前に既存のラベルをすべて削除する")
	cmd.Flags().Float64("rps", 0, "1秒あたりの最大リクエスト数（0は無制限）")
	cmd.Flags().StringVar(&remote, "remote", "origin", "自動検出に使うgit remote名")

	return cmd
}

func bindSyncFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		"github.username":          "owner",
		"github.repo":              "repo",
		"github.token":             "token",
		"github.user_agent":        "user-agent",
		"github.base_url":          "base-url",
		"sync.clean_existing":      "clean-existing",
		"sync.requests_per_second": "rps",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}

func fillRepoFromRemote(ctx context.Context, cfg *config.Config, remote string) {
	info, err := detectRepoFunc(ctx, remote)
	if err != nil {
		appLog.Debug("Failed to detect repository from git remote", "remote", remote, "error", err)
		return
	}
	if cfg.GitHub.Username == "" {
		cfg.GitHub.Username = info.Owner
	}
	if cfg.GitHub.Repo == "" {
		cfg.GitHub.Repo = info.Repo
	}
}

func runSync(ctx context.Context, out io.Writer, cfg *config.Config) error {
	clean := cfg.Sync.CleanExisting
	opts := labels.Options{
		Username:      cfg.GitHub.Username,
		Repo:          cfg.GitHub.Repo,
		Token:         cfg.GitHub.Token,
		UserAgent:     cfg.GitHub.UserAgent,
		CleanExisting: &clean,
	}
	if opts.UserAgent == "" {
		opts.UserAgent = userAgent()
	}

	syncer := labels.NewSynchronizer(
		labels.WithLogger(appLog),
		labels.WithServiceFactory(newServiceFactoryFunc(appLog, cfg)),
	)

	report, err := syncer.Sync(ctx, opts)
	if err != nil {
		if labels.IsConfigError(err) {
			return fmt.Errorf("%w\n\n--owner/--repo/--token またはGITHUB_TOKEN環境変数を指定してください", err)
		}
		return err
	}

	fmt.Fprintf(out, "✅ %s/%s のラベルを同期しました\n", opts.Username, opts.Repo)
	fmt.Fprintf(out, "  既存: %d\n", report.Existing)
	if report.Cleaned {
		fmt.Fprintf(out, "  削除: %d (存在しない: %d, 失敗: %d)\n",
			report.Deleted.Deleted, report.Deleted.NotFound, report.Deleted.Failed)
	}
	fmt.Fprintf(out, "  作成: %d (既存: %d)\n", report.Created.Created, report.Created.AlreadyExists)
	return nil
}
