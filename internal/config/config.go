package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix は環境変数のプレフィックス
const EnvPrefix = "GH_LABELS"

// configName は設定ファイルの探索時に使うファイル名（拡張子なし）
const configName = "gh-labels"

// Config はアプリケーション全体の設定
type Config struct {
	GitHub GitHubConfig `mapstructure:"github"`
	Sync   SyncConfig   `mapstructure:"sync"`
}

// GitHubConfig は対象リポジトリと接続の設定
type GitHubConfig struct {
	Username  string `mapstructure:"username"`
	Repo      string `mapstructure:"repo"`
	Token     string `mapstructure:"token"`
	UserAgent string `mapstructure:"user_agent"`
	BaseURL   string `mapstructure:"base_url"`
}

// SyncConfig は同期処理の設定
type SyncConfig struct {
	CleanExisting     bool    `mapstructure:"clean_existing"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

// NewConfig はデフォルト値を持つConfigを作成する
func NewConfig() *Config {
	return &Config{
		Sync: SyncConfig{
			CleanExisting: true,
		},
	}
}

// SetDefaults はviperにデフォルト値と環境変数の対応を設定する
func SetDefaults(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// GITHUB_TOKENもサポート
	v.BindEnv("github.token", EnvPrefix+"_GITHUB_TOKEN", "GITHUB_TOKEN")

	v.SetDefault("github.username", "")
	v.SetDefault("github.repo", "")
	v.SetDefault("github.user_agent", "")
	v.SetDefault("github.base_url", "")
	v.SetDefault("sync.clean_existing", true)
	v.SetDefault("sync.requests_per_second", 0)
}

// Load は設定ファイルと環境変数から設定を読み込む
func Load(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	return LoadWithViper(v, configPath)
}

// LoadWithViper はフラグなどをバインド済みのviperに設定ファイルを読み込み、
// 設定を取り出す。configPathが空の場合はDefaultConfigPathsから
// gh-labels.yamlを探し、見つからなければ環境変数とデフォルト値のみを使用する
func LoadWithViper(v *viper.Viper, configPath string) (*Config, error) {
	if err := readConfigFile(v, configPath); err != nil {
		return nil, err
	}
	return FromViper(v)
}

func readConfigFile(v *viper.Viper, configPath string) error {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	for _, p := range DefaultConfigPaths() {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// FromViper はviperインスタンスから設定を取り出す
func FromViper(v *viper.Viper) (*Config, error) {
	c := NewConfig()
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return c, nil
}

// DefaultConfigPaths は設定ファイルを探すディレクトリ
func DefaultConfigPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{home + "/.config/gh-labels", home}
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Sync.RequestsPerSecond < 0 {
		return errors.New("requests per second must not be negative")
	}
	return nil
}
