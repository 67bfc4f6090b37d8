package utils

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// GitHubRepoInfo はGitHubリポジトリの情報を保持する構造体
type GitHubRepoInfo struct {
	Owner string
	Repo  string
}

var (
	httpsPattern = regexp.MustCompile(`^https?://(?:[^@/]+@)?[^/]+/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	sshPattern   = regexp.MustCompile(`^(?:ssh://)?git@[^:/]+[:/]([^/]+)/([^/]+?)(?:\.git)?$`)
)

// ParseGitHubURL はリモートURLからowner/repo情報を抽出する
// 以下の形式に対応:
// - https://github.com/owner/repo.git
// - https://github.com/owner/repo
// - git@github.com:owner/repo.git
// - ssh://git@github.com/owner/repo.git
func ParseGitHubURL(url string) (*GitHubRepoInfo, error) {
	url = strings.TrimSpace(url)

	for _, pattern := range []*regexp.Regexp{httpsPattern, sshPattern} {
		if matches := pattern.FindStringSubmatch(url); len(matches) == 3 {
			return &GitHubRepoInfo{Owner: matches[1], Repo: matches[2]}, nil
		}
	}

	return nil, fmt.Errorf("invalid GitHub URL format: %s", url)
}

// モック用の関数変数
var gitRemoteURLFunc = func(ctx context.Context, remote string) (string, error) {
	out, err := exec.CommandContext(ctx, "git", "remote", "get-url", remote).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// GetGitHubRepoInfo はカレントディレクトリのgitリモートからリポジトリ情報を取得する
func GetGitHubRepoInfo(ctx context.Context, remote string) (*GitHubRepoInfo, error) {
	if remote == "" {
		remote = "origin"
	}

	url, err := gitRemoteURLFunc(ctx, remote)
	if err != nil {
		return nil, fmt.Errorf("failed to get URL of git remote %q: %w", remote, err)
	}

	return ParseGitHubURL(url)
}
