package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitHubURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    *GitHubRepoInfo
		wantErr bool
	}{
		{name: "HTTPS形式", url: "https://github.com/octocat/hello-world.git", want: &GitHubRepoInfo{Owner: "octocat", Repo: "hello-world"}},
		{name: "HTTPS形式(.gitなし)", url: "https://github.com/octocat/hello-world", want: &GitHubRepoInfo{Owner: "octocat", Repo: "hello-world"}},
		{name: "HTTPS形式(認証情報付き)", url: "https://x-access-token@github.com/octocat/hello-world.git", want: &GitHubRepoInfo{Owner: "octocat", Repo: "hello-world"}},
		{name: "SSH形式", url: "git@github.com:octocat/hello-world.git", want: &GitHubRepoInfo{Owner: "octocat", Repo: "hello-world"}},
		{name: "ssh://形式", url: "ssh://git@github.com/octocat/hello-world.git", want: &GitHubRepoInfo{Owner: "octocat", Repo: "hello-world"}},
		{name: "GitHub Enterprise", url: "https://ghe.example.com/team/app.git\n", want: &GitHubRepoInfo{Owner: "team", Repo: "app"}},
		{name: "異常系: パスが足りない", url: "https://github.com/octocat", wantErr: true},
		{name: "異常系: 空文字", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGitHubURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetGitHubRepoInfo(t *testing.T) {
	original := gitRemoteURLFunc
	t.Cleanup(func() { gitRemoteURLFunc = original })

	t.Run("デフォルトはoriginを参照する", func(t *testing.T) {
		var gotRemote string
		gitRemoteURLFunc = func(ctx context.Context, remote string) (string, error) {
			gotRemote = remote
			return "git@github.com:octocat/hello-world.git\n", nil
		}

		info, err := GetGitHubRepoInfo(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, "origin", gotRemote)
		assert.Equal(t, &GitHubRepoInfo{Owner: "octocat", Repo: "hello-world"}, info)
	})

	t.Run("異常系: gitコマンドの失敗", func(t *testing.T) {
		gitRemoteURLFunc = func(ctx context.Context, remote string) (string, error) {
			return "", errors.New("not a git repository")
		}

		_, err := GetGitHubRepoInfo(context.Background(), "upstream")

		assert.ErrorContains(t, err, `"upstream"`)
	})
}
