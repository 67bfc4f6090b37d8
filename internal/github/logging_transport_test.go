package github

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/douhashi/gh-labels/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func findEntry(entries []observer.LoggedEntry, msg string) (observer.LoggedEntry, bool) {
	for _, e := range entries {
		if e.Message == msg {
			return e, true
		}
	}
	return observer.LoggedEntry{}, false
}

func TestLoggingRoundTripper_RoundTrip(t *testing.T) {
	t.Run("正常系: リクエスト/レスポンスがログ出力される", func(t *testing.T) {
		core, observed := observer.New(zapcore.DebugLevel)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Remaining", "4999")
			w.Header().Set("X-RateLimit-Reset", "1234567890")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		rt := &loggingRoundTripper{base: http.DefaultTransport, logger: logger.NewWithCore(core)}

		req, err := http.NewRequest(http.MethodGet, server.URL+"/repos/octocat/hello-world/labels", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "token "+testToken)
		req.Header.Set("User-Agent", "gh-labels/test")

		resp, err := rt.RoundTrip(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		reqLog, ok := findEntry(observed.All(), "github_api_request")
		require.True(t, ok)
		assert.Equal(t, "GET", reqLog.ContextMap()["method"])
		assert.Equal(t, "token ***MASKED***", reqLog.ContextMap()["authorization"])
		assert.Equal(t, "gh-labels/test", reqLog.ContextMap()["user_agent"])

		respLog, ok := findEntry(observed.All(), "github_api_response")
		require.True(t, ok)
		assert.Equal(t, int64(200), respLog.ContextMap()["status_code"])
		assert.Equal(t, "4999", respLog.ContextMap()["rate_limit_remaining"])
		assert.NotContains(t, respLog.ContextMap(), "body_preview")
	})

	t.Run("正常系: 失敗レスポンスのボディは要約されるが読み直せる", func(t *testing.T) {
		core, observed := observer.New(zapcore.DebugLevel)
		largeBody := strings.Repeat("a", 1000)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(largeBody))
		}))
		defer server.Close()

		rt := &loggingRoundTripper{base: http.DefaultTransport, logger: logger.NewWithCore(core)}

		req, err := http.NewRequest(http.MethodPost, server.URL, nil)
		require.NoError(t, err)

		resp, err := rt.RoundTrip(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, largeBody, string(body))

		respLog, ok := findEntry(observed.All(), "github_api_response")
		require.True(t, ok)
		preview := respLog.ContextMap()["body_preview"].(string)
		assert.Len(t, preview, 203)
		assert.True(t, strings.HasSuffix(preview, "..."))
	})

	t.Run("異常系: トランスポートエラーがログ出力される", func(t *testing.T) {
		core, observed := observer.New(zapcore.DebugLevel)
		rt := &loggingRoundTripper{base: http.DefaultTransport, logger: logger.NewWithCore(core)}

		req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:1/", nil)
		require.NoError(t, err)

		_, err = rt.RoundTrip(req)
		assert.Error(t, err)

		errLog, ok := findEntry(observed.All(), "github_api_error")
		require.True(t, ok)
		assert.NotEmpty(t, errLog.ContextMap()["error"])
	})
}

func TestBodyPreview(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "上限以下はそのまま",
			body: `{"message":"Not Found"}`,
			want: `{"message":"Not Found"}`,
		},
		{
			name: "ASCIIは上限で切り詰める",
			body: strings.Repeat("a", bodyPreviewLimit+10),
			want: strings.Repeat("a", bodyPreviewLimit) + "...",
		},
		{
			// 1バイト + 3バイト文字の並びで上限がルーンの途中に来る
			name: "マルチバイト文字の途中では切らない",
			body: "a" + strings.Repeat("あ", bodyPreviewLimit),
			want: "a" + strings.Repeat("あ", (bodyPreviewLimit-1)/3) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bodyPreview([]byte(tt.body))
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
