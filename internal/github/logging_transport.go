package github

import (
	"bytes"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/douhashi/gh-labels/internal/logger"
)

const bodyPreviewLimit = 200

// loggingRoundTripper はHTTPリクエスト/レスポンスをデバッグログに出力するラウンドトリッパー
type loggingRoundTripper struct {
	base   http.RoundTripper
	logger logger.Logger
}

// RoundTrip はHTTPリクエストを実行し、その結果をログ出力する
func (rt *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	rt.logRequest(req)

	resp, err := rt.base.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		rt.logger.Debug("github_api_error",
			"method", req.Method,
			"url", req.URL.String(),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return nil, err
	}

	rt.logResponse(req, resp, duration)
	return resp, nil
}

func (rt *loggingRoundTripper) logRequest(req *http.Request) {
	fields := []interface{}{
		"method", req.Method,
		"url", req.URL.String(),
	}
	// ロガー側のサニタイザでマスクされる
	if auth := req.Header.Get("Authorization"); auth != "" {
		fields = append(fields, "authorization", auth)
	}
	if ua := req.Header.Get("User-Agent"); ua != "" {
		fields = append(fields, "user_agent", ua)
	}

	rt.logger.Debug("github_api_request", fields...)
}

func (rt *loggingRoundTripper) logResponse(req *http.Request, resp *http.Response, duration time.Duration) {
	fields := []interface{}{
		"method", req.Method,
		"url", req.URL.String(),
		"status_code", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	}

	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		fields = append(fields, "rate_limit_remaining", remaining)
	}
	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		fields = append(fields, "rate_limit_reset", reset)
	}

	// 失敗レスポンスのみボディを記録する（成功時の一覧は大きくなりがち）
	if resp.StatusCode >= http.StatusBadRequest && resp.Body != nil {
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(body))
		if err == nil {
			fields = append(fields, "body_preview", bodyPreview(body))
		}
	}

	rt.logger.Debug("github_api_response", fields...)
}

// bodyPreview はボディの先頭をルーン境界で切り詰めて返す
func bodyPreview(body []byte) string {
	if len(body) <= bodyPreviewLimit {
		return string(body)
	}
	cut := bodyPreviewLimit
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return string(body[:cut]) + "..."
}
