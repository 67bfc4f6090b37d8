package github

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/douhashi/gh-labels/internal/logger"
	"github.com/google/go-github/v50/github"
	"golang.org/x/oauth2"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "gh-labels/1.0.0"

// Client はGitHub REST APIクライアントのラッパー
type Client struct {
	github *github.Client
	logger logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

type clientOptions struct {
	userAgent         string
	baseURL           string
	logger            logger.Logger
	requestsPerSecond float64
	transport         http.RoundTripper
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(o *clientOptions) {
		o.userAgent = ua
	}
}

// WithBaseURL points the client at another API root, e.g. a GitHub
// Enterprise server or a test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(l logger.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithRequestsPerSecond caps the request rate. Zero or less disables the cap.
func WithRequestsPerSecond(rps float64) ClientOption {
	return func(o *clientOptions) {
		o.requestsPerSecond = rps
	}
}

// WithTransport replaces the underlying HTTP transport.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(o *clientOptions) {
		o.transport = rt
	}
}

// NewClient は新しいGitHub APIクライアントを作成する
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, errors.New("GitHub token is required")
	}

	o := &clientOptions{
		userAgent: DefaultUserAgent,
		logger:    logger.NewNop(),
		transport: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(o)
	}

	// oauth2 -> rate limit -> logging -> network
	var base http.RoundTripper = &loggingRoundTripper{base: o.transport, logger: o.logger}
	if o.requestsPerSecond > 0 {
		base = newRateLimitedRoundTripper(base, o.requestsPerSecond)
	}

	// TokenType "token" makes oauth2 send "Authorization: token <token>".
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "token"})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: ts, Base: base},
	}

	gh := github.NewClient(httpClient)
	if o.userAgent != "" {
		gh.UserAgent = o.userAgent
	}

	if o.baseURL != "" {
		u, err := parseBaseURL(o.baseURL)
		if err != nil {
			return nil, err
		}
		gh.BaseURL = u
	}

	return &Client{
		github: gh,
		logger: o.logger,
	}, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.github.BaseURL.String()
}

func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", raw)
	}
	return u, nil
}
