package github

import (
	"net/http"

	"golang.org/x/time/rate"
)

// rateLimitedRoundTripper blocks each request until the limiter grants a token.
type rateLimitedRoundTripper struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func newRateLimitedRoundTripper(base http.RoundTripper, rps float64) *rateLimitedRoundTripper {
	return &rateLimitedRoundTripper{
		base:    base,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// RoundTrip waits for the limiter, then forwards the request
func (rt *rateLimitedRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := rt.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return rt.base.RoundTrip(req)
}
