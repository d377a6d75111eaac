package httpclient

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/slidespeak/slidespeak-mcp-go/internal/config"
	"github.com/slidespeak/slidespeak-mcp-go/pkg/circuitbreaker"
	"github.com/slidespeak/slidespeak-mcp-go/pkg/ratelimiter"
)

// ErrRateLimited is returned when the outbound rate limiter rejects a
// request before it is sent.
var ErrRateLimited = errors.New("outbound request rate limit exceeded")

// Client wraps the standard http.Client with an optional circuit
// breaker and an optional rate limiter for outbound API calls. Both are
// disabled unless configured. Request deadlines come from the request
// context, not from the client.
type Client struct {
	httpClient *http.Client
	breaker    circuitbreaker.CircuitBreaker
	limiter    ratelimiter.RateLimiter
}

// NewClient creates a Client with middleware configured from cfg.
func NewClient(cfg config.MiddlewareConfig) (*Client, error) {
	c := &Client{httpClient: &http.Client{}}

	if cfg.RateLimiter.Enabled {
		tb := cfg.RateLimiter.TokenBucket
		c.limiter = ratelimiter.NewTokenBucket(tb.Rate, tb.Capacity)
	}

	if cfg.CircuitBreaker.Enabled {
		timeout, err := time.ParseDuration(cfg.CircuitBreaker.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid circuit breaker timeout %q: %w", cfg.CircuitBreaker.Timeout, err)
		}
		c.breaker = circuitbreaker.New(
			cfg.CircuitBreaker.FailureThreshold,
			cfg.CircuitBreaker.SuccessThreshold,
			timeout,
		)
	}

	return c, nil
}

// Do executes an HTTP request through the configured middleware.
// Server-side errors (status >= 500) count as circuit breaker failures
// but the response is still returned so callers can log its body.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.limiter != nil && !c.limiter.Allow() {
		return nil, ErrRateLimited
	}

	if c.breaker == nil {
		return c.httpClient.Do(req)
	}

	var resp *http.Response
	_, breakerErr := c.breaker.Execute(func() (interface{}, error) {
		var err error
		resp, err = c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("server error: received status code %d", resp.StatusCode)
		}
		return resp, nil
	})

	if breakerErr != nil {
		// A 5xx response was recorded as a failure; hand it back anyway.
		if resp != nil {
			return resp, nil
		}
		return nil, breakerErr
	}
	return resp, nil
}
