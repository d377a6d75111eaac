package ratelimiter

// RateLimiter gates outbound API calls. Allow reports whether the next
// call may proceed; it never blocks.
type RateLimiter interface {
	Allow() bool
}
