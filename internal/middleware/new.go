package middleware

import (
	"mcal/pkg/log"
)

// Middleware bundles the gin middlewares of the HTTP server.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middlewares. rateLimitPerMin bounds requests per client IP
// on routes wrapped with RateLimit; values below 1 disable the limit.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rateLimitPerMin),
	}
}
