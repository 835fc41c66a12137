package adapter

import "errors"

var (
	ErrUnauthorized     = errors.New("client unauthorized")
	ErrUpstreamThrottle = errors.New("upstream rate limit hit")
)
