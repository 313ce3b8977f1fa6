package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second

	// redisPingTimeout bounds the startup probe of the side cache.
	redisPingTimeout = 2 * time.Second

	// Each sport talks to one host; a few idle connections per host cover concurrent polls.
	upstreamIdleConnsPerHost = 8
)

// shutdownTimeout remains a var for tests to override; it is shared by
// the API server, the metrics server, and the telemetry flushes.
var shutdownTimeout = 10 * time.Second
