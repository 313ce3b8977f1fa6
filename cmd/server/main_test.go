package main

import (
	"testing"
)

// main must return immediately under SKIP_SERVER_RUN so the package can be tested without binding a port.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	t.Setenv("PROVIDER", "fixture")
	main()
}
