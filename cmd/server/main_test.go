package main

import (
	"testing"
)

// main must return immediately under SKIP_SERVER_RUN so test runs never bind a port.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	t.Setenv("DATA_DIR", t.TempDir())
	main()
}
