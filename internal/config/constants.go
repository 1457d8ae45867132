package config

import "time"

const (
	defaultHost          = "0.0.0.0"
	defaultPort          = "5000"
	defaultDataDir       = "data"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "soccer-prophet"
	defaultClientBaseURL = "http://127.0.0.1:5000"
	defaultClientTimeout = 10 * time.Second
	// Matches how long the load-failure banner stays on screen.
	defaultNotifyDelay = 5 * time.Second
)
