package client

import (
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "http://127.0.0.1:5000"
	defaultTimeout   = 10 * time.Second
	errorBodyLimit   = 512
	maxDocumentBytes = 8 << 20
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}
