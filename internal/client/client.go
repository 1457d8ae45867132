package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/leagues"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/matches"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/players"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/standings"
	"github.com/preston-bernstein/soccer-prophet/internal/logging"
	"github.com/preston-bernstein/soccer-prophet/internal/metrics"
)

// Config controls how the client reaches the data service.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Metrics    *metrics.Recorder
	Logger     *slog.Logger
}

// Client retrieves resource collections from the data service.
type Client struct {
	baseURL    string
	httpClient httpDoer
	metrics    *metrics.Recorder
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// FetchMatches retrieves the match list.
func (c *Client) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	return fetchTyped(ctx, c, domain.ResourceMatches, matches.Decode)
}

// FetchLeagues retrieves the league list.
func (c *Client) FetchLeagues(ctx context.Context) ([]leagues.League, error) {
	return fetchTyped(ctx, c, domain.ResourceLeagues, leagues.Decode)
}

// FetchStandings retrieves the standings table.
func (c *Client) FetchStandings(ctx context.Context) ([]standings.Row, error) {
	return fetchTyped(ctx, c, domain.ResourceStandings, standings.Decode)
}

// FetchPlayers retrieves player statistics.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return fetchTyped(ctx, c, domain.ResourcePlayers, players.Decode)
}

func fetchTyped[T any](ctx context.Context, c *Client, resource domain.Resource, decode func([]byte) ([]T, error)) ([]T, error) {
	start := c.now()
	body, err := c.retrieve(ctx, resource)
	var out []T
	if err == nil {
		out, err = decode(body)
	}
	elapsed := c.now().Sub(start)
	c.metrics.RecordClientFetch(string(resource), elapsed, err)

	if err != nil {
		logging.Warn(c.logger, "resource fetch failed",
			slog.String(logging.FieldResource, string(resource)),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	logging.Info(c.logger, "resource fetched",
		slog.String(logging.FieldResource, string(resource)),
		slog.Int(logging.FieldCount, len(out)),
	)
	return out, nil
}

// retrieve issues one GET for the resource document and returns its body.
func (c *Client) retrieve(ctx context.Context, resource domain.Resource) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+resource.Path(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, newStatusError(resource, resp.StatusCode, body)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", resource, err)
	}
	return body, nil
}
