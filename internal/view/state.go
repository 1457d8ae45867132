package view

import (
	"context"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/leagues"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/matches"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/players"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/standings"
)

// Loader retrieves the four collections.
type Loader interface {
	FetchMatches(ctx context.Context) ([]matches.Match, error)
	FetchLeagues(ctx context.Context) ([]leagues.League, error)
	FetchStandings(ctx context.Context) ([]standings.Row, error)
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(message string)
}

// Snapshot is a copy of the cached collections.
type Snapshot struct {
	Matches   []matches.Match
	Leagues   []leagues.League
	Standings []standings.Row
	Players   []players.Player
}

// Clone returns a Snapshot that shares no backing arrays with s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Matches:   append([]matches.Match(nil), s.Matches...),
		Leagues:   append([]leagues.League(nil), s.Leagues...),
		Standings: append([]standings.Row(nil), s.Standings...),
		Players:   append([]players.Player(nil), s.Players...),
	}
}

// LoadReport records the outcome of each retrieval made by Initialize.
type LoadReport struct {
	Errors map[domain.Resource]error
}

// OK reports whether every retrieval succeeded.
func (r LoadReport) OK() bool {
	return len(r.Failed()) == 0
}

// Failed lists the resources whose retrieval failed, in resource order.
func (r LoadReport) Failed() []domain.Resource {
	var out []domain.Resource
	for _, res := range domain.Resources {
		if r.Errors[res] != nil {
			out = append(out, res)
		}
	}
	return out
}

// Err returns the retrieval error of one resource.
func (r LoadReport) Err(res domain.Resource) error {
	return r.Errors[res]
}
