package dataset

import (
	"fmt"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/leagues"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/matches"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/players"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/standings"
)

// Dataset groups the four collections.
type Dataset struct {
	Matches   []matches.Match
	Leagues   []leagues.League
	Standings []standings.Row
	Players   []players.Player
}

// Len reports the record count of a single resource.
func (d Dataset) Len(resource domain.Resource) int {
	switch resource {
	case domain.ResourceMatches:
		return len(d.Matches)
	case domain.ResourceLeagues:
		return len(d.Leagues)
	case domain.ResourceStandings:
		return len(d.Standings)
	case domain.ResourcePlayers:
		return len(d.Players)
	}
	return 0
}

// Validate decodes a resource document with its typed schema and returns the record count.
func Validate(resource domain.Resource, data []byte) (int, error) {
	switch resource {
	case domain.ResourceMatches:
		items, err := matches.Decode(data)
		return len(items), err
	case domain.ResourceLeagues:
		items, err := leagues.Decode(data)
		return len(items), err
	case domain.ResourceStandings:
		items, err := standings.Decode(data)
		return len(items), err
	case domain.ResourcePlayers:
		items, err := players.Decode(data)
		return len(items), err
	default:
		return 0, fmt.Errorf("unknown resource %q", resource)
	}
}
