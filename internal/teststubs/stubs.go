package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/leagues"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/matches"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/players"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/standings"
)

// StubLoader is a test double for view.Loader that counts retrievals.
type StubLoader struct {
	Matches   []matches.Match
	Leagues   []leagues.League
	Standings []standings.Row
	Players   []players.Player
	Errs      map[domain.Resource]error
	Calls     atomic.Int32

	// Gate, when set, blocks every fetch until it is closed.
	Gate chan struct{}
}

func (s *StubLoader) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	if err := s.enter(ctx, domain.ResourceMatches); err != nil {
		return nil, err
	}
	return s.Matches, nil
}

func (s *StubLoader) FetchLeagues(ctx context.Context) ([]leagues.League, error) {
	if err := s.enter(ctx, domain.ResourceLeagues); err != nil {
		return nil, err
	}
	return s.Leagues, nil
}

func (s *StubLoader) FetchStandings(ctx context.Context) ([]standings.Row, error) {
	if err := s.enter(ctx, domain.ResourceStandings); err != nil {
		return nil, err
	}
	return s.Standings, nil
}

func (s *StubLoader) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := s.enter(ctx, domain.ResourcePlayers); err != nil {
		return nil, err
	}
	return s.Players, nil
}

func (s *StubLoader) enter(ctx context.Context, r domain.Resource) error {
	s.Calls.Add(1)
	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.Errs[r]
}

// RecordingNotifier collects every notification it receives.
type RecordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

// Notify records message.
func (n *RecordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

// Messages returns a copy of the recorded notifications.
func (n *RecordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}
