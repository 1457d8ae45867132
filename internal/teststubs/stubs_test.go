package teststubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/players"
)

func TestStubLoaderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	l := &StubLoader{
		Players: []players.Player{{Name: "p1"}},
		Errs:    map[domain.Resource]error{domain.ResourceLeagues: err},
	}
	ctx := context.Background()

	if got, gotErr := l.FetchPlayers(ctx); gotErr != nil || len(got) != 1 {
		t.Fatalf("expected players passthrough, got %v %v", got, gotErr)
	}
	if _, gotErr := l.FetchLeagues(ctx); !errors.Is(gotErr, err) {
		t.Fatalf("expected error passthrough, got %v", gotErr)
	}
	if _, gotErr := l.FetchMatches(ctx); gotErr != nil {
		t.Fatalf("unexpected error %v", gotErr)
	}
	if _, gotErr := l.FetchStandings(ctx); gotErr != nil {
		t.Fatalf("unexpected error %v", gotErr)
	}
	if l.Calls.Load() != 4 {
		t.Fatalf("expected call count 4, got %d", l.Calls.Load())
	}
}

func TestStubLoaderGateHonoursContext(t *testing.T) {
	l := &StubLoader{Gate: make(chan struct{})}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := l.FetchMatches(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestRecordingNotifierCopiesMessages(t *testing.T) {
	n := &RecordingNotifier{}
	n.Notify("a")
	got := n.Messages()
	got[0] = "mutated"
	if n.Messages()[0] != "a" {
		t.Fatalf("expected Messages to return a copy")
	}
}
