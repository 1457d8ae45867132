package fixture

import (
	"encoding/json"
	"testing"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/dataset"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/matches"
)

func TestDatasetPassesValidation(t *testing.T) {
	d := Dataset()
	payloads := map[domain.Resource]any{
		domain.ResourceMatches:   d.Matches,
		domain.ResourceLeagues:   d.Leagues,
		domain.ResourceStandings: d.Standings,
		domain.ResourcePlayers:   d.Players,
	}
	for _, r := range domain.Resources {
		data, err := json.Marshal(payloads[r])
		if err != nil {
			t.Fatalf("marshal %s: %v", r, err)
		}
		n, err := dataset.Validate(r, data)
		if err != nil {
			t.Fatalf("expected %s fixture to validate, got %v", r, err)
		}
		if n != d.Len(r) || n == 0 {
			t.Fatalf("expected %d %s records, got %d", d.Len(r), r, n)
		}
	}
}

func TestMatchesMixFeatured(t *testing.T) {
	featured, remaining := matches.Partition(Matches())
	if len(featured) == 0 || len(remaining) == 0 {
		t.Fatalf("expected fixture to contain both featured and regular matches")
	}
}

func TestFixturesAreFreshCopies(t *testing.T) {
	a := Matches()
	*a[0].Prediction = "changed"
	if *Matches()[0].Prediction == "changed" {
		t.Fatalf("expected independent fixture copies")
	}
}
