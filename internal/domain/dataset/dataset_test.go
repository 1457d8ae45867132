package dataset

import (
	"testing"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/leagues"
)

func TestValidateCountsRecords(t *testing.T) {
	n, err := Validate(domain.ResourceLeagues, []byte(`[{"name":"A","country":"B","season":"C"}]`))
	if err != nil || n != 1 {
		t.Fatalf("expected 1 record, got %d (%v)", n, err)
	}
}

func TestValidateRejectsUnknownResource(t *testing.T) {
	if _, err := Validate(domain.Resource("teams"), []byte(`[]`)); err == nil {
		t.Fatalf("expected unknown resource error")
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	for _, r := range domain.Resources {
		if _, err := Validate(r, []byte(`{bad`)); err == nil {
			t.Fatalf("expected %s to reject malformed document", r)
		}
	}
}

func TestLen(t *testing.T) {
	d := Dataset{Leagues: []leagues.League{{Name: "A"}, {Name: "B"}}}
	if d.Len(domain.ResourceLeagues) != 2 || d.Len(domain.ResourceMatches) != 0 {
		t.Fatalf("unexpected lengths")
	}
	if d.Len(domain.Resource("x")) != 0 {
		t.Fatalf("expected zero for unknown resource")
	}
}
