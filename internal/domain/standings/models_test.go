package standings

import "testing"

const row = `{"position":1,"name":"Arsenal","played":10,"won":8,"drawn":1,"lost":1,"goalsFor":25,"goalsAgainst":8,"goalDifference":17,"points":25}`

func TestDecodeStandings(t *testing.T) {
	items, err := Decode([]byte("[" + row + "]"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].GoalDifference != 17 || items[0].Points != 25 {
		t.Fatalf("unexpected row %+v", items[0])
	}
}

func TestDecodeStandingsRejectsMissingPoints(t *testing.T) {
	if _, err := Decode([]byte(`[{"position":1,"name":"A","played":1,"won":1,"drawn":0,"lost":0,"goalsFor":1,"goalsAgainst":0,"goalDifference":1}]`)); err == nil {
		t.Fatalf("expected missing points rejected")
	}
}
