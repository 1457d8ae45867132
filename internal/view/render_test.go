package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/soccer-prophet/internal/domain/leagues"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/matches"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/standings"
	"github.com/preston-bernstein/soccer-prophet/internal/fixture"
)

func TestRenderPredictionsPartitionsMatches(t *testing.T) {
	snap := Snapshot{Matches: fixture.Matches()}

	vm := Render(snap, ViewPredictions)
	require.NotNil(t, vm.Predictions)

	featured, remaining := vm.Predictions.Featured.Cards, vm.Predictions.Remaining.Cards
	assert.Len(t, featured, 2)
	assert.Len(t, remaining, 3)
	assert.Equal(t, len(snap.Matches), len(featured)+len(remaining))
	assert.Equal(t, "Arsenal", featured[0].HomeTeam)
	assert.Equal(t, "Real Madrid", featured[1].HomeTeam)
	assert.Equal(t, "Bayern Munich", remaining[0].HomeTeam)
	assert.Equal(t, "Juventus", remaining[1].HomeTeam)
	assert.Empty(t, vm.Predictions.Featured.Placeholder)
}

func TestRenderPredictionsPlaceholders(t *testing.T) {
	vm := Render(Snapshot{}, ViewPredictions)
	assert.Equal(t, NoMatches, vm.Predictions.Featured.Placeholder)
	assert.Equal(t, NoMatches, vm.Predictions.Remaining.Placeholder)
	assert.True(t, vm.Predictions.Featured.Empty())

	only := Snapshot{Matches: []matches.Match{{HomeTeam: "A", AwayTeam: "B", Odds: 2}}}
	vm = Render(only, ViewPredictions)
	assert.Equal(t, NoMatches, vm.Predictions.Featured.Placeholder)
	assert.Len(t, vm.Predictions.Remaining.Cards, 1)
}

func TestMatchCardFormatting(t *testing.T) {
	pred, conf := "Home Win", 78.0
	card := matchCard(matches.Match{
		HomeTeam: "Arsenal", AwayTeam: "Chelsea", Date: "2024-03-02", Time: "15:00",
		League: "Premier League", Odds: 2.1, Prediction: &pred, Confidence: &conf,
	})
	assert.Equal(t, "ARS", card.HomeBadge)
	assert.Equal(t, "CHE", card.AwayBadge)
	assert.Equal(t, "ODDS: 2.1", card.Odds)
	assert.Equal(t, "Home Win", card.Prediction)
	assert.Equal(t, "Confidence: 78%", card.Confidence)

	bare := matchCard(matches.Match{HomeTeam: "PSG", AwayTeam: "OM", Odds: 3})
	assert.Equal(t, "ODDS: 3", bare.Odds)
	assert.Equal(t, "OM", bare.AwayBadge)
	assert.Empty(t, bare.Prediction)
	assert.Empty(t, bare.Confidence)
}

func TestBadge(t *testing.T) {
	assert.Equal(t, "BAY", Badge("Bayern Munich"))
	assert.Equal(t, "ATL", Badge("atlético"))
	assert.Equal(t, "MÜN", Badge("München"))
	assert.Equal(t, "", Badge(""))
}

func TestRenderStandings(t *testing.T) {
	vm := Render(Snapshot{Standings: fixture.Standings()}, ViewStandings)
	table := vm.Standings
	require.NotNil(t, table)

	assert.Equal(t, []string{"Pos", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"}, table.Headers)
	require.Len(t, table.Rows, 5)
	assert.Equal(t, []string{"1", "Liverpool", "26", "18", "6", "2", "60", "24", "+36", "60"}, table.Rows[0].Cells)
	assert.True(t, table.Rows[0].PositiveGoalDifference)
	assert.Equal(t, "-10", table.Rows[4].Cells[8])
	assert.False(t, table.Rows[4].PositiveGoalDifference)
	assert.Empty(t, table.Placeholder)
}

func TestRenderStandingsZeroGoalDifference(t *testing.T) {
	vm := Render(Snapshot{Standings: []standings.Row{{Position: 1, Name: "Level"}}}, ViewStandings)
	assert.Equal(t, "0", vm.Standings.Rows[0].Cells[8])
	assert.True(t, vm.Standings.Rows[0].PositiveGoalDifference)
}

func TestRenderStandingsPlaceholder(t *testing.T) {
	vm := Render(Snapshot{}, ViewStandings)
	assert.Equal(t, NoStandings, vm.Standings.Placeholder)
	assert.Empty(t, vm.Standings.Rows)
	assert.Equal(t, StandingsHeaders, vm.Standings.Headers)
}

func TestRenderLeagues(t *testing.T) {
	vm := Render(Snapshot{Leagues: []leagues.League{
		{Name: "Premier League", Country: "England", Season: "2023/24"},
	}}, ViewLeagues)
	require.Len(t, vm.Leagues.Cards, 1)
	assert.Equal(t, "Season: 2023/24", vm.Leagues.Cards[0].Season)
	assert.Empty(t, vm.Leagues.Cards[0].Teams)

	vm = Render(Snapshot{Leagues: fixture.Leagues()}, ViewLeagues)
	assert.Equal(t, "20 teams", vm.Leagues.Cards[0].Teams)

	assert.Equal(t, NoLeagues, Render(Snapshot{}, ViewLeagues).Leagues.Placeholder)
}

func TestRenderPlayers(t *testing.T) {
	vm := Render(Snapshot{Players: fixture.Players()}, ViewPlayers)
	require.Len(t, vm.Players.Cards, 4)
	card := vm.Players.Cards[3]
	assert.Equal(t, "Jude Bellingham", card.Name)
	assert.Equal(t, "16", card.Goals)
	assert.Equal(t, "22", card.Appearances)
	assert.Equal(t, "8", card.Rating)

	assert.Equal(t, NoPlayers, Render(Snapshot{}, ViewPlayers).Players.Placeholder)
}

func TestRenderDoesNotMutateSnapshot(t *testing.T) {
	snap := Snapshot{Matches: fixture.Matches()}
	before := snap.Clone()
	Render(snap, ViewPredictions)
	assert.Equal(t, before, snap)
}

func TestRenderUnknownViewFallsBackToPredictions(t *testing.T) {
	vm := Render(Snapshot{}, View("bogus"))
	assert.Equal(t, ViewPredictions, vm.View)
	assert.NotNil(t, vm.Predictions)
}
