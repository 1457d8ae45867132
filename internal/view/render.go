package view

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/soccer-prophet/internal/domain/leagues"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/matches"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/players"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/standings"
)

// Placeholders shown in place of an empty section.
const (
	NoMatches   = "No matches available"
	NoLeagues   = "No leagues available"
	NoStandings = "No standings available"
	NoPlayers   = "No player statistics available"
)

// StandingsHeaders are the standings table column titles.
var StandingsHeaders = []string{"Pos", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"}

// ViewModel is the presentation-independent content of one tab.
// Exactly one of the section pointers is set, matching View.
type ViewModel struct {
	View        View
	Predictions *PredictionsModel
	Leagues     *CardGrid[LeagueCard]
	Standings   *StandingsTable
	Players     *CardGrid[PlayerCard]
}

// CardGrid is a list of cards, or a placeholder when the list is empty.
type CardGrid[T any] struct {
	Cards       []T
	Placeholder string
}

// Empty reports whether the grid shows its placeholder.
func (g CardGrid[T]) Empty() bool { return len(g.Cards) == 0 }

// PredictionsModel splits matches into the featured and remaining sections.
type PredictionsModel struct {
	Featured  CardGrid[MatchCard]
	Remaining CardGrid[MatchCard]
}

// MatchCard is one rendered fixture. Prediction and Confidence are empty when absent.
type MatchCard struct {
	HomeTeam   string
	AwayTeam   string
	HomeBadge  string
	AwayBadge  string
	Date       string
	Time       string
	League     string
	Odds       string
	Prediction string
	Confidence string
}

// LeagueCard is one rendered competition. Teams is empty when the count is unknown.
type LeagueCard struct {
	Name    string
	Country string
	Teams   string
	Season  string
}

// PlayerCard is one rendered player.
type PlayerCard struct {
	Name        string
	Position    string
	Team        string
	Goals       string
	Assists     string
	Appearances string
	Rating      string
}

// StandingsTable is the league table, or a placeholder when there are no rows.
type StandingsTable struct {
	Headers     []string
	Rows        []StandingsLine
	Placeholder string
}

// StandingsLine is one formatted table row.
type StandingsLine struct {
	Cells []string

	// PositiveGoalDifference is true for a goal difference of zero or more.
	PositiveGoalDifference bool
}

// Render builds the view model of v from s. It does not modify s.
func Render(s Snapshot, v View) ViewModel {
	vm := ViewModel{View: v}
	switch v {
	case ViewLeagues:
		vm.Leagues = renderLeagues(s.Leagues)
	case ViewStandings:
		vm.Standings = renderStandings(s.Standings)
	case ViewPlayers:
		vm.Players = renderPlayers(s.Players)
	default:
		vm.View = ViewPredictions
		vm.Predictions = renderPredictions(s.Matches)
	}
	return vm
}

func renderPredictions(items []matches.Match) *PredictionsModel {
	featured, remaining := matches.Partition(items)
	return &PredictionsModel{
		Featured:  matchGrid(featured),
		Remaining: matchGrid(remaining),
	}
}

func matchGrid(items []matches.Match) CardGrid[MatchCard] {
	grid := CardGrid[MatchCard]{}
	if len(items) == 0 {
		grid.Placeholder = NoMatches
		return grid
	}
	grid.Cards = make([]MatchCard, 0, len(items))
	for _, m := range items {
		grid.Cards = append(grid.Cards, matchCard(m))
	}
	return grid
}

func matchCard(m matches.Match) MatchCard {
	card := MatchCard{
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		HomeBadge: Badge(m.HomeTeam),
		AwayBadge: Badge(m.AwayTeam),
		Date:      m.Date,
		Time:      m.Time,
		League:    m.League,
		Odds:      "ODDS: " + formatNumber(m.Odds),
	}
	if m.Prediction != nil {
		card.Prediction = *m.Prediction
	}
	if m.Confidence != nil && *m.Confidence != 0 {
		card.Confidence = "Confidence: " + formatNumber(*m.Confidence) + "%"
	}
	return card
}

func renderLeagues(items []leagues.League) *CardGrid[LeagueCard] {
	grid := &CardGrid[LeagueCard]{}
	if len(items) == 0 {
		grid.Placeholder = NoLeagues
		return grid
	}
	for _, l := range items {
		card := LeagueCard{Name: l.Name, Country: l.Country, Season: "Season: " + l.Season}
		if l.Teams != nil {
			card.Teams = strconv.Itoa(*l.Teams) + " teams"
		}
		grid.Cards = append(grid.Cards, card)
	}
	return grid
}

func renderStandings(rows []standings.Row) *StandingsTable {
	table := &StandingsTable{Headers: append([]string(nil), StandingsHeaders...)}
	if len(rows) == 0 {
		table.Placeholder = NoStandings
		return table
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, StandingsLine{
			Cells: []string{
				strconv.Itoa(r.Position),
				r.Name,
				strconv.Itoa(r.Played),
				strconv.Itoa(r.Won),
				strconv.Itoa(r.Drawn),
				strconv.Itoa(r.Lost),
				strconv.Itoa(r.GoalsFor),
				strconv.Itoa(r.GoalsAgainst),
				GoalDifference(r.GoalDifference),
				strconv.Itoa(r.Points),
			},
			PositiveGoalDifference: r.GoalDifference >= 0,
		})
	}
	return table
}

func renderPlayers(items []players.Player) *CardGrid[PlayerCard] {
	grid := &CardGrid[PlayerCard]{}
	if len(items) == 0 {
		grid.Placeholder = NoPlayers
		return grid
	}
	for _, p := range items {
		grid.Cards = append(grid.Cards, PlayerCard{
			Name:        p.Name,
			Position:    p.Position,
			Team:        p.Team,
			Goals:       strconv.Itoa(p.Goals),
			Assists:     strconv.Itoa(p.Assists),
			Appearances: strconv.Itoa(p.Appearances),
			Rating:      formatNumber(p.Rating),
		})
	}
	return grid
}

// Badge is the three-letter upper-case abbreviation of a team name.
func Badge(team string) string {
	runes := []rune(team)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// GoalDifference formats a goal difference with a leading "+" when positive.
func GoalDifference(gd int) string {
	if gd > 0 {
		return "+" + strconv.Itoa(gd)
	}
	return strconv.Itoa(gd)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
