package fixture

import (
	"github.com/preston-bernstein/soccer-prophet/internal/domain/dataset"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/leagues"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/matches"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/players"
	"github.com/preston-bernstein/soccer-prophet/internal/domain/standings"
)

// Dataset returns the deterministic sample data bundled for local runs and tests.
func Dataset() dataset.Dataset {
	return dataset.Dataset{
		Matches:   Matches(),
		Leagues:   Leagues(),
		Standings: Standings(),
		Players:   Players(),
	}
}

// Matches returns sample fixtures, two of them featured.
func Matches() []matches.Match {
	return []matches.Match{
		{HomeTeam: "Arsenal", AwayTeam: "Chelsea", Date: "2024-03-02", Time: "15:00", League: "Premier League", Odds: 2.1, Prediction: str("Home Win"), Confidence: num(78), Featured: true},
		{HomeTeam: "Real Madrid", AwayTeam: "Barcelona", Date: "2024-03-03", Time: "20:00", League: "La Liga", Odds: 2.45, Prediction: str("Both Teams to Score"), Confidence: num(72), Featured: true},
		{HomeTeam: "Bayern Munich", AwayTeam: "Borussia Dortmund", Date: "2024-03-03", Time: "17:30", League: "Bundesliga", Odds: 1.85, Prediction: str("Over 2.5 Goals"), Confidence: num(81)},
		{HomeTeam: "Juventus", AwayTeam: "Inter Milan", Date: "2024-03-04", Time: "19:45", League: "Serie A", Odds: 3.1},
		{HomeTeam: "Paris Saint-Germain", AwayTeam: "Marseille", Date: "2024-03-05", Time: "21:00", League: "Ligue 1", Odds: 1.6, Prediction: str("Home Win")},
	}
}

// Leagues returns sample competitions.
func Leagues() []leagues.League {
	return []leagues.League{
		{Name: "Premier League", Country: "England", Teams: count(20), Season: "2023/24"},
		{Name: "La Liga", Country: "Spain", Teams: count(20), Season: "2023/24"},
		{Name: "Bundesliga", Country: "Germany", Teams: count(18), Season: "2023/24"},
		{Name: "Serie A", Country: "Italy", Teams: count(20), Season: "2023/24"},
		{Name: "Ligue 1", Country: "France", Teams: count(18), Season: "2023/24"},
	}
}

// Standings returns a sample league table.
func Standings() []standings.Row {
	return []standings.Row{
		{Position: 1, Name: "Liverpool", Played: 26, Won: 18, Drawn: 6, Lost: 2, GoalsFor: 60, GoalsAgainst: 24, GoalDifference: 36, Points: 60},
		{Position: 2, Name: "Manchester City", Played: 26, Won: 18, Drawn: 5, Lost: 3, GoalsFor: 60, GoalsAgainst: 26, GoalDifference: 34, Points: 59},
		{Position: 3, Name: "Arsenal", Played: 26, Won: 18, Drawn: 4, Lost: 4, GoalsFor: 62, GoalsAgainst: 22, GoalDifference: 40, Points: 58},
		{Position: 4, Name: "Aston Villa", Played: 26, Won: 16, Drawn: 4, Lost: 6, GoalsFor: 55, GoalsAgainst: 35, GoalDifference: 20, Points: 52},
		{Position: 5, Name: "Brentford", Played: 26, Won: 7, Drawn: 4, Lost: 15, GoalsFor: 37, GoalsAgainst: 47, GoalDifference: -10, Points: 25},
	}
}

// Players returns sample player statistics.
func Players() []players.Player {
	return []players.Player{
		{Name: "Erling Haaland", Position: "Forward", Team: "Manchester City", Goals: 18, Assists: 5, Appearances: 21, Rating: 7.9},
		{Name: "Mohamed Salah", Position: "Forward", Team: "Liverpool", Goals: 16, Assists: 9, Appearances: 23, Rating: 8.1},
		{Name: "Harry Kane", Position: "Forward", Team: "Bayern Munich", Goals: 27, Assists: 7, Appearances: 23, Rating: 8.3},
		{Name: "Jude Bellingham", Position: "Midfielder", Team: "Real Madrid", Goals: 16, Assists: 4, Appearances: 22, Rating: 8.0},
	}
}

func str(s string) *string { return &s }

func num(f float64) *float64 { return &f }

func count(n int) *int { return &n }
