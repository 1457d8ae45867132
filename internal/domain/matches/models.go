package matches

import "github.com/preston-bernstein/soccer-prophet/internal/domain"

// Match is a scheduled fixture with its betting odds and optional prediction.
type Match struct {
	HomeTeam   string   `json:"homeTeam"`
	AwayTeam   string   `json:"awayTeam"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	League     string   `json:"league"`
	Odds       float64  `json:"odds"`
	Prediction *string  `json:"prediction,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Featured   bool     `json:"featured"`
}

// RequiredFields lists the JSON keys every match must carry.
var RequiredFields = []string{"homeTeam", "awayTeam", "date", "time", "league", "odds"}

// Validate checks the textual required fields are not blank.
func (m Match) Validate() error {
	return domain.FirstError(
		domain.RequireText("homeTeam", m.HomeTeam),
		domain.RequireText("awayTeam", m.AwayTeam),
		domain.RequireText("date", m.Date),
		domain.RequireText("time", m.Time),
		domain.RequireText("league", m.League),
	)
}

// Decode parses a matches document.
func Decode(data []byte) ([]Match, error) {
	return domain.DecodeRecords[Match](domain.ResourceMatches, data, RequiredFields)
}

// Partition splits matches into featured and remaining, preserving order.
func Partition(items []Match) (featured, remaining []Match) {
	featured = make([]Match, 0, len(items))
	remaining = make([]Match, 0, len(items))
	for _, m := range items {
		if m.Featured {
			featured = append(featured, m)
			continue
		}
		remaining = append(remaining, m)
	}
	return featured, remaining
}
