package standings

import "github.com/preston-bernstein/soccer-prophet/internal/domain"

// Row is one team's line in a league table.
type Row struct {
	Position       int    `json:"position"`
	Name           string `json:"name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

// RequiredFields lists the JSON keys every standings row must carry.
var RequiredFields = []string{
	"position", "name", "played", "won", "drawn", "lost",
	"goalsFor", "goalsAgainst", "goalDifference", "points",
}

func (r Row) Validate() error {
	return domain.RequireText("name", r.Name)
}

// Decode parses a standings document.
func Decode(data []byte) ([]Row, error) {
	return domain.DecodeRecords[Row](domain.ResourceStandings, data, RequiredFields)
}
