package players

import "github.com/preston-bernstein/soccer-prophet/internal/domain"

// Player carries a player's season statistics.
type Player struct {
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	Team        string  `json:"team"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	Appearances int     `json:"appearances"`
	Rating      float64 `json:"rating"`
}

// RequiredFields lists the JSON keys every player must carry.
var RequiredFields = []string{"name", "position", "team", "goals", "assists", "appearances", "rating"}

func (p Player) Validate() error {
	return domain.FirstError(
		domain.RequireText("name", p.Name),
		domain.RequireText("position", p.Position),
		domain.RequireText("team", p.Team),
	)
}

// Decode parses a players document.
func Decode(data []byte) ([]Player, error) {
	return domain.DecodeRecords[Player](domain.ResourcePlayers, data, RequiredFields)
}
