package leagues

import "github.com/preston-bernstein/soccer-prophet/internal/domain"

// League describes a competition and its current season.
type League struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Teams   *int   `json:"teams,omitempty"`
	Season  string `json:"season"`
}

// RequiredFields lists the JSON keys every league must carry.
var RequiredFields = []string{"name", "country", "season"}

func (l League) Validate() error {
	if err := domain.FirstError(
		domain.RequireText("name", l.Name),
		domain.RequireText("country", l.Country),
		domain.RequireText("season", l.Season),
	); err != nil {
		return err
	}
	if l.Teams != nil && *l.Teams < 0 {
		return &domain.FieldError{Field: "teams", Reason: "must not be negative"}
	}
	return nil
}

// Decode parses a leagues document.
func Decode(data []byte) ([]League, error) {
	return domain.DecodeRecords[League](domain.ResourceLeagues, data, RequiredFields)
}
