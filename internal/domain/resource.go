package domain

import "fmt"

// Resource names one of the four fixed data collections served by the API.
type Resource string

const (
	ResourceMatches   Resource = "matches"
	ResourceLeagues   Resource = "leagues"
	ResourceStandings Resource = "standings"
	ResourcePlayers   Resource = "players"
)

// Resources lists every resource in display order.
var Resources = []Resource{ResourceMatches, ResourceLeagues, ResourceStandings, ResourcePlayers}

// ParseResource resolves a resource by name.
func ParseResource(name string) (Resource, bool) {
	for _, r := range Resources {
		if string(r) == name {
			return r, true
		}
	}
	return "", false
}

func (r Resource) String() string { return string(r) }

// FileName is the on-disk document name for the resource.
func (r Resource) FileName() string {
	return string(r) + ".json"
}

// Path is the API route serving the resource.
func (r Resource) Path() string {
	return "/api/" + string(r)
}

// FailureMessage is the fixed client-facing message used when the resource cannot be served.
func (r Resource) FailureMessage() string {
	return fmt.Sprintf("Failed to load %s data", string(r))
}
