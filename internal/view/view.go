// Package view holds the client-side state of the prediction dashboard:
// which tab is active, the collections loaded at startup, and the pure
// rendering of that state into view models.
package view

import (
	"errors"
	"strings"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
)

// View names one dashboard tab.
type View string

const (
	ViewPredictions View = "predictions"
	ViewLeagues     View = "leagues"
	ViewStandings   View = "standings"
	ViewPlayers     View = "players"
)

// Views lists every tab in display order.
var Views = []View{ViewPredictions, ViewLeagues, ViewStandings, ViewPlayers}

// ErrUnknownView is returned when a view name is not one of Views.
var ErrUnknownView = errors.New("unknown view")

// LoadFailureMessage is the notification shown when any collection failed to load.
const LoadFailureMessage = "Failed to load application data"

// ParseView resolves a user supplied tab name.
func ParseView(name string) (View, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range Views {
		if string(v) == name {
			return v, true
		}
	}
	return "", false
}

func (v View) String() string { return string(v) }

// Resource is the collection a view renders.
func (v View) Resource() domain.Resource {
	switch v {
	case ViewLeagues:
		return domain.ResourceLeagues
	case ViewStandings:
		return domain.ResourceStandings
	case ViewPlayers:
		return domain.ResourcePlayers
	default:
		return domain.ResourceMatches
	}
}

// Names returns the tab names as strings.
func Names() []string {
	out := make([]string, len(Views))
	for i, v := range Views {
		out[i] = string(v)
	}
	return out
}
