package handlers

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/preston-bernstein/soccer-prophet/internal/view"
)

//go:embed assets/index.html
var assets embed.FS

type indexTab struct {
	Name     string
	Label    string
	Endpoint string
}

var tabLabels = map[view.View]string{
	view.ViewPredictions: "Predictions",
	view.ViewLeagues:     "Leagues",
	view.ViewStandings:   "Standings",
	view.ViewPlayers:     "Players",
}

// indexTabs follows the client's tab order; each tab reads the collection its view renders.
func indexTabs() []indexTab {
	tabs := make([]indexTab, 0, len(view.Views))
	for _, v := range view.Views {
		tabs = append(tabs, indexTab{Name: v.String(), Label: tabLabels[v], Endpoint: v.Resource().Path()})
	}
	return tabs
}

func renderIndex() ([]byte, error) {
	tmpl, err := template.ParseFS(assets, "assets/index.html")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Title string
		Tabs  []indexTab
	}{Title: "Synapse Soccer Prophet", Tabs: indexTabs()}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
