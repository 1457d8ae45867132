// Package present writes view models as terminal text.
package present

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/preston-bernstein/soccer-prophet/internal/view"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBold  = "\x1b[1m"
	ansiAlert = "\x1b[41;97m"
)

// Options control terminal output.
type Options struct {
	// Color enables ANSI styling; only set it when writing to a terminal.
	Color bool
}

// Printer renders view models to a writer.
type Printer struct {
	w    io.Writer
	opts Options
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts}
}

// Tabs writes the tab bar with the active tab marked.
func (p *Printer) Tabs(active view.View) error {
	parts := make([]string, 0, len(view.Views))
	for _, v := range view.Views {
		name := string(v)
		if v == active {
			name = p.style(ansiBold, "["+name+"]")
		}
		parts = append(parts, name)
	}
	_, err := fmt.Fprintln(p.w, strings.Join(parts, "  "))
	return err
}

// View writes the content of one tab.
func (p *Printer) View(vm view.ViewModel) error {
	switch {
	case vm.Predictions != nil:
		return p.predictions(vm.Predictions)
	case vm.Leagues != nil:
		return p.leagues(*vm.Leagues)
	case vm.Standings != nil:
		return p.standings(vm.Standings)
	case vm.Players != nil:
		return p.players(*vm.Players)
	}
	return nil
}

// Banner writes the visible notifications, if any.
func (p *Printer) Banner(messages []string) error {
	for _, m := range messages {
		if _, err := fmt.Fprintln(p.w, p.style(ansiAlert, " ! "+m+" ")); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) predictions(m *view.PredictionsModel) error {
	if err := p.heading("Featured Matches"); err != nil {
		return err
	}
	if err := p.matches(m.Featured); err != nil {
		return err
	}
	if err := p.heading("All Matches"); err != nil {
		return err
	}
	return p.matches(m.Remaining)
}

func (p *Printer) matches(grid view.CardGrid[view.MatchCard]) error {
	if grid.Empty() {
		return p.line(grid.Placeholder)
	}
	for _, c := range grid.Cards {
		lines := []string{
			fmt.Sprintf("%s  VS  %s    %s %s", c.HomeBadge, c.AwayBadge, c.Date, c.Time),
			fmt.Sprintf("%s versus %s", c.HomeTeam, c.AwayTeam),
		}
		if c.Prediction != "" {
			lines = append(lines, "Prediction: "+c.Prediction)
		}
		lines = append(lines, c.Odds, c.League)
		if c.Confidence != "" {
			lines = append(lines, p.style(ansiGreen, c.Confidence))
		}
		if err := p.card(lines); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) leagues(grid view.CardGrid[view.LeagueCard]) error {
	if grid.Empty() {
		return p.line(grid.Placeholder)
	}
	for _, c := range grid.Cards {
		lines := []string{p.style(ansiBold, c.Name), c.Country}
		if c.Teams != "" {
			lines = append(lines, c.Teams)
		}
		lines = append(lines, c.Season)
		if err := p.card(lines); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) standings(t *view.StandingsTable) error {
	if len(t.Rows) == 0 {
		return p.line(t.Placeholder)
	}
	widths := columnWidths(t)
	if err := p.line(alignRow(t.Headers, widths, nil)); err != nil {
		return err
	}
	for _, row := range t.Rows {
		gd := len(row.Cells) - 2
		color := ansiRed
		if row.PositiveGoalDifference {
			color = ansiGreen
		}
		// Padding is measured on the plain text; escapes go around the value only.
		styleCell := func(i int, cell string) string {
			if i == gd {
				return p.style(color, cell)
			}
			return cell
		}
		if err := p.line(alignRow(row.Cells, widths, styleCell)); err != nil {
			return err
		}
	}
	return nil
}

const columnGap = 2

func columnWidths(t *view.StandingsTable) []int {
	widths := make([]int, len(t.Headers))
	grow := func(cells []string) {
		for i, c := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(c); n > widths[i] {
				widths[i] = n
			}
		}
	}
	grow(t.Headers)
	for _, row := range t.Rows {
		grow(row.Cells)
	}
	return widths
}

// alignRow right-aligns each cell in its column.
func alignRow(cells []string, widths []int, styleCell func(int, string) string) string {
	var b strings.Builder
	for i, c := range cells {
		b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c)+columnGap))
		if styleCell != nil {
			c = styleCell(i, c)
		}
		b.WriteString(c)
	}
	return b.String()
}

func (p *Printer) players(grid view.CardGrid[view.PlayerCard]) error {
	if grid.Empty() {
		return p.line(grid.Placeholder)
	}
	for _, c := range grid.Cards {
		lines := []string{
			p.style(ansiBold, c.Name),
			c.Position + " · " + c.Team,
			"Goals: " + c.Goals,
			"Assists: " + c.Assists,
			"Apps: " + c.Appearances,
			"Rating: " + c.Rating,
		}
		if err := p.card(lines); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) heading(title string) error {
	return p.line(p.style(ansiBold, "== "+title+" =="))
}

func (p *Printer) card(lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(p.w, "  "+l); err != nil {
			return err
		}
	}
	return p.line("")
}

func (p *Printer) line(s string) error {
	_, err := fmt.Fprintln(p.w, s)
	return err
}

func (p *Printer) style(code, s string) string {
	if !p.opts.Color {
		return s
	}
	return code + s + ansiReset
}
