package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/preston-bernstein/soccer-prophet/internal/calculator"
	"github.com/preston-bernstein/soccer-prophet/internal/view"
	"github.com/preston-bernstein/soccer-prophet/internal/view/present"
)

const suggestThreshold = 0.5

type sessionConfig struct {
	Loader      view.Loader
	Logger      *slog.Logger
	NotifyDelay time.Duration
	Out         io.Writer
	Color       bool
}

// session drives the dashboard from line-oriented input.
type session struct {
	ctrl    *view.Controller
	banner  *view.Banner
	printer *present.Printer
	out     io.Writer
}

func newSession(cfg sessionConfig) *session {
	banner := view.NewBanner(cfg.NotifyDelay, nil)
	return &session{
		ctrl:    view.NewController(cfg.Loader, banner, cfg.Logger),
		banner:  banner,
		printer: present.NewPrinter(cfg.Out, present.Options{Color: cfg.Color}),
		out:     cfg.Out,
	}
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	s.ctrl.Initialize(ctx)
	if err := s.show(s.ctrl.Current()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		quit, err := s.handle(strings.Fields(scanner.Text()))
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (s *session) handle(args []string) (quit bool, err error) {
	if len(args) == 0 {
		return false, nil
	}
	switch strings.ToLower(args[0]) {
	case "quit", "exit":
		return true, nil
	case "help":
		return false, s.help()
	case "show":
		return false, s.show(s.ctrl.Current())
	case "calc":
		return false, s.calc(args[1:])
	}

	vm, err := s.ctrl.Switch(args[0])
	if errors.Is(err, view.ErrUnknownView) {
		msg := fmt.Sprintf("unknown view %q", args[0])
		if hint := suggest(args[0], view.Names()); hint != "" {
			msg += fmt.Sprintf(", did you mean %q?", hint)
		}
		_, werr := fmt.Fprintln(s.out, msg)
		return false, werr
	}
	if err != nil {
		return false, err
	}
	return false, s.show(vm)
}

func (s *session) show(vm view.ViewModel) error {
	if err := s.printer.Banner(s.banner.Visible()); err != nil {
		return err
	}
	if err := s.printer.Tabs(vm.View); err != nil {
		return err
	}
	return s.printer.View(vm)
}

func (s *session) calc(args []string) error {
	var stake, odds string
	if len(args) > 0 {
		stake = args[0]
	}
	if len(args) > 1 {
		odds = args[1]
	}
	res, err := calculator.Evaluate(stake, odds)
	if err != nil {
		_, werr := fmt.Fprintln(s.out, err.Error())
		return werr
	}
	_, err = fmt.Fprintf(s.out, "Total Return: $%s\nProfit: $%s\n", res.TotalReturn, res.Profit)
	return err
}

func (s *session) help() error {
	_, err := fmt.Fprintf(s.out, `commands:
  %s    switch tab
  calc <stake> <odds>    stake calculator
  show                   redraw the current tab
  help                   this message
  quit                   leave
`, strings.Join(view.Names(), " | "))
	return err
}

// suggest returns the candidate closest to input, or "" when nothing is close enough.
func suggest(input string, candidates []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}
	best, bestScore := "", 0.0
	for _, c := range candidates {
		distance := fuzzy.LevenshteinDistance(input, strings.ToLower(c))
		similarity := 1 - float64(distance)/float64(max(len(input), len(c)))
		if similarity > suggestThreshold && similarity > bestScore {
			best, bestScore = c, similarity
		}
	}
	return best
}
