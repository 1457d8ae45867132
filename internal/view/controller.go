package view

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/logging"
)

// Controller owns the active tab and the collections loaded at startup.
type Controller struct {
	loader   Loader
	notifier Notifier
	logger   *slog.Logger

	once   sync.Once
	report LoadReport

	mu     sync.RWMutex
	active View
	data   Snapshot
}

// NewController constructs a controller starting on the predictions tab.
func NewController(loader Loader, notifier Notifier, logger *slog.Logger) *Controller {
	return &Controller{
		loader:   loader,
		notifier: notifier,
		logger:   logger,
		active:   ViewPredictions,
	}
}

// Initialize retrieves the four collections concurrently and waits for all of them.
// Successful collections are kept, failed ones stay empty, and a single
// notification is emitted when anything failed. Only the first call loads.
func (c *Controller) Initialize(ctx context.Context) LoadReport {
	c.once.Do(func() {
		c.report = c.load(ctx)
	})
	return c.report
}

func (c *Controller) load(ctx context.Context) LoadReport {
	var (
		wg   sync.WaitGroup
		next Snapshot
		errs [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		next.Matches, errs[0] = c.loader.FetchMatches(ctx)
	}()
	go func() {
		defer wg.Done()
		next.Leagues, errs[1] = c.loader.FetchLeagues(ctx)
	}()
	go func() {
		defer wg.Done()
		next.Standings, errs[2] = c.loader.FetchStandings(ctx)
	}()
	go func() {
		defer wg.Done()
		next.Players, errs[3] = c.loader.FetchPlayers(ctx)
	}()
	wg.Wait()

	report := LoadReport{Errors: make(map[domain.Resource]error, len(domain.Resources))}
	order := []domain.Resource{domain.ResourceMatches, domain.ResourceLeagues, domain.ResourceStandings, domain.ResourcePlayers}
	for i, res := range order {
		report.Errors[res] = errs[i]
	}
	if errs[0] != nil {
		next.Matches = nil
	}
	if errs[1] != nil {
		next.Leagues = nil
	}
	if errs[2] != nil {
		next.Standings = nil
	}
	if errs[3] != nil {
		next.Players = nil
	}

	c.mu.Lock()
	c.data = next.Clone()
	c.mu.Unlock()

	if failed := report.Failed(); len(failed) > 0 {
		for _, res := range failed {
			logging.Error(c.logger, "collection load failed", report.Errors[res],
				slog.String(logging.FieldResource, string(res)),
			)
		}
		if c.notifier != nil {
			c.notifier.Notify(LoadFailureMessage)
		}
	}
	return report
}

// Switch makes name the active tab and returns its view model.
// Unknown names leave the active tab unchanged.
func (c *Controller) Switch(name string) (ViewModel, error) {
	v, ok := ParseView(name)
	if !ok {
		return ViewModel{}, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}
	c.mu.Lock()
	c.active = v
	snap := c.data.Clone()
	c.mu.Unlock()

	logging.Info(c.logger, "view switched", slog.String(logging.FieldView, string(v)))
	return Render(snap, v), nil
}

// Active returns the active tab.
func (c *Controller) Active() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Snapshot returns a copy of the cached collections.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Clone()
}

// Current renders the active tab.
func (c *Controller) Current() ViewModel {
	c.mu.RLock()
	v, snap := c.active, c.data.Clone()
	c.mu.RUnlock()
	return Render(snap, v)
}
