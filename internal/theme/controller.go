package theme

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kleyver/kleyver-app/internal/observable"
)

// Store is the part of config.Settings the controller needs
type Store interface {
	GetTheme() string
	SetTheme(name string)
}

// Controller is the single source of truth for the active theme
type Controller struct {
	store    Store
	appliers []Applier
	logger   zerolog.Logger

	// serialises set/toggle so persistence, broadcast and apply share one order
	mu     sync.Mutex
	themes *observable.Subject[Theme]
	dark   *observable.Subject[bool]
}

// InitialTheme returns the persisted theme if it is exactly light or dark,
// otherwise Default
func InitialTheme(store Store) Theme {
	if t, ok := Parse(store.GetTheme()); ok {
		return t
	}
	return Default
}

// NewController restores the persisted theme and applies it to every applier
func NewController(store Store, logger zerolog.Logger, appliers ...Applier) *Controller {
	initial := InitialTheme(store)

	themes := observable.NewSubject(initial, logger)
	c := &Controller{
		store:    store,
		appliers: appliers,
		logger:   logger,
		themes:   themes,
		dark:     observable.Map(themes, Theme.IsDark),
	}
	c.apply(initial)

	logger.Info().Str("theme", initial.String()).Msg("theme restored")
	return c
}

// Current returns the last set theme
func (c *Controller) Current() Theme {
	return c.themes.Value()
}

// IsDark reports whether the dark theme is active
func (c *Controller) IsDark() bool {
	return c.dark.Value()
}

// SetTheme makes t current, persists it, notifies subscribers and applies it.
// Persistence is best effort; the in-memory value is authoritative.
func (c *Controller) SetTheme(t Theme) error {
	if !t.IsValid() {
		return fmt.Errorf("set theme %q: %w", t, ErrInvalidTheme)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(t)
	return nil
}

// ToggleDarkMode switches dark to light and anything else to dark
func (c *Controller) ToggleDarkMode() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(c.themes.Value().Opposite())
}

func (c *Controller) setLocked(t Theme) {
	c.store.SetTheme(t.String())
	c.themes.Publish(t)
	c.apply(t)

	c.logger.Debug().Str("theme", t.String()).Msg("theme set")
}

// Subscribe delivers the current theme immediately and every later change
func (c *Controller) Subscribe(fn func(Theme)) *observable.Subscription {
	return c.themes.Subscribe(fn)
}

// SubscribeDarkMode delivers true while the dark theme is active, starting
// with the current state
func (c *Controller) SubscribeDarkMode(fn func(bool)) *observable.Subscription {
	return c.dark.Subscribe(fn)
}

// Close revokes every subscription
func (c *Controller) Close() {
	c.themes.Close()
}

func (c *Controller) apply(t Theme) {
	for _, a := range c.appliers {
		a.ApplyTheme(t)
	}
}
