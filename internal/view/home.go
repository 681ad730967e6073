package view

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/kleyver/kleyver-app/internal/catalog"
	"github.com/kleyver/kleyver-app/internal/model"
	"github.com/kleyver/kleyver-app/internal/observable"
)

// Category card keys, resolved to text by the UI
const (
	CardLandscapes   = "landscapes"
	CardArchitecture = "architecture"
	CardFavorites    = "favorites"
)

// Stats are the counters shown in the home header
type Stats struct {
	Photos       int
	Destinations int
	Favorites    int
}

// CategoryCard is one of the home category tiles
type CategoryCard struct {
	Key   string
	Icon  string
	Count int
}

// HomeState is everything the home page renders
type HomeState struct {
	Dark       bool
	ThemeIcon  string
	Stats      Stats
	Categories []CategoryCard
	Gallery    []model.MediaRecord
}

// Home is the gallery page controller
type Home struct {
	themes  ThemeSource
	catalog CatalogSource
	limit   int
	logger  zerolog.Logger

	// deliverMu serializes apply and callback across both subscriptions
	deliverMu sync.Mutex

	mu       sync.Mutex
	state    HomeState
	onUpdate func(HomeState)

	themeSub   *observable.Subscription
	catalogSub *observable.Subscription
}

// NewHome subscribes to both sources; the returned Home already holds the
// current state. A positive limit caps the gallery size; otherwise every
// record is shown.
func NewHome(themes ThemeSource, cat CatalogSource, limit int, logger zerolog.Logger) *Home {
	h := &Home{
		themes:  themes,
		catalog: cat,
		limit:   limit,
		logger:  logger,
		state:   HomeState{ThemeIcon: ThemeIcon(false)},
	}
	h.themeSub = themes.SubscribeDarkMode(h.onDarkMode)
	h.catalogSub = cat.Subscribe(h.onRecords)
	return h
}

// SetUpdateCallback sets the function called after every state change
func (h *Home) SetUpdateCallback(callback func(HomeState)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUpdate = callback
}

// State returns the current view state
func (h *Home) State() HomeState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// ToggleTheme flips between light and dark
func (h *Home) ToggleTheme() {
	h.themes.ToggleDarkMode()
}

// ToggleFavorite flips the favorite flag of a gallery item
func (h *Home) ToggleFavorite(id int) {
	h.catalog.ToggleFavorite(id)
}

// Close revokes both subscriptions
func (h *Home) Close() {
	h.themeSub.Cancel()
	h.catalogSub.Cancel()
}

func (h *Home) onDarkMode(dark bool) {
	h.update(func(s *HomeState) {
		s.Dark = dark
		s.ThemeIcon = ThemeIcon(dark)
	})
}

func (h *Home) onRecords(records []model.MediaRecord) {
	summary := catalog.Summarize(records)
	gallery := records
	if h.limit > 0 && h.limit < len(records) {
		gallery = records[:h.limit]
	}

	h.update(func(s *HomeState) {
		s.Stats = Stats{
			Photos:       summary.Total,
			Destinations: summary.DistinctLocations,
			Favorites:    summary.Favorites,
		}
		s.Categories = []CategoryCard{
			{Key: CardLandscapes, Icon: "camera-outline", Count: summary.Categories[model.CategoryLandscape]},
			{Key: CardArchitecture, Icon: "business-outline", Count: summary.Categories[model.CategoryArchitecture]},
			{Key: CardFavorites, Icon: "heart-outline", Count: summary.Favorites},
		}
		s.Gallery = gallery
	})
	h.logger.Debug().Int("records", len(records)).Int("favorites", summary.Favorites).Msg("home state refreshed")
}

func (h *Home) update(apply func(*HomeState)) {
	h.deliverMu.Lock()
	defer h.deliverMu.Unlock()

	h.mu.Lock()
	apply(&h.state)
	state := h.state
	callback := h.onUpdate
	h.mu.Unlock()

	if callback != nil {
		callback(state)
	}
}
