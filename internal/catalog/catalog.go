package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kleyver/kleyver-app/internal/model"
	"github.com/kleyver/kleyver-app/internal/observable"
)

var (
	// ErrDuplicateID is returned when two records share an identifier
	ErrDuplicateID = errors.New("duplicate media record id")

	// ErrInvalidRecord is returned for records with an unknown kind
	ErrInvalidRecord = errors.New("invalid media record")
)

// Summary is an aggregate view of the catalog
type Summary struct {
	Total             int
	DistinctLocations int
	Favorites         int
	Categories        map[model.Category]int
}

// Catalog is the single source of truth for media records
type Catalog struct {
	mu      sync.RWMutex
	records []model.MediaRecord // replaced wholesale, never mutated
	updates *observable.Subject[[]model.MediaRecord]
	logger  zerolog.Logger
}

// New builds a catalog from records, which are deep-copied
func New(records []model.MediaRecord, logger zerolog.Logger) (*Catalog, error) {
	seen := make(map[int]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("record %d: %w", r.ID, ErrDuplicateID)
		}
		if !r.Kind.IsValid() {
			return nil, fmt.Errorf("record %d kind %q: %w", r.ID, r.Kind, ErrInvalidRecord)
		}
		seen[r.ID] = struct{}{}
	}

	owned := model.CloneRecords(records)
	c := &Catalog{
		records: owned,
		updates: observable.NewSubject(owned, logger),
		logger:  logger,
	}
	logger.Debug().Int("records", len(owned)).Msg("catalog loaded")
	return c, nil
}

// Default builds a catalog from the embedded gallery
func Default(logger zerolog.Logger) (*Catalog, error) {
	records, err := SeedRecords()
	if err != nil {
		return nil, err
	}
	return New(records, logger)
}

// Subscribe delivers the current snapshot immediately and a fresh snapshot
// after every mutation. Each delivery is the subscriber's own copy.
func (c *Catalog) Subscribe(fn func([]model.MediaRecord)) *observable.Subscription {
	return c.updates.Subscribe(func(records []model.MediaRecord) {
		fn(model.CloneRecords(records))
	})
}

// Snapshot returns a copy of the current records in catalog order
func (c *Catalog) Snapshot() []model.MediaRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return model.CloneRecords(c.records)
}

// Len returns the number of records
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// FindByID returns a copy of the first record with id
func (c *Catalog) FindByID(id int) (model.MediaRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.records {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return model.MediaRecord{}, false
}

// ToggleFavorite inverts the favorite flag of the record with id. The record
// list is replaced by a new slice holding a new record; unknown ids are a
// no-op and publish nothing.
func (c *Catalog) ToggleFavorite(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, r := range c.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.logger.Debug().Int("id", id).Msg("toggle favorite: record not found")
		return
	}

	next := make([]model.MediaRecord, len(c.records))
	copy(next, c.records)
	next[idx] = c.records[idx].WithFavorite(!c.records[idx].Favorite)
	c.records = next

	// published under the lock so subscribers see mutations in call order
	c.updates.Publish(next)

	c.logger.Debug().Int("id", id).Bool("favorite", next[idx].Favorite).Msg("favorite toggled")
}

// FilterByCategory returns the photos of category in catalog order
func (c *Catalog) FilterByCategory(category model.Category) []model.MediaRecord {
	return c.filter(func(r model.MediaRecord) bool {
		return r.IsPhoto() && r.Category == category
	})
}

// FavoritesOnly returns the favorite records in catalog order
func (c *Catalog) FavoritesOnly() []model.MediaRecord {
	return c.filter(func(r model.MediaRecord) bool {
		return r.Favorite
	})
}

// ForHome returns the first limit records. A non-positive limit returns none.
func (c *Catalog) ForHome(limit int) []model.MediaRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if limit <= 0 {
		return []model.MediaRecord{}
	}
	if limit > len(c.records) {
		limit = len(c.records)
	}
	return model.CloneRecords(c.records[:limit])
}

// CategoryCounts counts photos per known category. Every known category is
// present in the result; unknown categories are ignored.
func (c *Catalog) CategoryCounts() map[model.Category]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CountCategories(c.records)
}

// Summary computes aggregate statistics from the current records
func (c *Catalog) Summary() Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Summarize(c.records)
}

// Close revokes every subscription
func (c *Catalog) Close() {
	c.updates.Close()
}

func (c *Catalog) filter(keep func(model.MediaRecord) bool) []model.MediaRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.MediaRecord, 0)
	for _, r := range c.records {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}
