package theme

import (
	"sort"
	"sync"
)

// Applier applies a theme to some part of the visual tree
type Applier interface {
	ApplyTheme(t Theme)
}

// ApplierFunc adapts a plain function to Applier
type ApplierFunc func(Theme)

// ApplyTheme calls f(t)
func (f ApplierFunc) ApplyTheme(t Theme) {
	f(t)
}

// Root is the application's root visual scope. It carries class-like markers;
// exactly one theme marker is present after the first ApplyTheme.
type Root struct {
	mu      sync.RWMutex
	markers map[string]struct{}
}

// NewRoot returns an empty root scope
func NewRoot() *Root {
	return &Root{markers: make(map[string]struct{})}
}

// ApplyTheme clears every theme marker and sets the one for t. Readers never
// observe both markers or neither.
func (r *Root) ApplyTheme(t Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.markers, Light.Marker())
	delete(r.markers, Dark.Marker())
	r.markers[t.Marker()] = struct{}{}
}

// Has reports whether marker is set
func (r *Root) Has(marker string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.markers[marker]
	return ok
}

// Markers returns the current markers in sorted order
func (r *Root) Markers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.markers))
	for m := range r.markers {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
