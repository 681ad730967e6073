package model

// MediaRecord represents a single gallery item
type MediaRecord struct {
	ID          int      `yaml:"id" json:"id"`
	URL         string   `yaml:"url" json:"url"`
	Kind        Kind     `yaml:"kind" json:"kind"`
	Title       string   `yaml:"title" json:"title"`
	Location    string   `yaml:"location" json:"location"`
	Description string   `yaml:"description" json:"description"`
	Date        string   `yaml:"date" json:"date"` // kept as written, never parsed
	Favorite    bool     `yaml:"favorite" json:"favorite"`
	Category    Category `yaml:"category,omitempty" json:"category,omitempty"`
	Size        Size     `yaml:"size,omitempty" json:"size,omitempty"`

	// Video-only fields. Reserved: carried through copies but unused.
	Duration *int  `yaml:"duration,omitempty" json:"duration,omitempty"` // seconds
	Views    *int  `yaml:"views,omitempty" json:"views,omitempty"`
	Playing  *bool `yaml:"playing,omitempty" json:"playing,omitempty"`
}

// Clone returns a deep copy of the record
func (m MediaRecord) Clone() MediaRecord {
	c := m
	if m.Duration != nil {
		v := *m.Duration
		c.Duration = &v
	}
	if m.Views != nil {
		v := *m.Views
		c.Views = &v
	}
	if m.Playing != nil {
		v := *m.Playing
		c.Playing = &v
	}
	return c
}

// WithFavorite returns a copy of the record with the favorite flag set to fav
func (m MediaRecord) WithFavorite(fav bool) MediaRecord {
	c := m.Clone()
	c.Favorite = fav
	return c
}

// IsPhoto reports whether the record is a photo
func (m MediaRecord) IsPhoto() bool {
	return m.Kind == KindPhoto
}

// HasCategory reports whether the optional category is set
func (m MediaRecord) HasCategory() bool {
	return m.Category != ""
}

// GetDisplayTitle returns title, location, or URL in order of preference
func (m MediaRecord) GetDisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	if m.Location != "" {
		return m.Location
	}
	return m.URL
}

// CloneRecords deep-copies a slice of records. A nil input yields an empty,
// non-nil slice.
func CloneRecords(records []MediaRecord) []MediaRecord {
	out := make([]MediaRecord, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
