package model

// Kind represents the type of a media record
type Kind string

const (
	// KindPhoto is a still image shown in the gallery
	KindPhoto Kind = "photo"

	// KindVideo is reserved; no playback behaviour is implemented
	KindVideo Kind = "video"
)

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is one of the declared kinds
func (k Kind) IsValid() bool {
	return k == KindPhoto || k == KindVideo
}

// Category groups photos by subject
type Category string

const (
	CategoryLandscape    Category = "landscape"
	CategoryArchitecture Category = "architecture"
	CategoryPeople       Category = "people"
	CategoryGastronomy   Category = "gastronomy"
)

// KnownCategories returns the closed set of categories counted by the catalog,
// in display order
func KnownCategories() []Category {
	return []Category{CategoryLandscape, CategoryArchitecture, CategoryPeople, CategoryGastronomy}
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// IsKnown returns true if the category belongs to the closed set
func (c Category) IsKnown() bool {
	switch c {
	case CategoryLandscape, CategoryArchitecture, CategoryPeople, CategoryGastronomy:
		return true
	default:
		return false
	}
}

// Size is the layout hint used by the gallery grid
type Size string

const (
	SizeLarge  Size = "large"
	SizeMedium Size = "medium"
	SizeWide   Size = "wide"
	SizeTall   Size = "tall"
)

// String returns the string representation of Size
func (s Size) String() string {
	return string(s)
}

// IsValid returns true for the four layout hints; the empty size is not valid
func (s Size) IsValid() bool {
	switch s {
	case SizeLarge, SizeMedium, SizeWide, SizeTall:
		return true
	default:
		return false
	}
}

// Span returns the number of grid columns and rows the hint occupies
func (s Size) Span() (cols, rows int) {
	switch s {
	case SizeLarge:
		return 2, 2
	case SizeWide:
		return 2, 1
	case SizeTall:
		return 1, 2
	default:
		return 1, 1
	}
}
