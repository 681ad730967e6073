package config

// Settings keys for the preference store
const (
	KeyTheme     = "theme"
	KeyHomeLimit = "home_gallery_limit"
	KeyLanguage  = "app_language"
)

// Default values
const (
	DefaultTheme     = "light"
	DefaultHomeLimit = HomeLimitAll
	DefaultLanguage  = "es"

	// HomeLimitAll shows every record on the home gallery
	HomeLimitAll = 0
	MaxHomeLimit = 100
)

// PreferenceStore is the persistent key-value store behind Settings.
// fyne.Preferences satisfies it, as does FileStore.
type PreferenceStore interface {
	StringWithFallback(key, fallback string) string
	SetString(key, value string)
	IntWithFallback(key string, fallback int) int
	SetInt(key string, value int)
}

// Settings manages application configuration
type Settings struct {
	store PreferenceStore
}

// NewSettings creates a new settings manager
func NewSettings(store PreferenceStore) *Settings {
	return &Settings{store: store}
}

// GetTheme returns the stored theme name, or "" when nothing was stored.
// Validation is left to the theme controller.
func (s *Settings) GetTheme() string {
	return s.store.StringWithFallback(KeyTheme, "")
}

// SetTheme persists the theme name
func (s *Settings) SetTheme(name string) {
	s.store.SetString(KeyTheme, name)
}

// GetHomeLimit returns how many records the home gallery shows;
// HomeLimitAll means no cap
func (s *Settings) GetHomeLimit() int {
	limit := s.store.IntWithFallback(KeyHomeLimit, DefaultHomeLimit)
	if limit < HomeLimitAll {
		return DefaultHomeLimit
	}
	if limit > MaxHomeLimit {
		return MaxHomeLimit
	}
	return limit
}

// SetHomeLimit sets the home gallery size. Non-positive values store
// HomeLimitAll; larger values are capped at MaxHomeLimit.
func (s *Settings) SetHomeLimit(limit int) {
	switch {
	case limit <= 0:
		limit = HomeLimitAll
	case limit > MaxHomeLimit:
		limit = MaxHomeLimit
	}
	s.store.SetInt(KeyHomeLimit, limit)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.store.StringWithFallback(KeyLanguage, "")
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.store.SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"es": "Español",
		"en": "English",
	}
}
