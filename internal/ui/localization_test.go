package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_DefaultsToSpanish(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "es", l.GetCurrentLanguage())
	assert.Equal(t, "Inicio", l.GetText(KeyTabHome))
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("en")
	assert.Equal(t, "Home", l.GetText(KeyTabHome))

	l.SetLanguage("xx")
	assert.Equal(t, "en", l.GetCurrentLanguage(), "unknown language is ignored")
}

func TestLocalization_UnknownKey(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "no_such_key", l.GetText("no_such_key"))
}

func TestLocalization_LanguagesShareKeys(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, []string{"en", "es"}, l.Languages())

	for key := range l.texts["es"] {
		_, ok := l.texts["en"][key]
		assert.True(t, ok, "missing english text for %q", key)
	}
	assert.Len(t, l.texts["en"], len(l.texts["es"]))
}
