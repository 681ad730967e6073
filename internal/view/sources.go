package view

import (
	"github.com/kleyver/kleyver-app/internal/model"
	"github.com/kleyver/kleyver-app/internal/observable"
)

// ThemeSource is the part of theme.Controller views consume
type ThemeSource interface {
	SubscribeDarkMode(fn func(bool)) *observable.Subscription
	ToggleDarkMode()
}

// CatalogSource is the part of catalog.Catalog views consume
type CatalogSource interface {
	Subscribe(fn func([]model.MediaRecord)) *observable.Subscription
	ToggleFavorite(id int)
}

// Theme icons shown on the toggle button
const (
	IconMoon  = "moon-outline"
	IconSunny = "sunny-outline"
)

// ThemeIcon returns the icon that offers switching away from the current mode
func ThemeIcon(dark bool) string {
	if dark {
		return IconSunny
	}
	return IconMoon
}
