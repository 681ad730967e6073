package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/kleyver/kleyver-app/internal/view"
)

// HomePage renders view.Home: welcome header, stats, category cards and the
// gallery grid
type HomePage struct {
	home         *view.Home
	localization *Localization
	mobile       *MobileUI
	notify       func(message string)

	// Bound header texts
	photos       binding.String
	destinations binding.String
	favorites    binding.String
	cardCounts   map[string]binding.String

	cards   []*PhotoCard
	grid    *fyne.Container
	viewer  *PhotoViewer
	content fyne.CanvasObject
}

// NewHomePage builds the page and starts following home's state
func NewHomePage(home *view.Home, localization *Localization, mobileUI *MobileUI, canvas fyne.Canvas, notify func(string)) *HomePage {
	hp := &HomePage{
		home:         home,
		localization: localization,
		mobile:       mobileUI,
		notify:       notify,
		photos:       binding.NewString(),
		destinations: binding.NewString(),
		favorites:    binding.NewString(),
		cardCounts: map[string]binding.String{
			view.CardLandscapes:   binding.NewString(),
			view.CardArchitecture: binding.NewString(),
			view.CardFavorites:    binding.NewString(),
		},
	}
	hp.createUI()
	hp.viewer = NewPhotoViewer(canvas, localization, hp.onFavorite)

	home.SetUpdateCallback(func(state view.HomeState) {
		fyne.Do(func() { hp.render(state) })
	})
	hp.render(home.State())
	return hp
}

// Content returns the page root object
func (hp *HomePage) Content() fyne.CanvasObject {
	return hp.content
}

// Cards returns the gallery cards currently shown
func (hp *HomePage) Cards() []*PhotoCard {
	return hp.cards
}

// Viewer returns the photo detail pop-up
func (hp *HomePage) Viewer() *PhotoViewer {
	return hp.viewer
}

func (hp *HomePage) createUI() {
	l := hp.localization

	welcome := widget.NewLabelWithStyle(l.GetText(KeyWelcome), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle(l.GetText(KeyWelcomeSubtitle), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	stats := container.NewGridWithColumns(3,
		statTile(hp.photos, l.GetText(KeyStatsPhotos)),
		statTile(hp.destinations, l.GetText(KeyStatsDestination)),
		statTile(hp.favorites, l.GetText(KeyStatsFavorites)),
	)

	categories := container.NewGridWithColumns(3,
		categoryTile(IconCamera, l.GetText(KeyCardLandscapes), hp.cardCounts[view.CardLandscapes]),
		categoryTile(IconBuilding, l.GetText(KeyCardArchitecture), hp.cardCounts[view.CardArchitecture]),
		categoryTile(IconHeart, l.GetText(KeyCardFavorites), hp.cardCounts[view.CardFavorites]),
	)

	hp.grid = container.NewGridWithColumns(hp.mobile.GalleryColumns())

	galleryTitle := widget.NewLabelWithStyle(l.GetText(KeyGallery), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	hp.content = container.NewVScroll(container.NewVBox(
		welcome,
		subtitle,
		stats,
		widget.NewSeparator(),
		categories,
		galleryTitle,
		hp.grid,
	))
}

func statTile(value binding.String, caption string) fyne.CanvasObject {
	number := widget.NewLabelWithData(value)
	number.Alignment = fyne.TextAlignCenter
	number.TextStyle = fyne.TextStyle{Bold: true}
	label := widget.NewLabel(caption)
	label.Alignment = fyne.TextAlignCenter
	label.Importance = widget.LowImportance
	return container.NewVBox(number, label)
}

func categoryTile(icon, title string, count binding.String) fyne.CanvasObject {
	countLabel := widget.NewLabelWithData(count)
	countLabel.Alignment = fyne.TextAlignCenter
	return widget.NewCard(icon, title, countLabel)
}

// render copies state into the widgets; must run on the UI goroutine
func (hp *HomePage) render(state view.HomeState) {
	_ = hp.photos.Set(fmt.Sprintf(CountFormat, state.Stats.Photos))
	_ = hp.destinations.Set(fmt.Sprintf(CountFormat, state.Stats.Destinations))
	_ = hp.favorites.Set(fmt.Sprintf(CountFormat, state.Stats.Favorites))
	for _, card := range state.Categories {
		if b, ok := hp.cardCounts[card.Key]; ok {
			_ = b.Set(fmt.Sprintf(CountFormat, card.Count))
		}
	}

	for len(hp.cards) < len(state.Gallery) {
		card := NewPhotoCard(hp.onFavorite, hp.viewer.Show)
		hp.cards = append(hp.cards, card)
		hp.grid.Add(card)
	}
	for len(hp.cards) > len(state.Gallery) {
		last := hp.cards[len(hp.cards)-1]
		hp.grid.Remove(last)
		hp.cards = hp.cards[:len(hp.cards)-1]
	}
	for i, rec := range state.Gallery {
		hp.cards[i].SetRecord(rec)
		if hp.viewer.Visible() && hp.viewer.Record().ID == rec.ID {
			hp.viewer.SetRecord(rec)
		}
	}
}

func (hp *HomePage) onFavorite(id int) {
	wasFavorite := false
	for _, card := range hp.cards {
		if rec, ok := card.Record(); ok && rec.ID == id {
			wasFavorite = rec.Favorite
			break
		}
	}

	hp.home.ToggleFavorite(id)

	if hp.notify == nil {
		return
	}
	if wasFavorite {
		hp.notify(hp.localization.GetText(KeyFavoriteRemoved))
	} else {
		hp.notify(hp.localization.GetText(KeyFavoriteAdded))
	}
}
