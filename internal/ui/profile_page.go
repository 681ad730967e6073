package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/kleyver/kleyver-app/internal/view"
)

// ProfilePage renders the static profile
type ProfilePage struct {
	profile      *view.Profile
	localization *Localization

	modeLabel *widget.Label
	content   fyne.CanvasObject
}

// NewProfilePage builds the page from profile's state
func NewProfilePage(profile *view.Profile, localization *Localization) *ProfilePage {
	pp := &ProfilePage{
		profile:      profile,
		localization: localization,
	}
	state := profile.State()
	pp.createUI(state.Info)

	profile.SetUpdateCallback(func(state view.ProfileState) {
		fyne.Do(func() { pp.render(state) })
	})
	pp.render(profile.State())
	return pp
}

// Content returns the page root object
func (pp *ProfilePage) Content() fyne.CanvasObject {
	return pp.content
}

func (pp *ProfilePage) createUI(info view.ProfileInfo) {
	l := pp.localization

	name := widget.NewLabelWithStyle(info.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	role := widget.NewLabelWithStyle(info.Role, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	location := widget.NewLabelWithStyle(IconPin+" "+info.Location, fyne.TextAlignCenter, fyne.TextStyle{})
	pp.modeLabel = widget.NewLabel("")
	pp.modeLabel.Alignment = fyne.TextAlignCenter

	bio := widget.NewLabel(info.Bio)
	bio.Wrapping = fyne.TextWrapWord

	skills := widget.NewLabel(strings.Join(info.Skills, MiddleDotSeparator))
	skills.Wrapping = fyne.TextWrapWord

	social := container.NewVBox()
	for _, link := range info.Social {
		social.Add(widget.NewLabel(link.Network + ": " + link.Handle))
	}

	contact := widget.NewLabel(IconMail + " " + info.Email + "\n" + IconPhone + " " + info.Phone)

	pp.content = container.NewVScroll(container.NewVBox(
		pp.modeLabel,
		name,
		role,
		location,
		widget.NewCard("", "", bio),
		widget.NewCard(l.GetText(KeySkills), "", skills),
		widget.NewCard(l.GetText(KeyFollow), "", social),
		contact,
	))
}

func (pp *ProfilePage) render(state view.ProfileState) {
	pp.modeLabel.SetText(IconCamera + " " + themeGlyph(state.Dark))
}
