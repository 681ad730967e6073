package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleyver/kleyver-app/internal/catalog"
	"github.com/kleyver/kleyver-app/internal/config"
	apptheme "github.com/kleyver/kleyver-app/internal/theme"
	"github.com/kleyver/kleyver-app/internal/view"
)

const waitFor = time.Second

type rootFixture struct {
	app      fyne.App
	window   fyne.Window
	settings *config.Settings
	themes   *apptheme.Controller
	catalog  *catalog.Catalog
	ui       *RootUI
}

func newRootFixture(t *testing.T) *rootFixture {
	t.Helper()

	a := test.NewApp()
	settings := config.NewSettings(a.Preferences())
	settings.SetHomeLimit(4)

	themes := apptheme.NewController(settings, zerolog.Nop(), NewFyneApplier(a))
	cat, err := catalog.Default(zerolog.Nop())
	require.NoError(t, err)

	w := test.NewWindow(nil)
	ui := NewRootUI(w, Services{
		Settings: settings,
		Themes:   themes,
		Catalog:  cat,
		Logger:   zerolog.Nop(),
	})

	t.Cleanup(func() {
		ui.Close()
		themes.Close()
		cat.Close()
		w.Close()
		a.Quit()
	})

	return &rootFixture{app: a, window: w, settings: settings, themes: themes, catalog: cat, ui: ui}
}

func TestRootUI_Layout(t *testing.T) {
	f := newRootFixture(t)

	require.Len(t, f.ui.Tabs().Items, 3)
	assert.Equal(t, "Inicio", f.ui.Tabs().Items[TabHome].Text)
	assert.Equal(t, "Perfil", f.ui.Tabs().Items[TabProfile].Text)
	assert.Equal(t, "Contacto", f.ui.Tabs().Items[TabContact].Text)
	assert.Len(t, f.ui.homePage.Cards(), 4, "gallery honors the home limit")
	assert.Equal(t, IconMoon, f.ui.themeBtn.Text)
}

func TestRootUI_ThemeToggle(t *testing.T) {
	f := newRootFixture(t)

	test.Tap(f.ui.themeBtn)
	assert.True(t, f.themes.IsDark())
	assert.Equal(t, "dark", f.settings.GetTheme())

	assert.Eventually(t, func() bool {
		return f.ui.themeBtn.Text == IconSun
	}, waitFor, 10*time.Millisecond)

	test.Tap(f.ui.themeBtn)
	assert.False(t, f.themes.IsDark())
	assert.Eventually(t, func() bool {
		return f.ui.themeBtn.Text == IconMoon
	}, waitFor, 10*time.Millisecond)
}

func TestRootUI_FavoriteFromCard(t *testing.T) {
	f := newRootFixture(t)

	card := f.ui.homePage.Cards()[0]
	rec, ok := card.Record()
	require.True(t, ok)

	test.Tap(card.favBtn)

	got, ok := f.catalog.FindByID(rec.ID)
	require.True(t, ok)
	assert.Equal(t, !rec.Favorite, got.Favorite)

	want := KeyFavoriteAdded
	if rec.Favorite {
		want = KeyFavoriteRemoved
	}
	assert.Equal(t, f.ui.localization.GetText(want), f.ui.NotificationText())

	assert.Eventually(t, func() bool {
		shown, _ := card.Record()
		return shown.Favorite == !rec.Favorite
	}, waitFor, 10*time.Millisecond)
}

func TestRootUI_DoubleTapTogglesFavorite(t *testing.T) {
	f := newRootFixture(t)

	card := f.ui.homePage.Cards()[1]
	rec, _ := card.Record()

	test.DoubleTap(card)

	got, _ := f.catalog.FindByID(rec.ID)
	assert.Equal(t, !rec.Favorite, got.Favorite)
}

func TestRootUI_TapOpensPhotoViewer(t *testing.T) {
	f := newRootFixture(t)
	viewer := f.ui.homePage.Viewer()
	require.False(t, viewer.Visible())

	card := f.ui.homePage.Cards()[2]
	rec, _ := card.Record()

	test.Tap(card)
	require.True(t, viewer.Visible())
	assert.Equal(t, rec.ID, viewer.Record().ID)
	assert.Equal(t, rec.GetDisplayTitle(), viewer.titleLabel.Text)
	assert.Equal(t, rec.Description, viewer.descLabel.Text)
	assert.Contains(t, viewer.metaLabel.Text, rec.Location)

	test.Tap(viewer.favBtn)
	got, _ := f.catalog.FindByID(rec.ID)
	assert.Equal(t, !rec.Favorite, got.Favorite)
	assert.Eventually(t, func() bool {
		return viewer.Record().Favorite == !rec.Favorite
	}, waitFor, 10*time.Millisecond)

	test.Tap(viewer.closeBtn)
	assert.False(t, viewer.Visible())
}

func TestContactPage_InvalidSubmitShowsErrors(t *testing.T) {
	f := newRootFixture(t)
	cp := f.ui.contactPage

	assert.False(t, cp.ErrorShown(view.FieldName), "untouched fields show no error")

	test.Tap(cp.sendBtn)

	assert.True(t, cp.ErrorShown(view.FieldName))
	assert.True(t, cp.ErrorShown(view.FieldEmail))
	assert.True(t, cp.ErrorShown(view.FieldMessage))
	assert.Equal(t, f.ui.localization.GetText(KeyFormInvalid), f.ui.NotificationText())
}

func TestContactPage_FocusLossShowsError(t *testing.T) {
	f := newRootFixture(t)
	cp := f.ui.contactPage

	cp.nameEntry.FocusLost()

	assert.True(t, cp.ErrorShown(view.FieldName))
	assert.False(t, cp.ErrorShown(view.FieldEmail), "other fields stay untouched")
	assert.True(t, f.ui.contact.Invalid(view.FieldName))

	cp.nameEntry.SetText("Ana")
	assert.False(t, cp.ErrorShown(view.FieldName))
}

func TestContactPage_ValidSubmitResetsForm(t *testing.T) {
	f := newRootFixture(t)
	cp := f.ui.contactPage

	cp.nameEntry.SetText("Ana")
	cp.emailEntry.SetText("not-an-email")
	assert.True(t, cp.ErrorShown(view.FieldEmail))
	assert.False(t, cp.ErrorShown(view.FieldMessage), "message not touched yet")

	cp.emailEntry.SetText("ana@example.com")
	cp.subjectSelect.SetSelected(cp.subjectLabels[view.SubjectSession])
	cp.messageEntry.SetText("Quiero una sesión de fotos")
	cp.subscribeCheck.SetChecked(true)
	assert.False(t, cp.ErrorShown(view.FieldEmail))

	test.Tap(cp.sendBtn)

	assert.Equal(t, f.ui.localization.GetText(KeyMessageSent), f.ui.NotificationText())
	assert.Equal(t, view.DefaultContactForm(), f.ui.contact.Form())
	assert.Empty(t, cp.nameEntry.Text)
	assert.Empty(t, cp.emailEntry.Text)
	assert.False(t, cp.subscribeCheck.Checked)
	assert.Equal(t, cp.subjectLabels[view.SubjectInfo], cp.subjectSelect.Selected)
	assert.False(t, cp.ErrorShown(view.FieldName))
}

func TestRootUI_LanguageChange(t *testing.T) {
	f := newRootFixture(t)

	f.ui.onLanguageChange("en")

	assert.Equal(t, "en", f.settings.GetLanguage())
	assert.Equal(t, "Home", f.ui.Tabs().Items[TabHome].Text)
	assert.Equal(t, f.ui.localization.GetText(KeyRestartHint), f.ui.NotificationText())
}

func TestRootUI_CloseRevokesSubscriptions(t *testing.T) {
	f := newRootFixture(t)

	f.ui.Close()
	f.ui.Close()

	require.NoError(t, f.themes.SetTheme(apptheme.Dark))
	assert.True(t, f.themes.IsDark())
}
