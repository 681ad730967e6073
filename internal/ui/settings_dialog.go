package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/kleyver/kleyver-app/internal/config"
	apptheme "github.com/kleyver/kleyver-app/internal/theme"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 420
	SettingsDialogHeight = 260
)

// SettingsDialog edits theme, language and home gallery size
type SettingsDialog struct {
	settings     *config.Settings
	themes       *apptheme.Controller
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// language display name <-> code
	languageCodes map[string]string
	languageNames map[string]string

	// theme display name <-> theme
	themeValues map[string]apptheme.Theme
	themeLabels map[apptheme.Theme]string

	// UI components
	themeRadio     *widget.RadioGroup
	languageSelect *widget.Select
	homeLimitEntry *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, themes *apptheme.Controller, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		themes:        themes,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
		languageNames: make(map[string]string),
		themeValues:   make(map[string]apptheme.Theme),
		themeLabels:   make(map[apptheme.Theme]string),
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, themes *apptheme.Controller, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, themes, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	themeOptions := make([]string, 0, 2)
	for _, t := range []apptheme.Theme{apptheme.Light, apptheme.Dark} {
		label := l.GetText(KeyThemeLight)
		if t.IsDark() {
			label = l.GetText(KeyThemeDark)
		}
		sd.themeValues[label] = t
		sd.themeLabels[t] = label
		themeOptions = append(themeOptions, label)
	}
	sd.themeRadio = widget.NewRadioGroup(themeOptions, nil)
	sd.themeRadio.Horizontal = true
	sd.themeRadio.Required = true

	names := make([]string, 0)
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		sd.languageNames[code] = name
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	sd.homeLimitEntry = widget.NewEntry()
	sd.homeLimitEntry.SetPlaceHolder(strconv.Itoa(config.HomeLimitAll) + "-" + strconv.Itoa(config.MaxHomeLimit) + " (" + l.GetText(KeyHomeLimitHint) + ")")

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyTheme)+":"),
		sd.themeRadio,
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
		widget.NewLabel(l.GetText(KeyHomeLimit)+":"),
		sd.homeLimitEntry,
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyRestartHint)),
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.themeRadio.SetSelected(sd.themeLabels[sd.themes.Current()])
	sd.languageSelect.SetSelected(sd.languageNames[sd.settings.GetLanguage()])
	sd.homeLimitEntry.SetText(strconv.Itoa(sd.settings.GetHomeLimit()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if t, ok := sd.themeValues[sd.themeRadio.Selected]; ok && t != sd.themes.Current() {
		if err := sd.themes.SetTheme(t); err != nil {
			dialog.ShowError(err, sd.window)
		}
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
		sd.localization.SetLanguage(code)
	}

	if limit, err := strconv.Atoi(sd.homeLimitEntry.Text); err == nil {
		sd.settings.SetHomeLimit(limit)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
