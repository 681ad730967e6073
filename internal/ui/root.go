package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/kleyver/kleyver-app/internal/catalog"
	"github.com/kleyver/kleyver-app/internal/config"
	"github.com/kleyver/kleyver-app/internal/observable"
	apptheme "github.com/kleyver/kleyver-app/internal/theme"
	"github.com/kleyver/kleyver-app/internal/view"
)

// Services are the controllers the UI is built on
type Services struct {
	Settings *config.Settings
	Themes   *apptheme.Controller
	Catalog  *catalog.Catalog
	Logger   zerolog.Logger
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	themes       *apptheme.Controller
	localization *Localization
	logger       zerolog.Logger

	home    *view.Home
	profile *view.Profile
	contact *view.Contact

	homePage    *HomePage
	profilePage *ProfilePage
	contactPage *ContactPage

	tabs     *container.AppTabs
	themeBtn *widget.Button
	dark     binding.Bool
	darkSub  *observable.Subscription

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationTimer     *time.Timer
}

// themeGlyph returns the toggle glyph for the current mode
func themeGlyph(dark bool) string {
	if view.ThemeIcon(dark) == view.IconSunny {
		return IconSun
	}
	return IconMoon
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, svc Services) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(svc.Settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     svc.Settings,
		themes:       svc.Themes,
		localization: localization,
		logger:       svc.Logger,
		dark:         binding.NewBool(),
	}

	ui.home = view.NewHome(svc.Themes, svc.Catalog, svc.Settings.GetHomeLimit(), svc.Logger)
	ui.profile = view.NewProfile(svc.Themes, view.DefaultProfile())
	ui.contact = view.NewContact(svc.Logger)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	ui.darkSub = svc.Themes.SubscribeDarkMode(func(dark bool) {
		_ = ui.dark.Set(dark)
	})

	ui.logger.Info().Str("language", localization.GetCurrentLanguage()).Msg("ui ready")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	mobileUI := NewMobileUI()
	ui.homePage = NewHomePage(ui.home, ui.localization, mobileUI, ui.window.Canvas(), ui.showNotification)
	ui.profilePage = NewProfilePage(ui.profile, ui.localization)
	ui.contactPage = NewContactPage(ui.contact, ui.localization, ui.logger, ui.showNotification)

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyTabHome), ui.homePage.Content()),
		container.NewTabItem(ui.localization.GetText(KeyTabProfile), ui.profilePage.Content()),
		container.NewTabItem(ui.localization.GetText(KeyTabContact), ui.contactPage.Content()),
	)
	if mobileUI.IsMobileDevice() {
		ui.tabs.SetTabLocation(container.TabLocationBottom)
	}

	// Theme toggle; its glyph follows the dark-mode binding
	ui.themeBtn = widget.NewButton(themeGlyph(ui.themes.IsDark()), ui.onToggleTheme)
	ui.themeBtn.Importance = widget.LowImportance
	ui.dark.AddListener(binding.NewDataListener(func() {
		dark, err := ui.dark.Get()
		if err != nil {
			return
		}
		ui.themeBtn.SetText(themeGlyph(dark))
	}))

	title := widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	topPanel := container.NewBorder(nil, nil, nil, ui.themeBtn, title)

	// Notification panel under the header (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationContainer = container.NewHBox(container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	swipe := newSwipeArea(ui.tabs, TabSwiper(ui.tabs))

	top := container.NewVBox(topPanel, ui.notificationContainer)
	content := container.NewBorder(top, nil, nil, nil, swipe)

	ui.window.SetContent(content)
	ui.window.SetOnClosed(ui.Close)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	options := ui.settings.GetLanguageOptions()
	for _, code := range ui.localization.Languages() {
		langCode := code
		name, ok := options[code]
		if !ok {
			name = code
		}
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
	ui.showNotification(ui.localization.GetText(KeyRestartHint))
}

// refreshUITexts updates the texts owned by the root
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	keys := []string{KeyTabHome, KeyTabProfile, KeyTabContact}
	for i, item := range ui.tabs.Items {
		if i < len(keys) {
			item.Text = ui.localization.GetText(keys[i])
		}
	}
	ui.tabs.Refresh()
}

func (ui *RootUI) onToggleTheme() {
	ui.home.ToggleTheme()
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.themes, ui.localization, func() {
		ui.refreshUITexts()
		ui.createMenu()
		ui.showNotification(ui.localization.GetText(KeySettingsSaved))
	})
}

// showNotification displays a message in the notification panel and hides it
// after NotificationAutoHide
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()

	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationTimer = time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(ui.notificationContainer.Hide)
	})
}

// NotificationText returns the message currently shown, or "" when hidden
func (ui *RootUI) NotificationText() string {
	if !ui.notificationContainer.Visible() {
		return ""
	}
	return ui.notificationLabel.Text
}

// Tabs exposes the tab container
func (ui *RootUI) Tabs() *container.AppTabs {
	return ui.tabs
}

// Close revokes every subscription held by the UI
func (ui *RootUI) Close() {
	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.darkSub.Cancel()
	ui.home.Close()
	ui.profile.Close()
}

// swipeArea forwards touches on its content to a gesture handler
type swipeArea struct {
	widget.BaseWidget
	content  fyne.CanvasObject
	gestures *GestureHandler
}

func newSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *swipeArea {
	s := &swipeArea{content: content, gestures: NewGestureHandler(onGesture)}
	s.ExtendBaseWidget(s)
	return s
}

func (s *swipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

func (s *swipeArea) TouchDown(event *mobile.TouchEvent) { s.gestures.TouchDown(event) }
func (s *swipeArea) TouchUp(event *mobile.TouchEvent) { s.gestures.TouchUp(event) }
func (s *swipeArea) TouchCancel(event *mobile.TouchEvent) { s.gestures.TouchCancel(event) }
