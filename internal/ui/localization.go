package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyTabHome          = "tab_home"
	KeyTabProfile       = "tab_profile"
	KeyTabContact       = "tab_contact"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyHomeLimit        = "home_limit"
	KeyHomeLimitHint    = "home_limit_hint"
	KeyTheme            = "theme"
	KeyThemeLight       = "theme_light"
	KeyThemeDark        = "theme_dark"
	KeyClose            = "close"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyRestartHint      = "restart_hint"
	KeyWelcome          = "welcome"
	KeyWelcomeSubtitle  = "welcome_subtitle"
	KeyStatsPhotos      = "stats_photos"
	KeyStatsDestination = "stats_destinations"
	KeyStatsFavorites   = "stats_favorites"
	KeyCardLandscapes   = "card_landscapes"
	KeyCardArchitecture = "card_architecture"
	KeyCardFavorites    = "card_favorites"
	KeyGallery          = "gallery"
	KeyFavoriteAdded    = "favorite_added"
	KeyFavoriteRemoved  = "favorite_removed"
	KeySkills           = "skills"
	KeyFollow           = "follow"
	KeyContactTitle     = "contact_title"
	KeyFieldName        = "field_name"
	KeyFieldEmail       = "field_email"
	KeyFieldSubject     = "field_subject"
	KeyFieldMessage     = "field_message"
	KeyFieldSubscribe   = "field_subscribe"
	KeySend             = "send"
	KeyMessageSent      = "message_sent"
	KeyFormInvalid      = "form_invalid"
	KeyErrRequired      = "err_required"
	KeyErrEmail         = "err_email"
	KeyErrMinLength     = "err_minlength"
	KeySubjectInfo      = "subject_info"
	KeySubjectSession   = "subject_session"
	KeySubjectCollab    = "subject_collaboration"
	KeySubjectOther     = "subject_other"
)

// fallbackLanguage is used when a key is missing in the current language
const fallbackLanguage = "es"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: fallbackLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[fallbackLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// Languages returns the available language codes, sorted
func (l *Localization) Languages() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.texts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["es"] = map[string]string{
		KeyAppTitle:         "Kleyver",
		KeyTabHome:          "Inicio",
		KeyTabProfile:       "Perfil",
		KeyTabContact:       "Contacto",
		KeySettings:         "Ajustes",
		KeyLanguage:         "Idioma",
		KeyHomeLimit:        "Fotos en inicio",
		KeyHomeLimitHint:    "0 = todas",
		KeyTheme:            "Tema",
		KeyThemeLight:       "Claro",
		KeyThemeDark:        "Oscuro",
		KeyClose:            "Cerrar",
		KeySave:             "Guardar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Ajustes guardados",
		KeyRestartHint:      "Algunos cambios se aplican al reiniciar",
		KeyWelcome:          "Descubre el mundo",
		KeyWelcomeSubtitle:  "a través de mi lente",
		KeyStatsPhotos:      "Fotos",
		KeyStatsDestination: "Destinos",
		KeyStatsFavorites:   "Favoritos",
		KeyCardLandscapes:   "Paisajes",
		KeyCardArchitecture: "Arquitectura",
		KeyCardFavorites:    "Favoritos",
		KeyGallery:          "Galería",
		KeyFavoriteAdded:    "Añadido a favoritos",
		KeyFavoriteRemoved:  "Eliminado de favoritos",
		KeySkills:           "Especialidades",
		KeyFollow:           "Sígueme",
		KeyContactTitle:     "Hablemos de tu próximo proyecto",
		KeyFieldName:        "Nombre",
		KeyFieldEmail:       "Correo electrónico",
		KeyFieldSubject:     "Asunto",
		KeyFieldMessage:     "Mensaje",
		KeyFieldSubscribe:   "Quiero recibir novedades",
		KeySend:             "Enviar",
		KeyMessageSent:      "¡Mensaje enviado! Te responderé pronto.",
		KeyFormInvalid:      "Revisa los campos marcados",
		KeyErrRequired:      "Este campo es obligatorio",
		KeyErrEmail:         "Introduce un correo válido",
		KeyErrMinLength:     "El mensaje debe tener al menos 10 caracteres",
		KeySubjectInfo:      "Información general",
		KeySubjectSession:   "Sesión de fotos",
		KeySubjectCollab:    "Colaboración",
		KeySubjectOther:     "Otro",
	}

	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Kleyver",
		KeyTabHome:          "Home",
		KeyTabProfile:       "Profile",
		KeyTabContact:       "Contact",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyHomeLimit:        "Photos on home",
		KeyHomeLimitHint:    "0 = all",
		KeyTheme:            "Theme",
		KeyThemeLight:       "Light",
		KeyThemeDark:        "Dark",
		KeyClose:            "Close",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved",
		KeyRestartHint:      "Some changes apply after restart",
		KeyWelcome:          "Discover the world",
		KeyWelcomeSubtitle:  "through my lens",
		KeyStatsPhotos:      "Photos",
		KeyStatsDestination: "Destinations",
		KeyStatsFavorites:   "Favorites",
		KeyCardLandscapes:   "Landscapes",
		KeyCardArchitecture: "Architecture",
		KeyCardFavorites:    "Favorites",
		KeyGallery:          "Gallery",
		KeyFavoriteAdded:    "Added to favorites",
		KeyFavoriteRemoved:  "Removed from favorites",
		KeySkills:           "Specialties",
		KeyFollow:           "Follow me",
		KeyContactTitle:     "Let's talk about your next project",
		KeyFieldName:        "Name",
		KeyFieldEmail:       "Email",
		KeyFieldSubject:     "Subject",
		KeyFieldMessage:     "Message",
		KeyFieldSubscribe:   "Keep me posted",
		KeySend:             "Send",
		KeyMessageSent:      "Message sent! I'll get back to you soon.",
		KeyFormInvalid:      "Please check the highlighted fields",
		KeyErrRequired:      "This field is required",
		KeyErrEmail:         "Enter a valid email",
		KeyErrMinLength:     "The message must be at least 10 characters",
		KeySubjectInfo:      "General information",
		KeySubjectSession:   "Photo session",
		KeySubjectCollab:    "Collaboration",
		KeySubjectOther:     "Other",
	}
}
