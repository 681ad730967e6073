package view

import (
	"sync"

	"github.com/kleyver/kleyver-app/internal/observable"
)

// SocialLink is an external profile shown on the profile and contact pages
type SocialLink struct {
	Network string
	Icon    string
	Handle  string
}

// ProfileInfo is the static profile content
type ProfileInfo struct {
	Name     string
	Role     string
	Location string
	Bio      string
	Email    string
	Phone    string
	Skills   []string
	Social   []SocialLink
}

// DefaultProfile returns the built-in profile
func DefaultProfile() ProfileInfo {
	return ProfileInfo{
		Name:     "Kleyver",
		Role:     "Fotógrafo de viajes",
		Location: "Bogotá, Colombia",
		Bio:      "Capturo la esencia de cada destino, desde paisajes majestuosos hasta detalles únicos que hacen especial cada lugar.",
		Email:    "hola@kleyver.app",
		Phone:    "+57 300 000 0000",
		Skills:   []string{"Paisaje", "Arquitectura", "Retrato", "Gastronomía", "Edición"},
		Social: []SocialLink{
			{Network: "Instagram", Icon: "logo-instagram", Handle: "@kleyver"},
			{Network: "Facebook", Icon: "logo-facebook", Handle: "kleyver.photo"},
			{Network: "Twitter", Icon: "logo-twitter", Handle: "@kleyver"},
			{Network: "YouTube", Icon: "logo-youtube", Handle: "KleyverViajes"},
		},
	}
}

// ProfileState is what the profile page renders
type ProfileState struct {
	Info ProfileInfo
	Dark bool
}

// Profile is the personal information page controller
type Profile struct {
	info ProfileInfo

	mu       sync.Mutex
	dark     bool
	onUpdate func(ProfileState)

	themeSub *observable.Subscription
}

// NewProfile subscribes to the dark-mode stream
func NewProfile(themes ThemeSource, info ProfileInfo) *Profile {
	p := &Profile{info: info}
	p.themeSub = themes.SubscribeDarkMode(p.onDarkMode)
	return p
}

// SetUpdateCallback sets the function called after every state change
func (p *Profile) SetUpdateCallback(callback func(ProfileState)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = callback
}

// State returns the current view state
func (p *Profile) State() ProfileState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ProfileState{Info: p.info, Dark: p.dark}
}

// Close revokes the theme subscription
func (p *Profile) Close() {
	p.themeSub.Cancel()
}

func (p *Profile) onDarkMode(dark bool) {
	p.mu.Lock()
	p.dark = dark
	state := ProfileState{Info: p.info, Dark: dark}
	callback := p.onUpdate
	p.mu.Unlock()

	if callback != nil {
		callback(state)
	}
}
