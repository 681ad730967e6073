package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific layout decisions
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if m.device == nil {
		return false
	}
	return fyne.IsHorizontal(m.device.Orientation())
}

// GalleryColumns returns how many gallery cards fit in a row
func (m *MobileUI) GalleryColumns() int {
	if !m.IsMobileDevice() {
		return DesktopColumns
	}
	if m.IsLandscape() {
		return MobileLandscapeColumns
	}
	return MobilePortraitColumns
}

// GetMobileSpacing returns appropriate spacing for mobile devices
func (m *MobileUI) GetMobileSpacing() float32 {
	if m.IsMobileDevice() {
		return 16 // Larger spacing for mobile
	}
	return 8 // Standard spacing for desktop
}

// MinCardSize returns the minimum gallery card size, honoring touch targets on mobile
func (m *MobileUI) MinCardSize() fyne.Size {
	if m.IsMobileDevice() {
		return fyne.NewSize(CardMinWidth, CardMinHeight+MinTouchTargetSize/2)
	}
	return fyne.NewSize(CardMinWidth, CardMinHeight)
}
