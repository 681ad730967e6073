package ui

// Package ui contains the Fyne-based user interface: a tabbed window with the
// gallery, the profile and the contact form. Pages render view state from
// internal/view and forward user actions back to the controllers. All UI
// strings are localized via Localization.
