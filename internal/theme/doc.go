package theme

// Package theme owns the active light/dark theme: it restores the persisted
// choice on start, persists and broadcasts every change, and applies it to the
// visual root through Appliers.
