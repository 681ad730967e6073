package platform

// Package platform contains OS integration: where the app keeps its files on
// each platform and directory creation.
