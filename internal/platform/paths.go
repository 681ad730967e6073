package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// androidDataRoot is the app-private data root on Android
const androidDataRoot = "/data/data"

// IsAndroid reports whether the process runs on Android. Fyne Android apps
// run as libdist.so, so the environment is checked as well as GOOS.
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// ConfigDir returns the per-user configuration directory for appName
func ConfigDir(appName string) (string, error) {
	if appName == "" {
		return "", fmt.Errorf("empty app name")
	}

	if IsAndroid() {
		if dir := os.Getenv("FILESDIR"); dir != "" {
			return filepath.Join(dir, appName), nil
		}
		return filepath.Join(androidDataRoot, appName, "files"), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("failed to resolve config directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName), nil
}

// CreateDirectoryIfNotExists creates dirPath and any missing parents
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
