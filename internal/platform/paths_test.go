package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "nested", "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	info, err := os.Stat(testDir)
	if err != nil {
		t.Fatalf("Directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("Expected a directory at %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	if IsAndroid() {
		t.Skip("desktop layout only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir, err := ConfigDir("kleyver-app")
	if err != nil {
		t.Fatalf("ConfigDir failed: %v", err)
	}
	if filepath.Base(dir) != "kleyver-app" {
		t.Errorf("Expected directory to end with 'kleyver-app', got: %s", dir)
	}
}

func TestConfigDir_EmptyName(t *testing.T) {
	if _, err := ConfigDir(""); err == nil {
		t.Error("Expected error for empty app name")
	}
}
