package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Setenv("XDG_CONFIG_HOME", "")
	if got, want := ConfigDir("check_cdap"), filepath.Join(home, ".config", "check_cdap"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	if got, want := ConfigDir("check_cdap"), filepath.Join(xdg, "check_cdap"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "relative/dir")
	if got, want := ConfigDir("check_cdap"), filepath.Join(home, ".config", "check_cdap"); got != want {
		t.Errorf("relative XDG_CONFIG_HOME must be ignored, got %q", got)
	}
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if Exists(path) {
		t.Fatal("Exists() = true before create")
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Fatal("Exists() = false after create")
	}
}
