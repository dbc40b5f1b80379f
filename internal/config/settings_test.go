package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "no-such-file.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defaults := DefaultSettings()
	if settings.OutDir != defaults.OutDir {
		t.Errorf("OutDir = %q, want %q", settings.OutDir, defaults.OutDir)
	}
	if settings.Workers != defaults.Workers {
		t.Errorf("Workers = %d, want %d", settings.Workers, defaults.Workers)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"workers": 2}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Workers != 2 {
		t.Errorf("Workers = %d, want 2", settings.Workers)
	}
	if settings.OutDir != "out" {
		t.Errorf("OutDir = %q, want default %q", settings.OutDir, "out")
	}
}

func TestRequestDelay(t *testing.T) {
	s := &Settings{RequestDelaySeconds: 0.5}
	if got := s.RequestDelay(); got != 500*time.Millisecond {
		t.Errorf("RequestDelay() = %v, want 500ms", got)
	}
}

func TestLoadSession_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	if err := os.WriteFile(path, []byte("from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(SessionEnv, "from-env")
	if got := LoadSession(path); got != "from-env" {
		t.Errorf("LoadSession = %q, want %q", got, "from-env")
	}

	t.Setenv(SessionEnv, "")
	if got := LoadSession(path); got != "from-file" {
		t.Errorf("LoadSession = %q, want %q", got, "from-file")
	}
}

func TestLoadSession_AbsentIsEmpty(t *testing.T) {
	t.Setenv(SessionEnv, "")
	got := LoadSession(filepath.Join(t.TempDir(), "no-session"))
	if got != "" {
		t.Errorf("LoadSession = %q, want empty", got)
	}
}
