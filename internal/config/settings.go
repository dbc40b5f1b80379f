package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rnozawa/fanbox-dl/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Download settings
	OutDir              string  `json:"out_dir"`
	Workers             int     `json:"workers"`
	RequestDelaySeconds float64 `json:"request_delay_seconds"`
	PageLimit           int     `json:"page_limit"`

	// Credential and rule file locations
	SessionFile string `json:"session_file"`
	IgnoreFile  string `json:"ignore_file"`

	// Cover art settings
	SaveCoverArt    bool `json:"save_cover_art"`
	CoverArtResize  bool `json:"cover_art_resize"`
	CoverArtMaxSize int  `json:"cover_art_max_size"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutDir:              "out",
		Workers:             5,
		RequestDelaySeconds: 1.0,
		PageLimit:           50,

		SessionFile: ".fanbox_session",
		IgnoreFile:  "ignore.txt",

		SaveCoverArt:    false,
		CoverArtResize:  true,
		CoverArtMaxSize: 1200,
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RequestDelay is the pacing delay between listing pages and between
// artists, as a duration.
func (s *Settings) RequestDelay() time.Duration {
	return time.Duration(s.RequestDelaySeconds * float64(time.Second))
}

// ToPathConfig converts settings to a model.PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	return &model.PathConfig{OutDir: s.OutDir}
}
