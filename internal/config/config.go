package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the lobby config file, relative to the process working
// directory. Override with LOBBY_CONFIG.
const DefaultPath = "config/lobby.yaml"

// Config holds lobby preferences. Persisted across runs; everything here has a
// working default so a missing or broken file never stops the program.
type Config struct {
	WindowWidth  int32  `yaml:"window_width"`
	WindowHeight int32  `yaml:"window_height"`
	Background   string `yaml:"background"`

	// Device-class point budget: viewports at most the threshold wide get the
	// coarse count, wider ones the fine count.
	ParticleCoarse         int   `yaml:"particle_coarse"`
	ParticleFine           int   `yaml:"particle_fine"`
	ParticleWidthThreshold int32 `yaml:"particle_width_threshold"`

	FadeMillis int `yaml:"fade_millis"`

	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`

	// Seed for the particle scatter; 0 means time-based (fresh every session).
	Seed int64 `yaml:"seed,omitempty"`
}

// Default returns the stock preferences: 1280x720 window, 400/1000 point budget
// split at 768px, 1s fade, overlays off.
func Default() Config {
	return Config{
		WindowWidth:            1280,
		WindowHeight:           720,
		Background:             "assets/background/lobby.png",
		ParticleCoarse:         400,
		ParticleFine:           1000,
		ParticleWidthThreshold: 768,
		FadeMillis:             1000,
	}
}

// Load reads preferences from path. A missing or invalid file yields Default()
// with a nil error; preferences are never a reason to fail startup.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), nil
	}
	return c, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy, so override application never mutates a shared
// value.
func (c Config) Clone() Config {
	var out Config
	_ = copier.Copy(&out, &c)
	return out
}

// WithEnvOverrides returns a copy with environment overrides applied.
// LOBBY_BACKGROUND replaces the background asset path.
func (c Config) WithEnvOverrides() Config {
	out := c.Clone()
	if bg := os.Getenv("LOBBY_BACKGROUND"); bg != "" {
		out.Background = bg
	}
	return out
}

// FadeDuration returns the panel fade length.
func (c Config) FadeDuration() time.Duration {
	if c.FadeMillis <= 0 {
		return time.Second
	}
	return time.Duration(c.FadeMillis) * time.Millisecond
}
