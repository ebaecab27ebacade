package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadBreakout when no config file was found.
const SourceEmbedded = "embedded"

// LoadBreakout loads and validates the Breakout configuration.
// Search order: customPath -> ~/.breakout/breakout.{yaml,yml,toml} ->
// ./configs/breakout.yaml -> embedded default.
// Files overlay the defaults, so a file only needs the keys it changes.
// The second return value names the file the config came from.
func LoadBreakout(customPath string) (BreakoutConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	candidates := userConfigPaths()
	candidates = append(candidates, filepath.Join("configs", "breakout.yaml"))

	for _, path := range candidates {
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, nil
	}

	cfg, err := embeddedDefault()
	return cfg, SourceEmbedded, err
}

// embeddedDefault decodes the embedded YAML document.
func embeddedDefault() (BreakoutConfig, error) {
	return decodeEmbedded(defaultBreakoutYAML)
}

// decodeEmbedded decodes data on top of the hardcoded defaults. A broken
// document is reported, never papered over.
func decodeEmbedded(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBreakoutConfig(), fmt.Errorf("failed to parse embedded config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("embedded config: %w", err)
	}
	return cfg, nil
}

// loadFile decodes one config file on top of the defaults and validates it.
func loadFile(path string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := Decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data into cfg, picking the format from the file extension.
// Keys missing from data keep the values already in cfg.
func Decode(path string, data []byte, cfg *BreakoutConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("toml decode: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	return nil
}

// MarshalYAML renders cfg as a YAML document.
func MarshalYAML(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns the supported config file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// userConfigPaths returns candidate files under ~/.breakout, or nil if the
// home directory is unavailable.
func userConfigPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	paths := make([]string, 0, len(FormatExtensions()))
	for _, ext := range FormatExtensions() {
		paths = append(paths, filepath.Join(home, ".breakout", "breakout"+ext))
	}
	return paths
}

// ApplyPreset modifies the config based on a difficulty preset.
// PresetNormal and the empty preset leave the config unchanged.
func ApplyPreset(cfg *BreakoutConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Gameplay.Lives = 5
		cfg.Ball.Speed = 2.5
		cfg.Paddle.Step = 50
	case PresetHard:
		cfg.Gameplay.Lives = 2
		cfg.Ball.Speed = 4
		cfg.Paddle.Step = 30
	}
}
