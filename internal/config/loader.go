package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name the two fallback sources LoadFlappy
// reports when no file on disk was used.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadFlappy loads Flappy Bird configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets. A missing file moves on to the next location; a file that
// exists but does not parse is an error. The result is not validated; call
// Validate before use.
func LoadFlappy(customPath string) (FlappyConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parseFile(customPath, data)
	}

	for _, path := range []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			return parseFile(path, data)
		}
	}

	cfg, err := ParseFlappy(GetDefaultYAML("flappy"))
	if err != nil {
		return DefaultFlappyConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func parseFile(path string, data []byte) (FlappyConfig, string, error) {
	cfg, err := ParseFlappy(data)
	if err != nil {
		return FlappyConfig{}, "", fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, path, nil
}

// ParseFlappy decodes YAML on top of DefaultFlappyConfig.
func ParseFlappy(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// MarshalFlappy encodes the configuration as YAML.
func MarshalFlappy(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode flappy config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
