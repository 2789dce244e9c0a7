package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const sweeperFile = "minesweeper.yaml"

// LoadSweeper loads minesweeper configuration.
// Search order: customPath -> ~/.arcade/configs/minesweeper.yaml -> ./configs/minesweeper.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadSweeper(customPath string) (SweeperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SweeperConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSweeper(data)
		if err != nil {
			return SweeperConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(sweeperFile), filepath.Join("configs", sweeperFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseSweeper(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseSweeper(defaultSweeperYAML)
	if err != nil {
		return DefaultSweeperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseSweeper(data []byte) (SweeperConfig, error) {
	cfg := DefaultSweeperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SweeperConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SweeperConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySweeperPreset overrides the board selection with command line values.
// Empty arguments leave the loaded value in place.
func ApplySweeperPreset(cfg *SweeperConfig, size, difficulty string) {
	if size = strings.TrimSpace(size); size != "" {
		cfg.Board.Size = strings.ToLower(size)
	}
	if difficulty = strings.TrimSpace(difficulty); difficulty != "" {
		cfg.Board.Difficulty = strings.ToLower(difficulty)
	}
}
