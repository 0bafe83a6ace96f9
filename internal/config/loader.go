package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "paperplane.yaml"

// LoadPaperPlane loads the game configuration.
// Search order: customPath -> ~/.paperplane/configs/paperplane.yaml -> ./configs/paperplane.yaml -> embedded default.
// Only a failing customPath is an error; other sources fall through silently.
func LoadPaperPlane(customPath string) (PaperPlaneConfig, error) {
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := parseFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultPaperPlaneYAML)
	if err != nil {
		return DefaultPaperPlaneConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so partial files
// only override the keys they mention.
func Parse(data []byte) (PaperPlaneConfig, error) {
	cfg := DefaultPaperPlaneConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseFile(path string) (PaperPlaneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PaperPlaneConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paperplane", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *PaperPlaneConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.PointsPerLevel = PointsPerLevelForPreset(preset)
	}
}
