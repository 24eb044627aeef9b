package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "blocks.yaml"

// LoadBlocks loads the blocks configuration.
// Search order: customPath -> ~/.blocks/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
//
// Values missing from a file keep their defaults. A custom path that cannot
// be read or parsed is an error; other locations are skipped silently.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	cfg, _ := loadFrom(defaultBlocksYAML)

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if next, ok := tryFile(userCfgPath, cfg); ok {
			return next, nil
		}
	}

	// Try local configs directory
	if next, ok := tryFile(filepath.Join("configs", ConfigFile), cfg); ok {
		return next, nil
	}

	return cfg, nil
}

// loadFrom parses the embedded defaults, falling back to hardcoded values.
func loadFrom(data []byte) (BlocksConfig, bool) {
	cfg := DefaultBlocksConfig()
	parsed := cfg
	parsed.Palette = nil
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg, false
	}
	return parsed, true
}

func tryFile(path string, base BlocksConfig) (BlocksConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	cfg.Palette = clonePalette(base.Palette)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

func clonePalette(p map[string]string) map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocks", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg BlocksConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
