package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "jumper.yaml"

// LoadJumper loads the game configuration.
// Search order: customPath -> ~/.jumper/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default
func LoadJumper(customPath string) (JumperConfig, error) {
	// Custom path errors are reported; the fallbacks are best-effort
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if path := ResolvePath(""); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := Parse(defaultJumperYAML)
	if err != nil {
		return DefaultJumperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ResolvePath returns the config file LoadJumper would read, or "" when
// only the embedded default applies.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	candidates := []string{userConfigPath(fileName), filepath.Join("configs", fileName)}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Parse decodes YAML on top of the defaults, so partial files only
// override what they mention, then validates the result.
func Parse(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JumperConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return JumperConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a config as YAML. Recorded runs store this text so a
// replay uses exactly the same rules.
func Marshal(cfg JumperConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", "configs", filename)
}
