package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Default values for the settings file
const (
	defaultHiddenDirectory    = "Hide"
	defaultAutoAdvanceSeconds = 60.0
	minCacheSize              = 1
	maxCacheSize              = 64
	configFileName            = ".slideshow.json"
)

// validateKeybindings validates the keybindings configuration
func validateKeybindings(keybindings map[string][]string) error {
	// Check for valid key formats and detect conflicts
	keyToAction := make(map[string]string)
	validKeys := getValidKeyNames()

	for action, keys := range keybindings {
		if _, known := actionDescriptions()[action]; !known {
			return fmt.Errorf("unknown action '%s'", action)
		}
		for _, keyStr := range keys {
			if err := validateKeyString(keyStr, validKeys); err != nil {
				return fmt.Errorf("invalid key '%s' for action '%s': %v", keyStr, action, err)
			}

			if existingAction, exists := keyToAction[keyStr]; exists {
				return fmt.Errorf("key conflict: '%s' is bound to both '%s' and '%s'", keyStr, existingAction, action)
			}
			keyToAction[keyStr] = action
		}
	}

	return nil
}

// validateKeyString validates a single key string format
func validateKeyString(keyStr string, validKeys map[string]bool) error {
	parts := strings.Split(keyStr, "+")
	keyName := parts[len(parts)-1]
	if keyName == "" {
		return fmt.Errorf("empty key string")
	}
	if !validKeys[keyName] {
		return fmt.Errorf("unknown key: %s", keyName)
	}

	for i := 0; i < len(parts)-1; i++ {
		modifier := strings.ToLower(parts[i])
		if modifier != "shift" && modifier != "ctrl" && modifier != "alt" {
			return fmt.Errorf("unknown modifier: %s", parts[i])
		}
	}

	return nil
}

// getValidKeyNames returns the set of key names a binding may use
func getValidKeyNames() map[string]bool {
	names := make(map[string]bool)
	for name := range getKeyMapping() {
		names[name] = true
	}
	return names
}

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

// Config is the slideshow's settings record. It is read once at startup.
type Config struct {
	SearchPaths              []string            `json:"search_paths"`
	IgnoredExtensionSuffixes []string            `json:"ignored_extension_suffixes"`
	HiddenDirectoryName      string              `json:"hidden_directory"`
	FavoritesDirectoryPath   string              `json:"favorites_directory"`
	AutoAdvanceSeconds       float64             `json:"auto_advance_seconds"`
	Recursive                bool                `json:"recursive"`
	Order                    int                 `json:"order"`
	ExcludePatterns          []string            `json:"exclude_patterns"`
	CacheSize                int                 `json:"cache_size"`
	Keybindings              map[string][]string `json:"keybindings"`
	Mousebindings            map[string][]string `json:"mousebindings"`
	MouseSettings            MouseSettings       `json:"mouse_settings"`
}

// AutoAdvanceInterval returns the delay between automatic advances
func (c Config) AutoAdvanceInterval() time.Duration {
	return time.Duration(c.AutoAdvanceSeconds * float64(time.Second))
}

// EnumerateOptions returns the enumeration settings of the config
func (c Config) EnumerateOptions() EnumerateOptions {
	return EnumerateOptions{
		IgnoredSuffixes:     c.IgnoredExtensionSuffixes,
		Recursive:           c.Recursive,
		HiddenDirectoryName: c.HiddenDirectoryName,
		ExcludePatterns:     c.ExcludePatterns,
	}
}

func defaultConfig() Config {
	return Config{
		SearchPaths:              []string{},
		IgnoredExtensionSuffixes: []string{},
		HiddenDirectoryName:      defaultHiddenDirectory,
		FavoritesDirectoryPath:   "", // Starring is a configuration error until set
		AutoAdvanceSeconds:       defaultAutoAdvanceSeconds,
		Recursive:                true,
		Order:                    OrderShuffle,
		ExcludePatterns:          []string{},
		CacheSize:                defaultCacheSize,
		Keybindings:              GetDefaultKeybindings(),
		Mousebindings:            GetDefaultMousebindings(),
		MouseSettings:            GetDefaultMouseSettings(),
	}
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(homeDir, configFileName)
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := defaultConfig()

	result := ConfigLoadResult{
		Config:   config,
		HasError: false,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	// Keybindings are replaced wholesale by the file, missing actions are
	// filled in below
	config.Keybindings = nil
	config.Mousebindings = nil
	if err := json.Unmarshal(data, &config); err != nil {
		logrus.WithError(err).Warnf("Invalid config file %s, using defaults", configPath)
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	if strings.TrimSpace(config.HiddenDirectoryName) == "" ||
		strings.ContainsAny(config.HiddenDirectoryName, `/\`) {
		config.HiddenDirectoryName = defaultHiddenDirectory
	}

	// Validate auto-advance delay (must be positive)
	if config.AutoAdvanceSeconds <= 0 {
		config.AutoAdvanceSeconds = defaultAutoAdvanceSeconds
	}

	if config.Order < OrderShuffle || config.Order > OrderEntryOrder {
		config.Order = OrderShuffle
	}

	// Validate cache size (minimum 1, maximum 64)
	if config.CacheSize < minCacheSize {
		config.CacheSize = defaultCacheSize
	} else if config.CacheSize > maxCacheSize {
		config.CacheSize = maxCacheSize
	}

	if config.FavoritesDirectoryPath != "" && !filepath.IsAbs(config.FavoritesDirectoryPath) {
		result.Status = "Warning"
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("favorites_directory %q is not absolute", config.FavoritesDirectoryPath))
	}

	config.Keybindings = fillBindings(config.Keybindings, GetDefaultKeybindings())
	if err := validateKeybindings(config.Keybindings); err != nil {
		logrus.WithError(err).Warn("Invalid keybindings detected, using defaults")
		config.Keybindings = GetDefaultKeybindings()
		result.Status = "Warning"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
	}
	config.Mousebindings = fillBindings(config.Mousebindings, GetDefaultMousebindings())

	// Update the result with the final config
	result.Config = config
	return result
}

// fillBindings adds default bindings for every action the map leaves out
func fillBindings(bindings, defaults map[string][]string) map[string][]string {
	if bindings == nil {
		return defaults
	}
	for action, defaultKeys := range defaults {
		if _, exists := bindings[action]; !exists {
			bindings[action] = defaultKeys
		}
	}
	return bindings
}
