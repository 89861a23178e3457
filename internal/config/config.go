package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Config holds the application configuration
type Config struct {
	Theme                string   `json:"theme,omitempty"`                  // UI theme name (e.g., "dark-purple", "nord")
	NotificationsEnabled bool     `json:"notifications_enabled,omitempty"`  // Desktop notifications for hidden-panel attention
	Debug                bool     `json:"debug,omitempty"`                  // Verbose logging to the debug log file
	AllowedPanelTypes    []string `json:"allowed_panel_types,omitempty"`    // Panel types this install may open (empty = all)
	Capabilities         []string `json:"capabilities,omitempty"`           // Backend capabilities available to panels
	WelcomeShown         bool     `json:"welcome_shown,omitempty"`          // Whether welcome modal has been shown
	LastSeenVersion      string   `json:"last_seen_version,omitempty"`      // Last version user has seen changelog for

	mu       sync.RWMutex
	filePath string
}

// Dir returns the path to the config directory
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mosaic"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	cfg := &Config{
		NotificationsEnabled: true,
		AllowedPanelTypes:    []string{},
		Capabilities:         []string{},
		filePath:             path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Ensure slices are initialized (not nil) after unmarshaling.
	// This must happen before Validate() since Validate() only reads.
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized ensures all slices are initialized (not nil).
//
// Thread-safety: NOT thread-safe, must only be called during
// single-threaded initialization from Load().
func (c *Config) ensureInitialized() {
	if c.AllowedPanelTypes == nil {
		c.AllowedPanelTypes = []string{}
	}
	if c.Capabilities == nil {
		c.Capabilities = []string{}
	}
}

func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	for _, t := range c.AllowedPanelTypes {
		if t == "" {
			return fmt.Errorf("empty panel type in allowed_panel_types")
		}
		if seen[t] {
			return fmt.Errorf("duplicate allowed panel type: %s", t)
		}
		seen[t] = true
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// GetTheme returns the configured theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetDebug returns whether debug logging is enabled
func (c *Config) GetDebug() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Debug
}

// SetDebug sets whether debug logging is enabled
func (c *Config) SetDebug(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Debug = enabled
}

// GetAllowedPanelTypes returns a copy of the allowed panel type list
func (c *Config) GetAllowedPanelTypes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.AllowedPanelTypes))
	copy(out, c.AllowedPanelTypes)
	return out
}

// GetCapabilities returns a copy of the capability list
func (c *Config) GetCapabilities() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.Capabilities))
	copy(out, c.Capabilities)
	return out
}

// HasSeenWelcome returns whether the welcome modal has been shown
func (c *Config) HasSeenWelcome() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WelcomeShown
}

// MarkWelcomeShown marks the welcome modal as shown
func (c *Config) MarkWelcomeShown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WelcomeShown = true
}

// GetLastSeenVersion returns the last version the user saw
func (c *Config) GetLastSeenVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastSeenVersion
}

// SetLastSeenVersion records the last version the user saw
func (c *Config) SetLastSeenVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSeenVersion = version
}
