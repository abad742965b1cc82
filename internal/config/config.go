// Package config loads and saves charchat's user settings.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	pkgerrors "github.com/zhubert/charchat/internal/errors"
)

// DefaultUserName is substituted for {user} when no name is configured.
const DefaultUserName = "Chad"

// DefaultTheme is used when the config names no theme.
const DefaultTheme = "midnight"

// ValidThemes lists the theme names the UI knows how to render.
var ValidThemes = []string{"midnight", "nord", "dracula", "light"}

// Config holds the application configuration
type Config struct {
	UserName             string `json:"user_name,omitempty"`             // Substituted for {user} in greetings
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "midnight", "nord")
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Mirror toasts as desktop notifications
	ChatCharacterID      string `json:"chat_character_id,omitempty"`     // Character shown on the Messages tab

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".charchat"), nil
}

// DefaultPath returns ~/.charchat/config.json
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, pkgerrors.E(pkgerrors.Op("config.Load"), pkgerrors.KindConfig, err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults if the file does
// not exist. Saving writes back to the same path.
func LoadFrom(path string) (*Config, error) {
	const op = pkgerrors.Op("config.LoadFrom")

	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, pkgerrors.E(op, pkgerrors.KindIO, path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, pkgerrors.E(op, pkgerrors.KindConfig, path, err)
	}

	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDefaults fills empty fields. Only called from LoadFrom before the
// Config is shared.
func (c *Config) ensureDefaults() {
	if c.UserName == "" {
		c.UserName = DefaultUserName
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	const op = pkgerrors.Op("config.Validate")
	if strings.TrimSpace(c.UserName) == "" {
		return pkgerrors.E(op, pkgerrors.KindInvalid, "user name is blank")
	}
	if !IsValidTheme(c.Theme) {
		return pkgerrors.E(op, pkgerrors.KindInvalid, "unknown theme "+c.Theme)
	}
	return nil
}

// IsValidTheme reports whether name is one of ValidThemes.
func IsValidTheme(name string) bool {
	return slices.Contains(ValidThemes, name)
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	const op = pkgerrors.Op("config.Save")
	if c.filePath == "" {
		return pkgerrors.E(op, pkgerrors.KindConfig, "config has no file path")
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return pkgerrors.E(op, pkgerrors.KindIO, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return pkgerrors.E(op, pkgerrors.KindConfig, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return pkgerrors.E(op, pkgerrors.KindIO, err)
	}
	return nil
}

// Path returns the file the config is saved to
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetUserName returns the configured user name
func (c *Config) GetUserName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.UserName
}

// SetUserName sets the user name; blank names fall back to the default
func (c *Config) SetUserName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultUserName
	}
	c.UserName = name
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
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

// GetChatCharacterID returns the character id used for the chat screen
func (c *Config) GetChatCharacterID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ChatCharacterID
}

// SetChatCharacterID sets the character id used for the chat screen
func (c *Config) SetChatCharacterID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ChatCharacterID = id
}
