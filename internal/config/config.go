// Package config handles the XDG configuration directory, the settings file
// and the stored API token.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "kanbanist"

	// SettingsFile is the settings filename.
	SettingsFile = "config.yaml"

	// TokenFile is the stored API token filename.
	TokenFile = "token.json"

	// TokenEnv overrides the stored token when set.
	TokenEnv = "KANBANIST_TOKEN"
)

// ErrNoToken is returned when neither the token file nor TokenEnv is present.
var ErrNoToken = errors.New("no API token")

// Settings are the user-editable options read from config.yaml.
type Settings struct {
	// APIURL overrides the remote service endpoint.
	APIURL string `yaml:"api_url"`

	// DefaultProject names the project quick-added items go to.
	DefaultProject string `yaml:"default_project"`

	// DateLists is the number of upcoming days shown as date lists.
	DateLists int `yaml:"date_lists"`

	// Timeout bounds each remote call.
	Timeout time.Duration `yaml:"timeout"`

	// LogFile, when set, receives logs instead of stderr.
	LogFile string `yaml:"log_file"`

	// DateMoveUpdatesLabels also sends the label set when an item is moved
	// into a date list.
	DateMoveUpdatesLabels bool `yaml:"date_move_updates_labels"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	Settings Settings
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/kanbanist or $HOME/.config/kanbanist.
// A missing settings file is not an error.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// TokenPath returns the path to the stored token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

func (c *Config) loadSettings() error {
	data, err := os.ReadFile(c.SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}
	if err := yaml.Unmarshal(data, &c.Settings); err != nil {
		return fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}
	if c.Settings.DateLists < 0 {
		return fmt.Errorf("invalid %s: date_lists must not be negative", SettingsFile)
	}
	if c.Settings.LogFile != "" && !filepath.IsAbs(c.Settings.LogFile) {
		c.Settings.LogFile = filepath.Join(c.Dir, c.Settings.LogFile)
	}
	return nil
}

// Token returns the API token: TokenEnv if set, else the access token in token.json.
func (c *Config) Token() (string, error) {
	if tok := strings.TrimSpace(os.Getenv(TokenEnv)); tok != "" {
		return tok, nil
	}

	data, err := os.ReadFile(c.TokenPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to read %s: %w", TokenFile, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return "", fmt.Errorf("invalid %s: %w", TokenFile, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("invalid %s: empty access_token", TokenFile)
	}
	return token.AccessToken, nil
}

// HasToken checks if a token is available.
func (c *Config) HasToken() bool {
	_, err := c.Token()
	return err == nil
}
