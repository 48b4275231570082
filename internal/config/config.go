// Package config handles reading and writing .eqtutor/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for .eqtutor/config.yaml.
type Config struct {
	Version     int               `yaml:"version"`
	Guess       GuessConfig       `yaml:"guess"`
	Celebration CelebrationConfig `yaml:"celebration"`
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
}

// GuessConfig controls what a user may type as a guess.
type GuessConfig struct {
	AllowFractions bool `yaml:"allow_fractions"` // accept "2.5" and "5/2"
}

// CelebrationConfig controls the feedback shown for a correct guess.
type CelebrationConfig struct {
	Messages []string `yaml:"messages"`
	Balloons int      `yaml:"balloons"`
}

// ServerConfig controls the HTTP shell.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	SessionTTL     int      `yaml:"session_ttl"` // minutes
}

// LogConfig controls the JSONL event log.
type LogConfig struct {
	Enabled bool `yaml:"enabled"`
}

const configDir = ".eqtutor"
const configFile = "config.yaml"

// Dir returns the .eqtutor directory inside the project root.
func Dir(root string) string {
	return filepath.Join(root, configDir)
}

// ReadConfig reads .eqtutor/config.yaml from the given directory.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// WriteConfig writes cfg to .eqtutor/config.yaml in the given directory.
// Creates the .eqtutor/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Load reads the config in dir, falling back to defaults when the file does
// not exist, then applies environment overrides and validates the result.
func Load(dir string) (*Config, error) {
	cfg, err := ReadConfig(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = DefaultConfig()
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DefaultMessages are the congratulations shown after a correct guess.
var DefaultMessages = []string{
	"Excellent work! 🏆",
	"You're a math genius! 🧠",
	"Perfect! Keep it up 💪",
	"Incredible! Nothing can stop you 🚀",
	"Correct answer! You're fantastic 🌟",
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Guess: GuessConfig{
			AllowFractions: false,
		},
		Celebration: CelebrationConfig{
			Messages: append([]string(nil), DefaultMessages...),
			Balloons: 15,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
			SessionTTL:     60,
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}

// ApplyEnv overrides fields from EQTUTOR_* environment variables.
// Unparseable values are ignored.
func (c *Config) ApplyEnv() {
	c.Server.Addr = getEnv("EQTUTOR_ADDR", c.Server.Addr)
	c.Server.SessionTTL = getEnvInt("EQTUTOR_SESSION_TTL", c.Server.SessionTTL)
	c.Guess.AllowFractions = getEnvBool("EQTUTOR_ALLOW_FRACTIONS", c.Guess.AllowFractions)
	c.Log.Enabled = getEnvBool("EQTUTOR_LOG_ENABLED", c.Log.Enabled)
	if origins, ok := os.LookupEnv("EQTUTOR_ALLOWED_ORIGINS"); ok {
		var list []string
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				list = append(list, o)
			}
		}
		c.Server.AllowedOrigins = list
	}
}

// Validate checks that required fields are usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr cannot be empty")
	}
	if c.Server.SessionTTL <= 0 {
		return fmt.Errorf("server.session_ttl must be > 0")
	}
	if len(c.Celebration.Messages) == 0 {
		return fmt.Errorf("celebration.messages cannot be empty")
	}
	if c.Celebration.Balloons < 0 {
		return fmt.Errorf("celebration.balloons cannot be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
