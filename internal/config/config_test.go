package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Guess.AllowFractions = true
	cfg.Celebration.Messages = []string{"Nice!"}
	cfg.Server.Addr = "127.0.0.1:9000"

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if !loaded.Guess.AllowFractions {
		t.Error("AllowFractions: got false, want true")
	}
	if len(loaded.Celebration.Messages) != 1 || loaded.Celebration.Messages[0] != "Nice!" {
		t.Errorf("Messages: got %v, want [Nice!]", loaded.Celebration.Messages)
	}
	if loaded.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr: got %q, want %q", loaded.Server.Addr, "127.0.0.1:9000")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Guess.AllowFractions {
		t.Error("default AllowFractions should be false")
	}
	if cfg.Celebration.Balloons != 15 {
		t.Errorf("default Balloons: got %d, want 15", cfg.Celebration.Balloons)
	}
	if len(cfg.Celebration.Messages) != len(DefaultMessages) {
		t.Errorf("default Messages: got %d, want %d", len(cfg.Celebration.Messages), len(DefaultMessages))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultConfigDoesNotShareMessages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Celebration.Messages[0] = "changed"
	if DefaultMessages[0] == "changed" {
		t.Error("DefaultConfig aliases DefaultMessages")
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	partial := `version: 1
guess:
  allow_fractions: true
`
	configPath := filepath.Join(tmpDir, ".eqtutor")
	if err := os.MkdirAll(configPath, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configPath, "config.yaml"), []byte(partial), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if !cfg.Guess.AllowFractions {
		t.Error("AllowFractions: got false, want true")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr: got %q, want default :8080", cfg.Server.Addr)
	}
	if cfg.Celebration.Balloons != 15 {
		t.Errorf("Balloons: got %d, want default 15", cfg.Celebration.Balloons)
	}
}

func TestReadConfigMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".eqtutor")
	if err := os.MkdirAll(configPath, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configPath, "config.yaml"), []byte("guess: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadConfig(tmpDir); err == nil {
		t.Error("ReadConfig should fail on malformed YAML")
	}
	if _, err := Load(tmpDir); err == nil {
		t.Error("Load should fail on malformed YAML")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr: got %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoadAppliesEnv(t *testing.T) {
	t.Setenv("EQTUTOR_ADDR", ":9999")
	t.Setenv("EQTUTOR_ALLOW_FRACTIONS", "yes")
	t.Setenv("EQTUTOR_LOG_ENABLED", "off")
	t.Setenv("EQTUTOR_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("EQTUTOR_SESSION_TTL", "not-a-number")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Server.Addr: got %q, want :9999", cfg.Server.Addr)
	}
	if !cfg.Guess.AllowFractions {
		t.Error("AllowFractions: got false, want true")
	}
	if cfg.Log.Enabled {
		t.Error("Log.Enabled: got true, want false")
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("AllowedOrigins: got %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Server.SessionTTL != 60 {
		t.Errorf("SessionTTL: got %d, want fallback 60", cfg.Server.SessionTTL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"zero ttl", func(c *Config) { c.Server.SessionTTL = 0 }},
		{"no messages", func(c *Config) { c.Celebration.Messages = nil }},
		{"negative balloons", func(c *Config) { c.Celebration.Balloons = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
