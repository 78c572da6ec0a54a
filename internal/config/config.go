package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the config file read when ELECTROBLAST_CONFIG is unset.
const DefaultPath = "electroblast.toml"

// Config is the full configuration shared by every binary.
type Config struct {
	Rules   Rules         `toml:"rules"`
	SSH     SSHConfig     `toml:"ssh"`
	Web     WebConfig     `toml:"web"`
	Logging LoggingConfig `toml:"logging"`
	Audio   AudioConfig   `toml:"audio"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Host    string `toml:"host"`
	Port    string `toml:"port"`
	HostKey string `toml:"host_key"`

	// Sessions without key presses are warned, then disconnected. Zero disables.
	IdleWarnSeconds    int `toml:"idle_warn_seconds"`
	IdleTimeoutSeconds int `toml:"idle_timeout_seconds"`
}

// IdleWarn returns the idle time after which a session is warned.
func (c SSHConfig) IdleWarn() time.Duration {
	return time.Duration(c.IdleWarnSeconds) * time.Second
}

// IdleTimeout returns the idle time after which a session is dropped.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSeconds) * time.Second
}

// WebConfig is the listen address of the websocket server.
type WebConfig struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

// LoggingConfig selects the zap logger level, encoding and output.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // Empty means stderr
}

// AudioConfig controls local sound effects.
type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
	SampleRate int     `toml:"sample_rate"`
}

// Load builds the configuration from defaults, the TOML file at path (when it
// exists) and environment overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: rules: %w", path, err)
	}
	return cfg, nil
}

// Path returns the config file location honoring ELECTROBLAST_CONFIG.
func Path() string {
	return GetEnv("ELECTROBLAST_CONFIG", DefaultPath)
}

func (c *Config) applyEnv() {
	c.SSH.Host = GetEnv("SSH_HOST", c.SSH.Host)
	c.SSH.Port = GetEnv("SSH_PORT", c.SSH.Port)
	c.SSH.HostKey = GetEnv("SSH_HOST_KEY", c.SSH.HostKey)
	c.Web.Host = GetEnv("WEB_HOST", c.Web.Host)
	c.Web.Port = GetEnv("WEB_PORT", c.Web.Port)
	c.Logging.Level = GetEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = GetEnv("LOG_FORMAT", c.Logging.Format)
	c.Logging.File = GetEnv("LOG_FILE", c.Logging.File)
	c.Audio.Enabled = GetEnvBool("AUDIO_ENABLED", c.Audio.Enabled)
	c.Rules.WallPushDamage = GetEnvBool("WALL_PUSH_DAMAGE", c.Rules.WallPushDamage)
}

func defaults() *Config {
	return &Config{
		Rules: DefaultRules(),
		SSH: SSHConfig{
			Host:    "::",
			Port:    "2222",
			HostKey: ".ssh/electroblast_ed25519",

			IdleWarnSeconds:    90,
			IdleTimeoutSeconds: 120,
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: "8080",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}
