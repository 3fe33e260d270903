package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lsangers/codingame/model"
)

// Policy names accepted in the config file.
const (
	PolicyHold  = "hold"
	PolicyRules = "rules"
)

// Config is the optional agent configuration. Every field has a usable default,
// so the agent also runs with no file at all.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Policy   string `yaml:"policy"`
	// OpponentBase locates the enemy base. The setup line only carries our
	// own base, so without this the opponent base stays unlocated.
	OpponentBase *model.Point `yaml:"opponent_base"`
	Rules        []RuleDef    `yaml:"rules"`
}

// RuleDef is one condition → action pair for the rules policy. An empty rule
// list with the rules policy selects the built-in defaults.
type RuleDef struct {
	Name     string `yaml:"name"`
	Priority int    `yaml:"priority"`
	When     string `yaml:"when"`
	Do       string `yaml:"do"`
}

// Default returns the hold-everything configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Policy:   PolicyHold,
	}
}

// Load reads a YAML file on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the agent cannot act on. Action names are checked
// by the rules package when the engine is built.
func (c *Config) Validate() error {
	c.Policy = strings.ToLower(strings.TrimSpace(c.Policy))
	switch c.Policy {
	case "":
		c.Policy = PolicyHold
	case PolicyHold, PolicyRules:
	default:
		return fmt.Errorf("unknown policy %q", c.Policy)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	for i, r := range c.Rules {
		if r.Name == "" {
			return fmt.Errorf("rule %d: missing name", i)
		}
		if strings.TrimSpace(r.When) == "" {
			return fmt.Errorf("rule %q: missing condition", r.Name)
		}
		if r.Do == "" {
			return fmt.Errorf("rule %q: missing action", r.Name)
		}
	}
	return nil
}

// ParseLevel maps a config/flag level name to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
