package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gicledger/ledger/internal/ledger"
)

// DefaultPath is where the CLI looks for configuration when --config is not given.
const DefaultPath = "ledger.yaml"

// Config represents the top-level ledger.yaml configuration.
type Config struct {
	Bank     BankConfig     `yaml:"bank"`
	Interest InterestConfig `yaml:"interest"`
	Log      LogConfig      `yaml:"log"`
}

// BankConfig identifies the institution in greetings.
type BankConfig struct {
	Name string `yaml:"name"`
}

// InterestConfig controls interest accrual and statement posting.
type InterestConfig struct {
	DaysInYear int    `yaml:"days_in_year"`
	Rounding   string `yaml:"rounding"`    // "half-even" or "half-up"
	PostingDay string `yaml:"posting_day"` // "DD" suffix of the interest line
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a ledger.yaml file from disk. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Bank: BankConfig{
			Name: "AwesomeGIC Bank",
		},
		Interest: InterestConfig{
			DaysInYear: ledger.DefaultDaysInYear,
			Rounding:   string(ledger.RoundHalfEven),
			PostingDay: "30",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Interest.DaysInYear <= 0 {
		return fmt.Errorf("interest.days_in_year must be positive, got %d", c.Interest.DaysInYear)
	}
	if _, err := ledger.ParseRoundingMode(c.Interest.Rounding); err != nil {
		return fmt.Errorf("interest.rounding: %w", err)
	}
	if !isTwoDigits(c.Interest.PostingDay) {
		return fmt.Errorf("interest.posting_day must be two digits, got %q", c.Interest.PostingDay)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// LedgerOptions maps the interest settings onto ledger.Options.
func (c *Config) LedgerOptions(logger *slog.Logger) ledger.Options {
	rounding, _ := ledger.ParseRoundingMode(c.Interest.Rounding)
	return ledger.Options{
		DaysInYear: c.Interest.DaysInYear,
		Rounding:   rounding,
		PostingDay: c.Interest.PostingDay,
		Logger:     logger,
	}
}

func isTwoDigits(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}
