package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gicledger/ledger/internal/ledger"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "AwesomeGIC Bank", cfg.Bank.Name)
	assert.Equal(t, 365, cfg.Interest.DaysInYear)
	assert.Equal(t, "half-even", cfg.Interest.Rounding)
	assert.Equal(t, "30", cfg.Interest.PostingDay)
	require.NoError(t, cfg.Validate())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.yaml")

	cfg := Default()
	cfg.Bank.Name = "Test Bank"
	cfg.Interest.Rounding = "half-up"
	cfg.Log.Level = "debug"

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bank:\n  name: Corner Bank\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Corner Bank", cfg.Bank.Name)
	assert.Equal(t, 365, cfg.Interest.DaysInYear)
	assert.Equal(t, "30", cfg.Interest.PostingDay)
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "bank: [unclosed"},
		{"zero days", "interest:\n  days_in_year: 0\n"},
		{"bad rounding", "interest:\n  rounding: ceiling\n"},
		{"bad posting day", "interest:\n  posting_day: \"3\"\n"},
		{"bad log level", "log:\n  level: chatty\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ledger.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLedgerOptions(t *testing.T) {
	cfg := Default()
	cfg.Interest.Rounding = "half-up"
	cfg.Interest.DaysInYear = 360

	opts := cfg.LedgerOptions(nil)
	assert.Equal(t, ledger.RoundHalfUp, opts.Rounding)
	assert.Equal(t, 360, opts.DaysInYear)
	assert.Equal(t, "30", opts.PostingDay)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}
