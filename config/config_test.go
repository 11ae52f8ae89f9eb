package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minegrid/board"
	"github.com/katalvlaran/minegrid/config"
)

func parsedFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("minegrid", pflag.ContinueOnError)
	config.Flags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minegrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestLoad_Defaults resolves the reference board without any input.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, board.DefaultConfig(), cfg.Board())
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

// TestLoad_File reads a YAML file named by --config.
func TestLoad_File(t *testing.T) {
	path := writeYAML(t, `
size: 9
difficulty: 3
seed: 1234
log:
  level: debug
  file: /tmp/minegrid.log
`)
	cfg, err := config.Load(parsedFlags(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, board.Config{Size: 9, DensityNum: 1, DensityDen: 5}, cfg.Board())
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/minegrid.log", cfg.Log.File)
}

// TestLoad_Precedence checks flag > env > file.
func TestLoad_Precedence(t *testing.T) {
	path := writeYAML(t, "size: 9\nseed: 1\n")
	t.Setenv("MINEGRID_SIZE", "11")
	t.Setenv("MINEGRID_SEED", "2")

	cfg, err := config.Load(parsedFlags(t, "--config", path, "--size=13"))
	require.NoError(t, err)
	assert.Equal(t, 13, cfg.Size)
	assert.Equal(t, uint64(2), cfg.Seed)
}

// TestLoad_ExplicitDensity lets numerator/denominator override difficulty.
func TestLoad_ExplicitDensity(t *testing.T) {
	cfg, err := config.Load(parsedFlags(t, "--density-numerator=2", "--density-denominator=9", "--difficulty=5"))
	require.NoError(t, err)
	assert.Equal(t, board.Config{Size: 20, DensityNum: 2, DensityDen: 9}, cfg.Board())
}

// TestLoad_Errors covers invalid board parameters, log levels and files.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(parsedFlags(t, "--size=0"))
	assert.ErrorIs(t, err, board.ErrInvalidSize)

	// difficulty equal to the offset leaves a zero denominator
	_, err = config.Load(parsedFlags(t, "--difficulty=8"))
	assert.ErrorIs(t, err, board.ErrInvalidDensity)

	_, err = config.Load(parsedFlags(t, "--log-level=chatty"))
	assert.ErrorIs(t, err, config.ErrLogLevel)

	_, err = config.Load(parsedFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}
