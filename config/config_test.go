package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/keypads/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"KEYPADS_INPUT", "KEYPADS_DEPTHS", "KEYPADS_WORKERS",
	"KEYPADS_CACHE_SIZE", "KEYPADS_LOG_LEVEL",
}

// clearEnv unsets every KEYPADS_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load([]string{"-input", "codes.txt"})
	require.NoError(t, err)
	assert.Equal(t, "codes.txt", cfg.Input)
	assert.Equal(t, []int{2, 25}, cfg.Depths)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, 256, cfg.CacheSize)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_PositionalInput(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load([]string{"-depths", "3", "main.txt"})
	require.NoError(t, err)
	assert.Equal(t, "main.txt", cfg.Input)
	assert.Equal(t, []int{3}, cfg.Depths)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("KEYPADS_INPUT", "env.txt")
	t.Setenv("KEYPADS_DEPTHS", "1, 2 ,3")
	t.Setenv("KEYPADS_WORKERS", "4")
	t.Setenv("KEYPADS_CACHE_SIZE", "0")
	t.Setenv("KEYPADS_LOG_LEVEL", "debug")

	cfg, err := config.Load([]string{"-input", "flag.txt", "-workers", "2"})
	require.NoError(t, err)
	assert.Equal(t, "env.txt", cfg.Input)
	assert.Equal(t, []int{1, 2, 3}, cfg.Depths)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 0, cfg.CacheSize)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("KEYPADS_INPUT=dotenv.txt\nKEYPADS_DEPTHS=25\n"), 0o600))

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "dotenv.txt", cfg.Input)
	assert.Equal(t, []int{25}, cfg.Depths)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"NoInput", nil, nil},
		{"BadDepth", []string{"-input", "x", "-depths", "2,a"}, nil},
		{"NegativeDepth", []string{"-input", "x", "-depths", "-1"}, nil},
		{"EmptyDepths", []string{"-input", "x", "-depths", " , "}, nil},
		{"BadLevel", []string{"-input", "x", "-log-level", "loud"}, nil},
		{"NegativeWorkers", []string{"-input", "x", "-workers", "-2"}, nil},
		{"BadEnvWorkers", []string{"-input", "x"}, map[string]string{"KEYPADS_WORKERS": "many"}},
		{"UnknownFlag", []string{"-nope"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(tc.args)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
