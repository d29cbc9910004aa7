package paths

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCWD pins the working directory seen by the resolvers.
func fakeCWD(t *testing.T, dir string) {
	t.Helper()
	prev := getwd
	getwd = func() (string, error) { return dir, nil }
	t.Cleanup(func() { getwd = prev })
}

func TestResolveConfigDir(t *testing.T) {
	cwd := t.TempDir()
	fakeCWD(t, cwd)

	tests := []struct {
		name string
		flag string
		env  string
		want string
	}{
		{"flag wins", "/tmp/flag-config", "/tmp/env-config", "/tmp/flag-config"},
		{"env when no flag", "", "/tmp/env-config", "/tmp/env-config"},
		{"default under cwd", "", "", filepath.Join(cwd, ".planboard")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.env)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	cwd := t.TempDir()
	fakeCWD(t, cwd)

	tests := []struct {
		name   string
		flag   string
		config string
		env    string
		want   string
	}{
		{"flag wins", "/tmp/flag-data", "/tmp/cfg-data", "/tmp/env-data", "/tmp/flag-data"},
		{"config beats env", "", "/tmp/cfg-data", "/tmp/env-data", "/tmp/cfg-data"},
		{"env when nothing else", "", "", "/tmp/env-data", "/tmp/env-data"},
		{"default under cwd", "", "", "", filepath.Join(cwd, ".planboard-db")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.env)
			got, err := ResolveDataDir(tt.flag, tt.config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveOutDir(t *testing.T) {
	t.Run("defaults under data dir", func(t *testing.T) {
		t.Setenv(EnvOutDir, "")
		got, err := ResolveOutDir("", "", "/tmp/data")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/data/out", got)
	})

	t.Run("env overrides default", func(t *testing.T) {
		t.Setenv(EnvOutDir, "/tmp/reports")
		got, err := ResolveOutDir("", "", "/tmp/data")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/reports", got)
	})

	t.Run("config beats env", func(t *testing.T) {
		t.Setenv(EnvOutDir, "/tmp/reports")
		got, err := ResolveOutDir("", "/tmp/cfg-out", "/tmp/data")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/cfg-out", got)
	})
}

func TestRelativePathsBecomeAbsolute(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	got, err := ResolveDataDir("rel/data", "")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "data", filepath.Base(got))
}

func TestGetwdFailure(t *testing.T) {
	prev := getwd
	getwd = func() (string, error) { return "", errors.New("cwd gone") }
	t.Cleanup(func() { getwd = prev })
	t.Setenv(EnvConfigDir, "")

	_, err := ResolveConfigDir("")
	assert.Error(t, err)
}
