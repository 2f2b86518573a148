package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("STREAMUI_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "streamui.log", cfg.Log.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.Log.Dispatch)
	require.Equal(t, 80, cfg.UI.Width)
	require.Equal(t, 24, cfg.UI.Height)
	require.Equal(t, "I am a tooltip", cfg.UI.TooltipText)
	require.Equal(t, "hover me", cfg.UI.TargetText)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[log]
level = "debug"
dispatch = true

[ui]
title = "demo"
tooltip_text = "from file"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("STREAMUI_CONFIG", path)
	t.Setenv("STREAMUI_UI_WIDTH", "120")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Log.Dispatch)
	require.Equal(t, "demo", cfg.UI.Title)
	require.Equal(t, "from file", cfg.UI.TooltipText)
	require.Equal(t, 120, cfg.UI.Width)
	require.Equal(t, 24, cfg.UI.Height)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log\nlevel = "), 0o644))
	t.Setenv("STREAMUI_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("STREAMUI_CONFIG", path)

	want := Config{
		Log: LogConfig{Path: "/tmp/s.log", Level: "warn", Dispatch: true},
		UI:  UIConfig{Title: "saved", Width: 100, Height: 30, TooltipText: "tip", TargetText: "target"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEnsureFileWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streamui", "config.toml")
	t.Setenv("STREAMUI_CONFIG", path)

	defaults, err := Load()
	require.NoError(t, err)
	created, err := EnsureFile(defaults)
	require.NoError(t, err)
	require.True(t, created)
	require.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[ui]")
	require.Contains(t, string(data), `tooltip_text = "I am a tooltip"`)

	reloaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, defaults, reloaded)

	// an existing file is left alone
	created, err = EnsureFile(Config{UI: UIConfig{Title: "other"}})
	require.NoError(t, err)
	require.False(t, created)
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}
