package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/marcuscaisey/dartcomplete/config"
)

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, config.Filename)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
log_level: debug
color: never
libraries:
  - lib/util.dart
  - /abs/other.dart
core_library: core.dart
show_details: true
`)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, zapcore.DebugLevel, cfg.Level())
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.True(t, cfg.ShowDetails)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, map[string]string{
		"lib/util.dart":   filepath.Join(dir, "lib", "util.dart"),
		"/abs/other.dart": "/abs/other.dart",
	}, cfg.LibraryPaths())
	assert.Equal(t, filepath.Join(dir, "core.dart"), cfg.CoreLibraryPath())
}

func TestLoadFileUsesDefaultsForMissingFields(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "show_details: true\n")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, zapcore.WarnLevel, cfg.Level())
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Empty(t, cfg.CoreLibraryPath())
	assert.Empty(t, cfg.LibraryPaths())
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.ColorAuto, cfg.Color)
}

func TestLoadFileReportsEveryInvalidField(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
log_level: loud
color: sometimes
libraries: [""]
`)

	_, err := config.LoadFile(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "log_level:")
	assert.ErrorContains(t, err, "color:")
	assert.ErrorContains(t, err, "libraries[0]:")
}

func TestLoadFileRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "colour: never\n")

	_, err := config.LoadFile(path)
	assert.ErrorContains(t, err, "colour")
}

func TestLoadFindsConfigInParent(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log_level: error\n")
	subDir := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(subDir, 0755))

	cfg, err := config.Load(subDir)
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, cfg.Level())
	assert.Equal(t, dir, cfg.Dir)
}

func TestLoadWithoutConfigReturnsDefault(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Find(dir)
	if err == nil {
		t.Skip("a parent of the temporary directory contains a config file")
	}
	require.ErrorIs(t, err, config.ErrNotFound)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	want := config.Default()
	want.Dir = dir
	assert.Equal(t, want, cfg)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.LogLevel = "nope"
	cfg.Color = "rainbow"
	assert.Len(t, multierr.Errors(cfg.Validate()), 2)
}
