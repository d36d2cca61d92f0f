package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.NotNil(t, cfg)

		wd, err := os.Getwd()
		require.NoError(t, err)

		require.Equal(t, ":8080", cfg.Server.Address)
		require.Equal(t, wd, cfg.Project.Root)
		require.Equal(t, "key.properties", cfg.Project.Properties)
		require.Equal(t, filepath.Join(wd, "key.properties"), cfg.PropertiesPath())
		require.False(t, cfg.Release.Strict)
		require.True(t, cfg.Release.Minify)
		require.True(t, cfg.Release.Shrink)
		require.Equal(t, "com.harupan.harupan2", cfg.Android.ApplicationID)
		require.Equal(t, 24, cfg.Android.MinSdk)
		require.Equal(t, "17", cfg.Android.JavaVersion)
	})

	t.Run("file", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte("project:\n  root: "+root+"\nrelease:\n  strict: true\nandroid:\n  minsdk: 26\n"), 0o600)
		require.NoError(t, err)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, root, cfg.Project.Root)
		require.True(t, cfg.Release.Strict)
		require.Equal(t, 26, cfg.Android.MinSdk)
		require.Equal(t, "key.properties", cfg.Project.Properties)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("SIGNING_CONNECTOR_SERVER_ADDRESS", "127.0.0.1:9090")
		t.Setenv("SIGNING_CONNECTOR_PROJECT_PROPERTIES", "android/key.properties")
		t.Setenv("SIGNING_CONNECTOR_RELEASE_STRICT", "true")

		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, "127.0.0.1:9090", cfg.Server.Address)
		require.Equal(t, "android/key.properties", cfg.Project.Properties)
		require.True(t, cfg.Release.Strict)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("properties outside project root", func(t *testing.T) {
		t.Setenv("SIGNING_CONNECTOR_PROJECT_PROPERTIES", "../key.properties")

		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("invalid min sdk", func(t *testing.T) {
		t.Setenv("SIGNING_CONNECTOR_ANDROID_MINSDK", "0")

		_, err := Load("")
		require.Error(t, err)
	})
}
