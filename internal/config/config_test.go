package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRender(), cfg.Render)
	assert.Empty(t, cfg.Connections)
}

func TestLoad_Formats(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"config.json": `{"connections":[{"name":"local","host":"localhost"}],"render":{"truncate":20,"wrap":5}}`,
		"config.yaml": "connections:\n  - name: local\n    host: localhost\nrender:\n  truncate: 20\n  wrap: 5\n",
		"config.toml": "[[connections]]\nname = \"local\"\nhost = \"localhost\"\n\n[render]\ntruncate = 20\nwrap = 5\n",
	}

	for name, body := range files {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, []byte(body), 0600))

			cfg, err := Load(path)
			require.NoError(t, err)

			conn, ok := cfg.Connection("local")
			require.True(t, ok)
			assert.Equal(t, "localhost", conn.Host)
			assert.Equal(t, 20, cfg.Render.Truncate)
			assert.Equal(t, 5, cfg.Render.Wrap)
			// Unset fields keep their defaults.
			assert.Equal(t, "...", cfg.Render.Suffix)
			assert.Equal(t, "markdown", cfg.Render.Style)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0600))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	ini := filepath.Join(dir, "config.ini")
	require.NoError(t, os.WriteFile(ini, []byte("x=1"), 0600))
	_, err = Load(ini)
	assert.ErrorContains(t, err, "unsupported config format")
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"c.json", "c.yaml", "c.toml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg, err := Load(path)
			require.NoError(t, err)
			cfg.Add(SavedConnection{Name: "prod", URI: "postgres://u@h/db"})
			cfg.Render.Increase = 200
			require.NoError(t, cfg.Save())

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

			again, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg.Connections, again.Connections)
			assert.Equal(t, 200, again.Render.Increase)
		})
	}
}

func TestAddDelete(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.Add(SavedConnection{Name: "a", Host: "h1"})
	cfg.Add(SavedConnection{Name: "b"})
	cfg.Add(SavedConnection{Name: "a", Host: "h2"})

	require.Len(t, cfg.Connections, 2)
	assert.Equal(t, "h2", cfg.Connections[0].Host)

	cfg.Delete(5)
	cfg.Delete(0)
	require.Len(t, cfg.Connections, 1)
	assert.Equal(t, "b", cfg.Connections[0].Name)
}

func TestSavedConnection_ConnString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "postgres://x@y/z", SavedConnection{URI: "postgres://x@y/z"}.ConnString())
	assert.Contains(t, SavedConnection{Host: "db", User: "u", Database: "shop"}.ConnString(), "@db:5432/shop")
}
