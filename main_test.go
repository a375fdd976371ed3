package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cli-table/internal/config"
	"cli-table/internal/grid"
	"cli-table/internal/table"
	"cli-table/internal/width"
)

const greetingsCSV = "name,address\nHello World!!!,3.3.22.2\nGuten Morgen,1.1.1.1\n"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSettingsFrom(t *testing.T) {
	t.Parallel()

	s, err := settingsFrom(config.Render{
		Style:    "ascii",
		Align:    "right",
		Target:   "col:1",
		Suffix:   "~",
		Truncate: 10,
		Wrap:     4,
		Increase: 150,
		Plain:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, grid.ASCII.Name, s.Style.Name)
	assert.Equal(t, lipgloss.Right, s.Align)
	assert.Equal(t, grid.Column(1), s.Target)
	assert.Equal(t, "~", s.Suffix)
	assert.Equal(t, 10, s.Truncate)
	assert.Equal(t, 4, s.Wrap)
	assert.Equal(t, 150, s.Increase)
	assert.Equal(t, width.Plain{}, s.Measurer)

	s, err = settingsFrom(config.DefaultRender())
	require.NoError(t, err)
	assert.Equal(t, table.DefaultSettings().Style.Name, s.Style.Name)
	assert.Nil(t, s.Measurer)
}

func TestSettingsFrom_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]config.Render{
		"style":    {Style: "fancy"},
		"align":    {Align: "diagonal"},
		"target":   {Target: "row:x"},
		"negative": {Truncate: -1},
		"increase": {Increase: -50},
	}
	for name, r := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := settingsFrom(r)
			assert.Error(t, err)
		})
	}
}

func TestRender_Stdin(t *testing.T) {
	t.Parallel()

	cfg := filepath.Join(t.TempDir(), "missing.json")
	out, err := run(t, greetingsCSV, "render", "--config", cfg, "--truncate", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "Hello...")
	assert.Contains(t, out, "3.3.2...")
	assert.NotContains(t, out, "World")
	assert.Contains(t, out, "name")
}

func TestRender_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "config.yaml", "render:\n  truncate: 5\n  style: ascii\n")

	out, err := run(t, greetingsCSV, "render", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Hello...")
	assert.True(t, strings.HasPrefix(out, "+"), "ascii style draws a top rule:\n%s", out)

	out, err = run(t, greetingsCSV, "render", "--config", cfg, "--truncate", "0", "--style", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello World!!!")
	assert.True(t, strings.HasPrefix(out, "|"), "markdown style has no top rule:\n%s", out)
}

func TestRender_File(t *testing.T) {
	t.Parallel()

	csvPath := writeConfig(t, "greetings.csv", greetingsCSV)
	cfg := filepath.Join(t.TempDir(), "missing.json")
	out, err := run(t, "", "render", csvPath, "--config", cfg, "--wrap", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	i := slices.IndexFunc(lines, func(l string) bool { return strings.Contains(l, "Hello") })
	require.GreaterOrEqual(t, i, 0, out)
	require.Greater(t, len(lines), i+2, out)
	assert.Contains(t, lines[i+1], " Worl")
	assert.Contains(t, lines[i+2], "d!!!")
	assert.Contains(t, out, "addre")
}

func TestRender_BadFlags(t *testing.T) {
	t.Parallel()

	cfg := filepath.Join(t.TempDir(), "missing.json")
	_, err := run(t, greetingsCSV, "render", "--config", cfg, "--style", "fancy")
	assert.ErrorContains(t, err, "unknown style")

	_, err = run(t, greetingsCSV, "render", "--config", cfg, "--increase=-5")
	assert.ErrorIs(t, err, width.ErrInvalidPercent)
}

func TestDemo_Stages(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, demo(&out, table.DefaultSettings()))

	titles := []string{"Original table", "Truncated table", "Wrapped table", "Widen table"}
	sections := make(map[string][]string)
	text := out.String()
	for i, title := range titles {
		start := strings.Index(text, title+"\n")
		require.GreaterOrEqual(t, start, 0, title)
		body := text[start+len(title)+1:]
		if i+1 < len(titles) {
			body = body[:strings.Index(body, titles[i+1])]
		}
		sections[title] = strings.Split(strings.TrimRight(body, "\n"), "\n")
	}

	// Nothing in the data is wider than 20 columns.
	assert.Equal(t, sections["Original table"], sections["Truncated table"])
	assert.Contains(t, sections["Original table"][0], "Hello World!!!")

	wrapped := sections["Wrapped table"]
	assert.Contains(t, wrapped[0], "Hello")
	assert.Contains(t, wrapped[1], " Worl")

	widened := sections["Widen table"]
	assert.Equal(t, len(wrapped), len(widened))
	assert.Equal(t, 2*lipgloss.Width(wrapped[0]), lipgloss.Width(widened[0]))
}

func TestQuery_RequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg := filepath.Join(t.TempDir(), "missing.json")
	_, err := run(t, "", "query", "--config", cfg, "select 1")
	assert.ErrorContains(t, err, "no database selected")

	_, err = run(t, "", "tables", "--config", cfg, "--conn", "prod")
	assert.ErrorContains(t, err, `no saved connection named "prod"`)
}

func TestConn_AddListRemove(t *testing.T) {
	t.Parallel()

	cfg := filepath.Join(t.TempDir(), "config.toml")

	out, err := run(t, "", "conn", "add", "local", "--config", cfg,
		"--host", "localhost", "--user", "app", "--password", "secret", "--database", "shop")
	require.NoError(t, err)
	assert.Contains(t, out, "saved local to "+cfg)

	_, err = run(t, "", "conn", "add", "prod", "--config", cfg, "--uri", "postgres://app:pw@prod/shop")
	require.NoError(t, err)

	loaded, err := config.Load(cfg)
	require.NoError(t, err)
	require.Len(t, loaded.Connections, 2)
	conn, ok := loaded.Connection("local")
	require.True(t, ok)
	assert.Equal(t, "secret", conn.Password)

	out, err = run(t, "", "conn", "list", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "local")
	assert.Contains(t, out, "prod")
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "pw@")

	_, err = run(t, "", "conn", "rm", "local", "--config", cfg)
	require.NoError(t, err)
	loaded, err = config.Load(cfg)
	require.NoError(t, err)
	require.Len(t, loaded.Connections, 1)
	assert.Equal(t, "prod", loaded.Connections[0].Name)

	_, err = run(t, "", "conn", "rm", "local", "--config", cfg)
	assert.ErrorContains(t, err, `no saved connection named "local"`)

	_, err = run(t, "", "conn", "add", "empty", "--config", cfg)
	assert.ErrorContains(t, err, "--uri or --host")
}

func TestConnectionRows_HidePasswords(t *testing.T) {
	t.Parallel()

	rows := connectionRows([]config.SavedConnection{
		{Name: "a", Host: "h", Port: "5433", User: "u", Password: "p", Database: "d"},
		{Name: "b", URI: "postgres://u:p@h/d"},
	})
	assert.Equal(t, [][]string{
		{"a", "h", "5433", "u", "d", ""},
		{"b", "", "", "", "", "yes"},
	}, rows)
}
