package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"cli-table/internal/db"
)

// SavedConnection is a named PostgreSQL connection.
type SavedConnection struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Host     string `json:"host,omitempty" yaml:"host,omitempty" toml:"host,omitempty"`
	Port     string `json:"port,omitempty" yaml:"port,omitempty" toml:"port,omitempty"`
	User     string `json:"user,omitempty" yaml:"user,omitempty" toml:"user,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty" toml:"password,omitempty"`
	Database string `json:"database,omitempty" yaml:"database,omitempty" toml:"database,omitempty"`
	URI      string `json:"uri,omitempty" yaml:"uri,omitempty" toml:"uri,omitempty"`
}

// ConnString returns the URI, or one built from the individual fields.
func (c SavedConnection) ConnString() string {
	if c.URI != "" {
		return c.URI
	}
	return db.Params{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Database: c.Database,
	}.URI()
}

// Render holds the default width and style settings.
type Render struct {
	Style    string `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
	Align    string `json:"align,omitempty" yaml:"align,omitempty" toml:"align,omitempty"`
	Truncate int    `json:"truncate,omitempty" yaml:"truncate,omitempty" toml:"truncate,omitempty"`
	Suffix   string `json:"suffix,omitempty" yaml:"suffix,omitempty" toml:"suffix,omitempty"`
	Wrap     int    `json:"wrap,omitempty" yaml:"wrap,omitempty" toml:"wrap,omitempty"`
	Increase int    `json:"increase,omitempty" yaml:"increase,omitempty" toml:"increase,omitempty"`
	Target   string `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
	Plain    bool   `json:"plain,omitempty" yaml:"plain,omitempty" toml:"plain,omitempty"`
}

// Config is the on-disk configuration.
type Config struct {
	Connections []SavedConnection `json:"connections" yaml:"connections" toml:"connections"`
	Render      Render            `json:"render" yaml:"render" toml:"render"`

	path string
}

// DefaultRender returns the settings used when nothing is configured.
func DefaultRender() Render {
	return Render{Style: "markdown", Align: "left", Suffix: "..."}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cli-table"), nil
}

// DefaultPath returns ~/.config/cli-table/config.json.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config at path, choosing the decoder by extension (.json,
// .yaml/.yml or .toml). An empty path means DefaultPath. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return &Config{Render: DefaultRender()}, err
		}
		path = p
	}
	cfg := &Config{Render: DefaultRender(), path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", "":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string { return c.path }

// Save writes the config back to the path it was loaded from, in the same
// format.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := encode(c, filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

func encode(c *Config, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Marshal(c)
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return json.MarshalIndent(c, "", "  ")
	}
}

// Add inserts conn, replacing any connection with the same name.
func (c *Config) Add(conn SavedConnection) {
	for i, existing := range c.Connections {
		if existing.Name == conn.Name {
			c.Connections[i] = conn
			return
		}
	}
	c.Connections = append(c.Connections, conn)
}

// Delete removes the connection at index.
func (c *Config) Delete(index int) {
	if index < 0 || index >= len(c.Connections) {
		return
	}
	c.Connections = append(c.Connections[:index], c.Connections[index+1:]...)
}

// Connection looks a saved connection up by name.
func (c *Config) Connection(name string) (SavedConnection, bool) {
	for _, conn := range c.Connections {
		if conn.Name == name {
			return conn, true
		}
	}
	return SavedConnection{}, false
}
