package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultDataDir   = "/opt/deskdev/data"
	DatabaseFileName = "users.db"
	ConfigFileName   = "config.json"
	DefaultLogLevel  = "info"
)

// Config holds runtime settings for the setup command.
//
// DatabasePath and ConfigPath are optional; when empty they are derived from
// DataDir (see DatabaseFile and ConfigFile).
type Config struct {
	DataDir      string `env:"DESKDEV_DATA_DIR"`
	DatabasePath string `env:"DESKDEV_DB_PATH"`
	ConfigPath   string `env:"DESKDEV_CONFIG_PATH"`
	LogLevel     string `env:"DESKDEV_LOG_LEVEL"`
}

// LoadDefaults populates c with the fixed install locations.
func (c *Config) LoadDefaults() {
	c.DataDir = DefaultDataDir
	c.DatabasePath = ""
	c.ConfigPath = ""
	c.LogLevel = DefaultLogLevel
}

// DatabaseFile is the SQLite file to provision.
func (c *Config) DatabaseFile() string {
	if c.DatabasePath != "" {
		return c.DatabasePath
	}
	return filepath.Join(c.DataDir, DatabaseFileName)
}

// ConfigFile is the JSON document to write.
func (c *Config) ConfigFile() string {
	if c.ConfigPath != "" {
		return c.ConfigPath
	}
	return filepath.Join(c.DataDir, ConfigFileName)
}

// LoadConfig constructs a Config from the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load is LoadConfig over an explicit argument list (without the program name).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
