package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/deskdev/deskdev-setup/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DataDir      string `json:"data_dir"`
	DatabasePath string `json:"database_path"`
	ConfigPath   string `json:"config_path"`
	LogLevel     string `json:"log_level"`
}

// parseJson overlays cfg with the non-empty values of the JSON file named by
// -c/-config. Without either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read settings file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse settings file %s: %w", jsonConfigFile, err)
	}

	overlay(&cfg.DataDir, jc.DataDir)
	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.ConfigPath, jc.ConfigPath)
	overlay(&cfg.LogLevel, jc.LogLevel)
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
