// Package config loads runtime settings for deskdev-setup.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// With no sources at all the tool provisions /opt/deskdev/data/users.db and
// /opt/deskdev/data/config.json.
//
// Supported flags
//
//	-d string          data directory holding users.db and config.json
//	-db string         database file (overrides the one derived from -d)
//	-out string        configuration file (overrides the one derived from -d)
//	-log-level string  debug, info, warn or error
//
// Environment
//
//	DESKDEV_DATA_DIR, DESKDEV_DB_PATH, DESKDEV_CONFIG_PATH, DESKDEV_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "data_dir": "/srv/deskdev",
//	  "database_path": "",
//	  "config_path": "",
//	  "log_level": "info"
//	}
//
// Empty JSON values leave the earlier value in place.
package config
