// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsonwatch/jsonwatch/internal/log"
)

// Type is the in-memory representation of the loaded configuration.
//
// Fields:
//   - Source: absolute path of the YAML file loaded, "" when none exists.
//   - Namespace: optional subcommand keyspace used to prefer namespaced
//     lookups (e.g. "url.user-agent" before "user-agent").
//   - Data: raw key/value tree unmarshaled from YAML.
//
// Data is intentionally kept as map[string]any to allow flexible shapes.
// Callers should use the typed getters.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config holds the global, lazily-initialized configuration instance.
var Config Type

// Load reads the YAML configuration file and populates the global Config
// with the given namespace. A missing file is not an error; the watcher runs
// fine without one.
func Load(namespace string) (Type, error) {
	path, err := getConfigFile()
	if err != nil {
		Config = Type{Namespace: namespace}
		return Config, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{
		Source:    path,
		Namespace: namespace,
		Data:      data,
	}

	return Config, nil
}

// File returns the path of the loaded config file, or "" when none exists.
func File() string {
	return Config.Source
}

// GetInt returns the integer value for the given dotted key path from the
// global Config.
func GetInt(key string, defaultValue ...int) (int, error) {
	return Config.GetInt(key, defaultValue...)
}

// GetInt returns the integer value for the given dotted key path. A single
// defaultValue may be provided and is returned when the key is missing.
// YAML numbers may decode as int, int64, or float64; common cases are handled.
func (cfg Type) GetInt(key string, defaultValue ...int) (int, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, errors.New("value is not an int")
	}
}

// GetString returns the string value for the given dotted key path from the
// global Config.
func GetString(key string, defaultValue ...string) (string, error) {
	return Config.GetString(key, defaultValue...)
}

// GetString returns the string value for the given dotted key path. If the
// key is not found and a single defaultValue is provided, the default is
// returned. Returns an error if the value exists but is not a string.
func (cfg Type) GetString(key string, defaultValue ...string) (string, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}

	return s, nil
}

// GetStringSlice returns the string slice value for the given dotted key
// path from the global Config.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	return Config.GetStringSlice(key, defaultValue...)
}

// GetStringSlice returns the string slice value for the given dotted key
// path. If the key is not found and a single default slice is provided, that
// default is returned.
func (cfg Type) GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case []string:
		return v, nil
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("slice element is not a string")
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, errors.New("value is not a slice")
	}
}

// get traverses the configuration tree using a dotted key path. If Namespace
// is set, a namespaced candidate key is attempted first, then the
// unnamespaced key.
func (cfg *Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		var current interface{} = cfg.Data

		found := true
		for _, part := range strings.Split(key, ".") {
			m, ok := current.(map[string]interface{})
			if !ok {
				found = false
				break
			}
			current, ok = m[part]
			if !ok {
				found = false
				break
			}
		}

		if found {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

// getConfigFile returns the absolute path to the YAML config file. If the
// JSONWATCH_CFG_FILE environment variable is set, it is treated as the full
// path to the config file. Otherwise the OS-specific user configuration
// directory is used with the filename "jsonwatch.yaml". The file must exist
// and not be a directory.
func getConfigFile() (string, error) {
	if cfgPath := os.Getenv("JSONWATCH_CFG_FILE"); cfgPath != "" {
		fileInfo, err := os.Stat(cfgPath)
		if err != nil {
			return "", fmt.Errorf("JSONWATCH_CFG_FILE is not readable: %w", err)
		}
		if fileInfo.IsDir() {
			return "", fmt.Errorf("JSONWATCH_CFG_FILE points to a directory: %s", cfgPath)
		}
		log.Debugf("using config file from JSONWATCH_CFG_FILE: %s", cfgPath)
		return cfgPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, "jsonwatch.yaml")
	fileInfo, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if fileInfo.IsDir() {
		return "", fmt.Errorf("config path is a directory: %s", path)
	}

	return path, nil
}
