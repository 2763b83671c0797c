// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/relevant-args/src/render"
	"github.com/H0llyW00dzZ/relevant-args/src/request"
	"gopkg.in/yaml.v3"
)

// configEnvVar names the environment variable holding the configuration file path.
const configEnvVar = "MCP_RELEVANT_ARGS_CONFIG_FILE"

// Config represents the MCP server configuration structure.
//
// The configuration can be loaded from a JSON or YAML file given with --config or the
// MCP_RELEVANT_ARGS_CONFIG_FILE environment variable, with defaults applied for any
// missing values.
type Config struct {
	// Defaults are applied to extract_relevant_args calls that omit the matching argument.
	Defaults struct {
		// BinName is matched when a call gives no bin_name.
		BinName string `json:"binName,omitempty" yaml:"binName,omitempty"`
		// ErrorIfNotFound is used when a call gives no error_if_not_found.
		ErrorIfNotFound bool `json:"errorIfNotFound" yaml:"errorIfNotFound"`
		// Format is the output format used when a call gives no format.
		Format string `json:"format" yaml:"format"`
	} `json:"defaults" yaml:"defaults"`
}

// unmarshalConfig unmarshals configuration data based on the specified format.
// Config files share the extension rules of request files, see [request.DetectFormat].
func unmarshalConfig(data []byte, config *Config, format request.Format) error {
	switch format {
	case request.FormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() *Config {
	config := &Config{}
	config.Defaults.Format = string(render.FormatJSON)
	return config
}

// loadConfig loads MCP server configuration from a JSON or YAML file or applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. MCP_RELEVANT_ARGS_CONFIG_FILE is checked if configPath is empty
//  3. Config file values override defaults (if a file is given)
//
// An unknown default format falls back to json.
func loadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath == "" {
		configPath = os.Getenv(configEnvVar)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshalConfig(data, config, request.DetectFormat(configPath)); err != nil {
			return nil, err
		}

		if f, err := render.ParseFormat(config.Defaults.Format); err != nil {
			config.Defaults.Format = string(render.FormatJSON)
		} else {
			config.Defaults.Format = string(f)
		}
	}

	return config, nil
}
