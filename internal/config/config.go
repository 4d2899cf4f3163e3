package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	LogLevel string `json:"log_level"`
	Server   struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	} `json:"server"`
	Linkup struct {
		APIKey  string `json:"api_key"`
		BaseURL string `json:"base_url"`
	} `json:"linkup"`
}

// ListenAddr returns the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LogLevel = "info"
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Linkup.BaseURL = "https://api.linkup.so/v1"

	// Load from file if exists, otherwise write defaults
	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if os.IsNotExist(err) {
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
	}

	// Override from env (highest precedence)
	if apiKey := os.Getenv("LINKUP_API_KEY"); apiKey != "" {
		cfg.Linkup.APIKey = apiKey
	}
	if baseURL := os.Getenv("LINKUP_BASE_URL"); baseURL != "" {
		cfg.Linkup.BaseURL = baseURL
	}
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("parse PORT: %w", err)
		}
		cfg.Server.Port = p
	}

	return cfg, nil
}

// Save writes the config to path atomically via a temp file rename.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}

// ToMap converts the config into its nested map representation.
func ToMap(cfg *Config) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return m, nil
}

// ListValues returns all config values as a flat dot-keyed map,
// optionally masking secrets.
func ListValues(cfg *Config, mask bool) (map[string]any, error) {
	m, err := ToMap(cfg)
	if err != nil {
		return nil, err
	}
	flat := Flatten(m)
	if mask {
		flat = MaskSecrets(flat)
	}
	return flat, nil
}

// GetValue loads the config at path and returns the value for a
// dot-separated key.
func GetValue(path, key string) (any, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	flat, err := ListValues(cfg, false)
	if err != nil {
		return nil, err
	}
	v, ok := flat[key]
	if !ok {
		return nil, fmt.Errorf("unknown config key: %s", key)
	}
	return v, nil
}

// SetValue loads the config at path, sets a dot-separated key to the
// given string value (coercing to the field's JSON type), and saves.
func SetValue(path, key, value string) error {
	cfg, err := Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	m, err := ToMap(cfg)
	if err != nil {
		return err
	}
	flat := Flatten(m)
	old, ok := flat[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}

	switch old.(type) {
	case string:
		flat[key] = value
	case float64:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("key %s expects a number: %w", key, err)
		}
		flat[key] = n
	case bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("key %s expects a boolean: %w", key, err)
		}
		flat[key] = b
	default:
		flat[key] = value
	}

	data, err := json.Marshal(Unflatten(flat))
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	updated := &Config{}
	if err := json.Unmarshal(data, updated); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return Save(path, updated)
}
