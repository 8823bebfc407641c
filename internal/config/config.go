package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/existflow/ironproject/internal/model"
	"gopkg.in/yaml.v3"
)

// Output formats for submitted projects
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds user preferences
type Config struct {
	OutputFormat      string        `yaml:"output_format" json:"output_format"`             // json or yaml
	DefaultLabelColor string        `yaml:"default_label_color" json:"default_label_color"` // Color for labels added without one
	Labels            []model.Label `yaml:"labels" json:"labels"`                           // Label catalog every draft starts with

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging
}

// Dir returns ~/.ironproject
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ironproject"), nil
}

// Path returns ~/.ironproject/config.yaml
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	logPath := ""
	if dir, err := Dir(); err == nil {
		logPath = filepath.Join(dir, "logs", "ironproject.log")
	}

	cfg := &Config{
		OutputFormat:      FormatJSON,
		DefaultLabelColor: model.DefaultLabelColor,
		Labels:            model.DefaultLabels(),
		LogLevel:          "INFO",
		LogFile:           logPath,
	}
	cfg.applyEnv()
	return cfg
}

// applyEnv overrides settings with IRONPROJECT_* environment variables
func (c *Config) applyEnv() {
	c.OutputFormat = getEnv("IRONPROJECT_FORMAT", c.OutputFormat)
	c.LogLevel = getEnv("IRONPROJECT_LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("IRONPROJECT_LOG_FILE", c.LogFile)
	if v := os.Getenv("IRONPROJECT_LOG_CONSOLE"); v != "" {
		c.LogConsole = v == "true"
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Load loads config from ~/.ironproject/config.yaml
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads config from path, returning defaults if the file does not exist
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the output format and the label catalog
func (c *Config) Validate() error {
	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	if c.OutputFormat == "" {
		c.OutputFormat = FormatJSON
	}
	if c.OutputFormat != FormatJSON && c.OutputFormat != FormatYAML {
		return fmt.Errorf("output_format must be %q or %q, got %q", FormatJSON, FormatYAML, c.OutputFormat)
	}

	seen := make(map[int]bool, len(c.Labels))
	for _, l := range c.Labels {
		if l.ID <= 0 {
			return fmt.Errorf("label %q: id must be positive", l.Name)
		}
		if seen[l.ID] {
			return fmt.Errorf("label %q: duplicate id %d", l.Name, l.ID)
		}
		if strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("label %d: name is required", l.ID)
		}
		seen[l.ID] = true
	}
	return nil
}

// AddLabel appends a label to the catalog with the next free id
func (c *Config) AddLabel(name, colorTag string) (model.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Label{}, fmt.Errorf("label name is required")
	}
	for _, l := range c.Labels {
		if strings.EqualFold(l.Name, name) {
			return model.Label{}, fmt.Errorf("label %q already exists (id %d)", l.Name, l.ID)
		}
	}
	if colorTag == "" {
		colorTag = c.DefaultLabelColor
	}

	maxID := 0
	for _, l := range c.Labels {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	label := model.Label{ID: maxID + 1, Name: name, ColorTag: colorTag}
	c.Labels = append(c.Labels, label)
	return label, nil
}

// Save saves config to ~/.ironproject/config.yaml
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo saves config to path, creating its directory if needed
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
