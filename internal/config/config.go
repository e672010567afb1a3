// internal/config/config.go
//
// This package handles configuration and the .emis directory structure.
// Every project directory the dashboard runs from gets a .emis/ folder with
// a config.yaml and a logs/ directory.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EmisDir is the name of the directory we create in each project
	EmisDir = ".emis"

	defaultAPIURL            = "http://localhost:5000/v1"
	defaultAPITimeout        = 30 * time.Second
	defaultRequestsPerSecond = 5.0
)

const defaultProjectConfigYAML = `# emis dashboard configuration
version: 1

# EMIS API the dashboard reads from. The token may also come from
# EMIS_API_TOKEN in the environment or a .env file next to .emis/.
api:
  base_url: http://localhost:5000/v1
  timeout: 30s
  requests_per_second: 5

# Local HTTP endpoint exposing dashboard state, inbound actions and metrics.
inspect:
  enabled: true
  host: 127.0.0.1
  port: 8766

alerts:
  # When false, STORE_ALERTS_AS_MAP_POINTS leaves the map points untouched.
  store_map_points: false
`

// APIConfig describes the upstream EMIS API.
type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	Token             string        `yaml:"token,omitempty"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
}

// InspectConfig captures the optional inspect server block.
type InspectConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Host    string `yaml:"host,omitempty"`
	Port    int    `yaml:"port,omitempty"`
}

// AlertsConfig holds alert slice switches.
type AlertsConfig struct {
	StoreMapPoints bool `yaml:"store_map_points"`
}

// ProjectConfig models .emis/config.yaml.
type ProjectConfig struct {
	Version int           `yaml:"version"`
	API     APIConfig     `yaml:"api"`
	Inspect InspectConfig `yaml:"inspect"`
	Alerts  AlertsConfig  `yaml:"alerts"`
}

// Config holds the runtime configuration for the dashboard.
type Config struct {
	// ProjectDir is the directory the dashboard was started from
	ProjectDir string

	// EmisProjectDir is ProjectDir/.emis
	EmisProjectDir string

	Project ProjectConfig
}

// InitEmisDir creates the .emis directory structure in the given project
// directory and writes a default config.yaml when none exists.
//
// Structure created:
// .emis/
// ├── config.yaml
// └── logs/       <- diagnostics and the action journal
func InitEmisDir(projectDir string) error {
	emisDir := filepath.Join(projectDir, EmisDir)
	if err := os.MkdirAll(filepath.Join(emisDir, "logs"), 0755); err != nil {
		return err
	}
	return ensureProjectConfig(filepath.Join(emisDir, "config.yaml"))
}

// NewConfig creates a new Config populated from .env, config.yaml and the
// environment, in that order of increasing precedence.
func NewConfig(projectDir string) (*Config, error) {
	if err := loadDotEnv(filepath.Join(projectDir, ".env")); err != nil {
		return nil, err
	}
	cfg := &Config{
		ProjectDir:     projectDir,
		EmisProjectDir: filepath.Join(projectDir, EmisDir),
		Project:        defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	cfg.Project.applyEnvOverrides()
	if err := cfg.Project.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.EmisProjectDir, "logs")
}

// JournalPath returns the path of the dispatched-action journal
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "actions.log")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.EmisProjectDir, "config.yaml")
}

// API returns the upstream API settings.
func (c *Config) API() APIConfig {
	return c.Project.API
}

// StoreMapPoints reports whether stored map points replace the map layer.
func (c *Config) StoreMapPoints() bool {
	return c.Project.Alerts.StoreMapPoints
}

// SetStoreMapPoints updates the alerts switch and persists it.
func (c *Config) SetStoreMapPoints(enabled bool) error {
	c.Project.Alerts.StoreMapPoints = enabled
	return c.saveProjectConfig()
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed := defaultProjectConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		API: APIConfig{
			BaseURL:           defaultAPIURL,
			Timeout:           defaultAPITimeout,
			RequestsPerSecond: defaultRequestsPerSecond,
		},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.API.BaseURL) == "" {
		pc.API.BaseURL = defaultAPIURL
	}
	if pc.API.Timeout <= 0 {
		pc.API.Timeout = defaultAPITimeout
	}
	if pc.API.RequestsPerSecond <= 0 {
		pc.API.RequestsPerSecond = defaultRequestsPerSecond
	}
}

func (pc *ProjectConfig) normalize() {
	pc.API.BaseURL = strings.TrimRight(strings.TrimSpace(pc.API.BaseURL), "/")
	pc.API.Token = strings.TrimSpace(pc.API.Token)
	pc.Inspect.Host = strings.TrimSpace(pc.Inspect.Host)
}

func (pc *ProjectConfig) applyEnvOverrides() {
	if value := strings.TrimSpace(os.Getenv("EMIS_API_URL")); value != "" {
		pc.API.BaseURL = value
	}
	if value := strings.TrimSpace(os.Getenv("EMIS_API_TOKEN")); value != "" {
		pc.API.Token = value
	}
	if value := strings.TrimSpace(os.Getenv("EMIS_API_TIMEOUT")); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			pc.API.Timeout = parsed
		}
	}
	if value := strings.TrimSpace(os.Getenv("EMIS_STORE_MAP_POINTS")); value != "" {
		if enabled, err := strconv.ParseBool(value); err == nil {
			pc.Alerts.StoreMapPoints = enabled
		}
	}
	pc.normalize()
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	parsed, err := url.Parse(pc.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("api.base_url must use http or https")
	}
	if parsed.Host == "" {
		return fmt.Errorf("api.base_url must include a host")
	}
	if pc.Inspect.Port < 0 || pc.Inspect.Port > 65535 {
		return fmt.Errorf("inspect.port must be between 0 and 65535")
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}

func (c *Config) saveProjectConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Project.applyDefaults()
	c.Project.normalize()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.EmisProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure emis dir: %w", err)
	}
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}
