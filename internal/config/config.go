package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/facetlist/internal/domain"
)

// Config holds the facetlist API configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	List     ListConfig     `yaml:"list"`
	Forms    FormsConfig    `yaml:"forms"`
	Logging  LoggingConfig  `yaml:"logging"`
	Sources  []SourceConfig `yaml:"sources"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver           string   `yaml:"driver"` // redis, valkey (default: redis)
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	DialTimeoutSec   int      `yaml:"dial_timeout_sec"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
	RebuildIndexes   bool     `yaml:"rebuild_indexes"` // drop and recreate source indexes on start
}

// ListConfig holds list execution settings.
type ListConfig struct {
	PageSize       int `yaml:"page_size"`
	EditSampleSize int `yaml:"edit_sample_size"` // rows read to count facet values in the editor
}

// FormsConfig holds form round trip settings.
type FormsConfig struct {
	CacheTTLSec int `yaml:"cache_ttl_sec"`
}

// SourceConfig describes one list source: the indexed hashes of an
// (entity type, bundle) pair and the facets exposed on them.
type SourceConfig struct {
	SearchID   string        `yaml:"search_id"`
	EntityType string        `yaml:"entity_type"`
	Bundle     string        `yaml:"bundle"`
	KeyPrefix  string        `yaml:"key_prefix"`
	Fields     []FieldConfig `yaml:"fields"`
	Facets     []FacetConfig `yaml:"facets"`
}

// FieldConfig is an indexed field of a source.
type FieldConfig struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"` // tag, numeric, text
	Sortable bool   `yaml:"sortable"`
}

// FacetConfig is a facet of a source.
type FacetConfig struct {
	ID         string            `yaml:"id"`
	Label      string            `yaml:"label"`
	Field      string            `yaml:"field"`
	Widget     string            `yaml:"widget"` // select, multiselect, daterange
	Labels     map[string]string `yaml:"labels"`
	Processors []ProcessorConfig `yaml:"processors"`
}

// ProcessorConfig attaches a processor to a facet.
type ProcessorConfig struct {
	ID     string   `yaml:"id"`
	Stages []string `yaml:"stages"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse decodes YAML, expands ${VAR} references, applies defaults and validates.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "redis"
	}
	if c.Database.DialTimeoutSec <= 0 {
		c.Database.DialTimeoutSec = 5
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	defaults := domain.DefaultListConfig()
	if c.List.PageSize <= 0 {
		c.List.PageSize = defaults.PageSize
	}
	if c.List.EditSampleSize <= 0 {
		c.List.EditSampleSize = defaults.EditSampleSize
	}
	if c.Forms.CacheTTLSec <= 0 {
		c.Forms.CacheTTLSec = defaults.FormCacheTTL
	}
	for i := range c.Sources {
		for j := range c.Sources[i].Facets {
			f := &c.Sources[i].Facets[j]
			if f.Field == "" {
				f.Field = f.ID
			}
			if f.Widget == "" {
				f.Widget = "select"
			}
		}
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	switch c.Database.Driver {
	case "redis", "valkey":
	default:
		return fmt.Errorf("database.driver must be \"redis\" or \"valkey\", got %q", c.Database.Driver)
	}

	seen := make(map[string]bool, len(c.Sources))
	for i, s := range c.Sources {
		if s.SearchID == "" {
			return fmt.Errorf("sources[%d].search_id is required", i)
		}
		if seen[s.SearchID] {
			return fmt.Errorf("sources[%d].search_id %q is duplicated", i, s.SearchID)
		}
		seen[s.SearchID] = true
		if s.EntityType == "" || s.Bundle == "" {
			return fmt.Errorf("sources.%s: entity_type and bundle are required", s.SearchID)
		}
		for j, f := range s.Fields {
			switch f.Type {
			case "tag", "numeric", "text":
			default:
				return fmt.Errorf("sources.%s.fields[%d].type must be tag, numeric or text, got %q",
					s.SearchID, j, f.Type)
			}
		}
		for j, f := range s.Facets {
			if f.ID == "" {
				return fmt.Errorf("sources.%s.facets[%d].id is required", s.SearchID, j)
			}
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
