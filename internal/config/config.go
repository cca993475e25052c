package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the photodex configuration shared by the indexer, the
// searcher, and the local daemon.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	AWS     AWSConfig     `yaml:"aws"`
	Search  SearchConfig  `yaml:"search"`
	Lex     LexConfig     `yaml:"lex"`
	Presign PresignConfig `yaml:"presign"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds local daemon HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// AWSConfig holds shared AWS client settings.
type AWSConfig struct {
	Region string `yaml:"region"`
}

// SearchConfig holds the photo index connection settings.
type SearchConfig struct {
	Host    string `yaml:"host"`    // e.g. "search-photos-xxxx.us-east-1.aoss.amazonaws.com"
	Index   string `yaml:"index"`   // default: photos
	Service string `yaml:"service"` // "aoss" for serverless, "es" for managed domains
}

// LexConfig holds the intent bot settings used by the searcher.
type LexConfig struct {
	BotID      string `yaml:"bot_id"`
	BotAliasID string `yaml:"bot_alias_id"`
	LocaleID   string `yaml:"locale_id"` // default: en_US
}

// PresignConfig holds presigned URL settings.
type PresignConfig struct {
	TTLSec int `yaml:"ttl_sec"` // default: 300
}

// TTL returns the presign lifetime as a duration.
func (c PresignConfig) TTL() time.Duration {
	return time.Duration(c.TTLSec) * time.Second
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
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

// FromEnv builds configuration from environment variables only. This is the
// path the Lambda entrypoints take; the variable names match the function
// environment of the deployed stack.
func FromEnv() (Config, error) {
	ttl := 0
	if raw := os.Getenv("PRESIGN_TTL_SEC"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PRESIGN_TTL_SEC %q: %w", raw, err)
		}
		ttl = v
	}

	cfg := Config{
		AWS: AWSConfig{
			Region: firstNonEmpty(os.Getenv("LEX_REGION"), os.Getenv("AWS_REGION")),
		},
		Search: SearchConfig{
			Host:    os.Getenv("AOSS_HOST"),
			Index:   os.Getenv("AOSS_INDEX"),
			Service: os.Getenv("AOSS_SERVICE"),
		},
		Lex: LexConfig{
			BotID:      os.Getenv("LEX_BOT_ID"),
			BotAliasID: os.Getenv("LEX_BOT_ALIAS_ID"),
			LocaleID:   os.Getenv("LEX_LOCALE_ID"),
		},
		Presign: PresignConfig{TTLSec: ttl},
		Logging: LoggingConfig{Level: os.Getenv("LOG_LEVEL")},
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
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
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.AWS.Region == "" {
		c.AWS.Region = "us-east-1"
	}
	if c.Search.Index == "" {
		c.Search.Index = "photos"
	}
	if c.Search.Service == "" {
		c.Search.Service = "aoss"
	}
	if c.Lex.LocaleID == "" {
		c.Lex.LocaleID = "en_US"
	}
	if c.Presign.TTLSec <= 0 {
		c.Presign.TTLSec = 300
	}
}

// Validate checks the configuration for correctness. Lex settings are
// validated separately because only the searcher needs them.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Search.Host == "" {
		return fmt.Errorf("search.host is required")
	}
	switch c.Search.Service {
	case "aoss", "es":
		// ok
	default:
		return fmt.Errorf("search.service must be \"aoss\" or \"es\", got %q", c.Search.Service)
	}
	return nil
}

// Validate checks the intent-bot settings required by the searcher.
func (c *LexConfig) Validate() error {
	if c.BotID == "" {
		return fmt.Errorf("lex.bot_id is required")
	}
	if c.BotAliasID == "" {
		return fmt.Errorf("lex.bot_alias_id is required")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
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
