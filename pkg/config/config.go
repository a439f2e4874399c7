package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// Backend settings
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`

	// Local storage for the credential and extras stores
	DataPath string `mapstructure:"data_path"`

	// Optional logging settings
	LogLevel string `mapstructure:"log_level"`

	// Sandbox backend settings
	SandboxHost  string   `mapstructure:"sandbox_host"`
	SandboxPort  int      `mapstructure:"sandbox_port"`
	JWTSecretKey string   `mapstructure:"jwt_secret_key"`
	CORSOrigins  []string `mapstructure:"cors_origins"`

	ConfigPath string
}

const (
	DefaultBaseURL     = "http://localhost:8000/api"
	DefaultTimeout     = 30 * time.Second
	DefaultLogLevel    = "info"
	DefaultSandboxHost = "127.0.0.1"
	DefaultSandboxPort = 8000
	DefaultJWTSecret   = "trainhub-sandbox-secret"

	envPrefix = "TRAINHUB"
)

// DefaultConfigPath returns $HOME/.config/trainhub/config.yml.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yml"
	}
	return filepath.Join(dir, "trainhub", "config.yml")
}

// DefaultDataPath returns the SQLite file used for local stores.
func DefaultDataPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "trainhub.sqlite3"
	}
	return filepath.Join(dir, "trainhub", "trainhub.sqlite3")
}

// Load reads the configuration. A missing file is not an error when the
// path was not given explicitly; defaults and TRAINHUB_* variables apply.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath()
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("data_path", DefaultDataPath())
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("sandbox_host", DefaultSandboxHost)
	v.SetDefault("sandbox_port", DefaultSandboxPort)
	v.SetDefault("jwt_secret_key", DefaultJWTSecret)
	v.SetDefault("cors_origins", []string{})

	// Allow environment variable overrides
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), !explicit && errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigPath = configPath
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL: %s", c.BaseURL)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	if c.DataPath == "" {
		return fmt.Errorf("data_path is required")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error")
	}

	if c.SandboxPort <= 0 || c.SandboxPort > 65535 {
		return fmt.Errorf("sandbox_port out of range: %d", c.SandboxPort)
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("TRAINHUB_DEV_MODE") == "1"
}
