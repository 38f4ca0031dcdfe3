package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/smmhub"
	ConfigFileName    = "smmhub.yml"
)

// Config holds all smmhub runtime settings.
type Config struct {
	// BindAddress is the address the HTTP server listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP server port
	Port int `yaml:"port" json:"port"`

	// TokenTTLMinutes is the identity token lifetime in minutes
	TokenTTLMinutes int `yaml:"token_ttl_minutes" json:"token_ttl_minutes"`

	// BotAPIBaseURL is the bot-identity API used to verify bot tokens
	BotAPIBaseURL string `yaml:"bot_api_base_url" json:"bot_api_base_url"`

	// BotVerifyTimeoutSeconds bounds the bot verification call
	BotVerifyTimeoutSeconds int `yaml:"bot_verify_timeout_seconds" json:"bot_verify_timeout_seconds"`

	// BcryptCost is the password hashing cost (0 selects the default)
	BcryptCost int `yaml:"bcrypt_cost" json:"bcrypt_cost"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		BindAddress:             "0.0.0.0",
		Port:                    8000,
		TokenTTLMinutes:         480,
		BotAPIBaseURL:           "https://api.telegram.org",
		BotVerifyTimeoutSeconds: 5,
		BcryptCost:              0,
		sources:                 make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("SMM_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "token_ttl_minutes",
		"bot_api_base_url", "bot_verify_timeout_seconds", "bcrypt_cost",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.TokenTTLMinutes != 0 {
		c.TokenTTLMinutes = file.TokenTTLMinutes
		c.sources["token_ttl_minutes"] = "file"
	}
	if file.BotAPIBaseURL != "" {
		c.BotAPIBaseURL = file.BotAPIBaseURL
		c.sources["bot_api_base_url"] = "file"
	}
	if file.BotVerifyTimeoutSeconds != 0 {
		c.BotVerifyTimeoutSeconds = file.BotVerifyTimeoutSeconds
		c.sources["bot_verify_timeout_seconds"] = "file"
	}
	if file.BcryptCost != 0 {
		c.BcryptCost = file.BcryptCost
		c.sources["bcrypt_cost"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("SMM_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("SMM_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("SMM_TOKEN_TTL_MINUTES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTLMinutes = i
			c.sources["token_ttl_minutes"] = "environment"
		}
	}
	if val := os.Getenv("SMM_BOT_API_BASE_URL"); val != "" {
		c.BotAPIBaseURL = val
		c.sources["bot_api_base_url"] = "environment"
	}
	if val := os.Getenv("SMM_BOT_VERIFY_TIMEOUT_SECONDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.BotVerifyTimeoutSeconds = i
			c.sources["bot_verify_timeout_seconds"] = "environment"
		}
	}
	if val := os.Getenv("SMM_BCRYPT_COST"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.BcryptCost = i
			c.sources["bcrypt_cost"] = "environment"
		}
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// TokenTTL returns the identity token lifetime as a duration
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// BotVerifyTimeout returns the bot verification timeout as a duration
func (c *Config) BotVerifyTimeout() time.Duration {
	return time.Duration(c.BotVerifyTimeoutSeconds) * time.Second
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.TokenTTLMinutes <= 0 {
		return fmt.Errorf("invalid token_ttl_minutes: %d", c.TokenTTLMinutes)
	}
	if c.BotVerifyTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid bot_verify_timeout_seconds: %d", c.BotVerifyTimeoutSeconds)
	}
	if !strings.HasPrefix(c.BotAPIBaseURL, "http://") && !strings.HasPrefix(c.BotAPIBaseURL, "https://") {
		return fmt.Errorf("invalid bot_api_base_url: %s", c.BotAPIBaseURL)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "token_ttl_minutes", Value: strconv.Itoa(c.TokenTTLMinutes), Source: c.Source("token_ttl_minutes")},
		{Name: "bot_api_base_url", Value: c.BotAPIBaseURL, Source: c.Source("bot_api_base_url")},
		{Name: "bot_verify_timeout_seconds", Value: strconv.Itoa(c.BotVerifyTimeoutSeconds), Source: c.Source("bot_verify_timeout_seconds")},
		{Name: "bcrypt_cost", Value: strconv.Itoa(c.BcryptCost), Source: c.Source("bcrypt_cost")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
