package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

// Config is the full service configuration: a yaml file for everything
// shareable plus environment variables for secrets. Secrets have no
// compiled-in default; startup fails without them.
type Config struct {
	Public  Public
	private Private
}

type Public struct {
	ListenAddr               string   `yaml:"listen_addr"`
	Store                    string   `yaml:"store"` // "pg" or "memory"
	Pg                       Pg       `yaml:"pg"`
	TokenTTLHours            int      `yaml:"token_ttl_hours"`
	ModerationURL            string   `yaml:"moderation_url"`
	ModerationTimeoutSeconds int      `yaml:"moderation_timeout_seconds"`
	AllowedOrigins           []string `yaml:"allowed_origins"`
	LogLevel                 string   `yaml:"log_level"`
	LogJSON                  bool     `yaml:"log_json"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	TokenSecret string
	BadWordsKey string
}

func (c *Config) TokenSecret() string { return c.private.TokenSecret }
func (c *Config) BadWordsKey() string { return c.private.BadWordsKey }

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Public.TokenTTLHours) * time.Hour
}

func (c *Config) ModerationTimeout() time.Duration {
	return time.Duration(c.Public.ModerationTimeoutSeconds) * time.Second
}

// Load reads public.yaml from configFolder and the required secrets from
// the environment.
func Load(configFolder string) (*Config, error) {
	var public Public
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil {
		return nil, err
	}

	if public.ListenAddr == "" {
		public.ListenAddr = ":8080"
	}
	if public.Store == "" {
		public.Store = "pg"
	}
	if public.TokenTTLHours == 0 {
		public.TokenTTLHours = 24
	}
	if public.ModerationTimeoutSeconds == 0 {
		public.ModerationTimeoutSeconds = 10
	}
	if public.ModerationURL == "" {
		return nil, fmt.Errorf("config: moderation_url is required")
	}

	tokenSecret, err := requireEnv("TOKEN_SECRET")
	if err != nil {
		return nil, err
	}
	badWordsKey, err := requireEnv("BADWORDS_API_KEY")
	if err != nil {
		return nil, err
	}

	return &Config{
		Public:  public,
		private: Private{TokenSecret: tokenSecret, BadWordsKey: badWordsKey},
	}, nil
}

func loadPath(configPath string, output interface{}) error {
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("config: parsing %s: %w", configPath, err)
	}
	return nil
}

func requireEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("config: required environment variable %s is not set", name)
	}
	return value, nil
}
