package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Port           string        `yaml:"port"`
	LogLevel       string        `yaml:"log_level"`
	LogJSON        bool          `yaml:"log_json"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	Moderation     Moderation    `yaml:"moderation"`
}

// Moderation optionally overrides the built-in keyword lists.
// Empty slices keep the defaults.
type Moderation struct {
	FeedKeywords []string `yaml:"feed_keywords"`
	ChatKeywords []string `yaml:"chat_keywords"`
}

type Private struct {
	TokenKey string `yaml:"token_key"`
}

func (s *Config) TokenKey() string {
	return s.private.TokenKey
}

func (s *Config) SessionTTL() time.Duration {
	return s.Public.SessionTTL
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
