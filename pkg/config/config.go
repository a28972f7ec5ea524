package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the word trie host
type Config struct {
	WordList WordListConfig `mapstructure:"wordlist"`
	Trie     TrieConfig     `mapstructure:"trie"`
	Search   SearchConfig   `mapstructure:"search"`
	Log      LogConfig      `mapstructure:"log"`
}

// WordListConfig points at the newline delimited list of keys
type WordListConfig struct {
	Path string `mapstructure:"path"`
}

// TrieConfig holds the trie construction options
type TrieConfig struct {
	CaseInsensitive bool `mapstructure:"case_insensitive"`
}

// SearchConfig holds the search defaults
type SearchConfig struct {
	Limit int `mapstructure:"limit"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from an optional file and WORDTRIE_* environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("wordtrie")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("wordlist.path", "list.txt")
	v.SetDefault("trie.case_insensitive", true)
	v.SetDefault("search.limit", 0) // unlimited
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.WordList.Path == "" {
		return fmt.Errorf("word list path cannot be empty")
	}
	if c.Search.Limit < 0 {
		return fmt.Errorf("invalid search limit: %d", c.Search.Limit)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel returns the zerolog level named by the configuration
func (c *LogConfig) ParseLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return level, nil
}
