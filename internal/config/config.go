// internal/config/config.go
//
// Runtime configuration.
//
// Precedence (highest first): environment variables, optional YAML config
// file, defaults. A .env file in the working directory is loaded into the
// environment first, without overriding variables that are already set.
//
// Environment variables map to keys by upper-casing and replacing "." with
// "_" (words.random_url → WORDS_RANDOM_URL).

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port         string      `mapstructure:"port" validate:"required,numeric"`
	LogLevel     string      `mapstructure:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat    string      `mapstructure:"log_format" validate:"oneof=json console"`
	ClientOrigin string      `mapstructure:"client_origin" validate:"required,url"`
	Production   bool        `mapstructure:"production"`
	DBPath       string      `mapstructure:"db_path" validate:"required"`
	CookieName   string      `mapstructure:"cookie_name" validate:"required"`
	DailySalt    string      `mapstructure:"daily_salt" validate:"required"`
	JWT          JWTConfig   `mapstructure:"jwt"`
	Words        WordsConfig `mapstructure:"words"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret" validate:"required"`
	ExpiresDays int    `mapstructure:"expires_days" validate:"gte=1,lte=365"`
}

type WordsConfig struct {
	// Source selects where round words come from: "api" or "list".
	Source        string        `mapstructure:"source" validate:"oneof=api list"`
	RandomURL     string        `mapstructure:"random_url" validate:"required,url"`
	DictionaryURL string        `mapstructure:"dictionary_url" validate:"required,url"`
	SynonymURL    string        `mapstructure:"synonym_url" validate:"required,url"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Retries       uint          `mapstructure:"retries" validate:"lte=10"`
	ListFile      string        `mapstructure:"list_file"`
}

// TokenTTL is the auth token lifetime.
func (c JWTConfig) TokenTTL() time.Duration {
	return time.Duration(c.ExpiresDays) * 24 * time.Hour
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5175")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("client_origin", "http://localhost:5173")
	v.SetDefault("production", false)
	v.SetDefault("db_path", "./data/scramble.db")
	v.SetDefault("cookie_name", "scramble_token")
	v.SetDefault("daily_salt", "local_dev_salt")
	v.SetDefault("jwt.secret", "dev_secret_change_me")
	v.SetDefault("jwt.expires_days", 14)
	v.SetDefault("words.source", "api")
	v.SetDefault("words.random_url", "https://random-word-api.herokuapp.com/word")
	v.SetDefault("words.dictionary_url", "https://api.dictionaryapi.dev/api/v2/entries/en")
	v.SetDefault("words.synonym_url", "https://api.datamuse.com/words")
	v.SetDefault("words.timeout", 5*time.Second)
	v.SetDefault("words.retries", 0)
	v.SetDefault("words.list_file", "")
}

// Load reads configuration. configFile may be empty, in which case
// ./scramble.yaml and $HOME/.config/scramble/scramble.yaml are tried.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("scramble")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/scramble")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
