package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port     int `env:"PORT"`
	Database DatabaseConfig
	OpenAI   OpenAIConfig
}

type DatabaseConfig struct {
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Name     string `env:"DB_NAME"`
	Port     int    `env:"DB_PORT" env-default:"5432"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
}

type OpenAIConfig struct {
	APIKey          string        `env:"OPENAI_API_KEY"`
	Model           string        `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
	MaxTokens       int           `env:"OPENAI_MAX_TOKENS" env-default:"2000"`
	TranscriptLimit int           `env:"TRANSCRIPT_LIMIT" env-default:"24000"`
	RequestTimeout  time.Duration `env:"OPENAI_TIMEOUT" env-default:"30s"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read environment variables: " + err.Error())
	}

	return &cfg
}
