package config

import "github.com/ilyakaznacheev/cleanenv"

type Config struct {
	Port             int           `env:"PORT"`
	JWTSecret        string        `env:"JWT_SECRET"`
	SsoService       ServiceConfig `env-prefix:"SSO_"`
	InterviewService ServiceConfig `env-prefix:"INTERVIEW_"`
	ElevenLabs       ElevenLabsConfig
}

type ServiceConfig struct {
	Port int    `env:"PORT"`
	Url  string `env:"URL"`
}

type ElevenLabsConfig struct {
	APIKey  string `env:"ELEVENLABS_API_KEY"`
	AgentID string `env:"ELEVENLABS_AGENT_ID"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read environment variables: " + err.Error())
	}
	return &cfg
}
