package config

import "github.com/ilyakaznacheev/cleanenv"

type Config struct {
	Port                int           `env:"PORT"`
	WebhookSecret       string        `env:"ELEVENLABS_WEBHOOK_SECRET"`
	RequireSignature    bool          `env:"REQUIRE_SIGNATURE" env-default:"true"`
	DefaultOrganization string        `env:"DEFAULT_ORGANIZATION" env-default:"default"`
	InterviewService    ServiceConfig `env-prefix:"INTERVIEW_"`
}

type ServiceConfig struct {
	Port int    `env:"PORT"`
	Url  string `env:"URL"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read environment variables: " + err.Error())
	}
	return &cfg
}
