package config

import "github.com/caarlos0/env/v10"

// Config centralizes service configuration.
type Config struct {
	HTTPPort               string `env:"HTTP_PORT" envDefault:"8080"`
	JWTSecret              string `env:"JWT_SECRET,required"`
	DatabaseURL            string `env:"DATABASE_URL"`
	RedisAddr              string `env:"REDIS_ADDR"`
	RedisPassword          string `env:"REDIS_PASSWORD"`
	RedisDB                int    `env:"REDIS_DB" envDefault:"0"`
	SessionIdleTTLMinutes  int    `env:"SESSION_IDLE_TTL_MINUTES" envDefault:"45"`
	DefaultAttributeSet    string `env:"DEFAULT_ATTRIBUTE_SET" envDefault:"general_fit"`
	SessionStartsPerMinute int    `env:"SESSION_STARTS_PER_MINUTE" envDefault:"10"`
	LLMAPIKey              string `env:"LLM_API_KEY"`
	LLMBaseURL             string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel               string `env:"LLM_MODEL" envDefault:"gpt-5.1"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
