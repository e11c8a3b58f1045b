package cli

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries credentials and knobs for the CLI. The cas library reads
// no environment variables itself; everything is injected from here.
type Config struct {
	Username string `env:"NEU_USERNAME"`
	Password string `env:"NEU_PASSWORD"`
	Token    string `env:"NEU_TOKEN"`

	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string        `env:"LOG_FORMAT" envDefault:"text"`
	Timeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// LoadConfig reads .env (when present) and then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // a missing .env file is fine

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("cli: failed to parse environment: %w", err)
	}
	return cfg, nil
}
