package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort             string  `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL          string  `env:"DATABASE_URL,required"`
	JWTSecret            string  `env:"JWT_SECRET"`
	JWTAccessTTLMinutes  int     `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"15"`
	RedisAddr            string  `env:"REDIS_ADDR"`
	RedisPassword        string  `env:"REDIS_PASSWORD"`
	RedisDB              int     `env:"REDIS_DB" envDefault:"0"`
	MatchRateWindowSecs  int     `env:"MATCH_RATE_WINDOW_SECONDS" envDefault:"60"`
	MatchRateMaxRequests int     `env:"MATCH_RATE_MAX_REQUESTS" envDefault:"30"`
	BudgetSensitivity    float64 `env:"BUDGET_SENSITIVITY" envDefault:"60"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
