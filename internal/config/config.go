package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	DBMaxConns    int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	RankingCacheTTLSeconds int    `env:"RANKING_CACHE_TTL_SECONDS" envDefault:"60"`
	RankingCalibrationFile string `env:"RANKING_CALIBRATION_FILE"`
	MetricsEnabled         bool   `env:"METRICS_ENABLED" envDefault:"true"`
	// Peticiones por minuto e IP a POST /recommendations; 0 desactiva el limite.
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
}

// RankingCacheTTL devuelve el TTL del cache de rankings; 0 lo desactiva.
func (c Config) RankingCacheTTL() time.Duration {
	if c.RankingCacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.RankingCacheTTLSeconds) * time.Second
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
