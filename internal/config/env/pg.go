package env

import (
	"flying_horse_backend/internal/config"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type pgConfig struct {
	DSNValue string `envconfig:"PG_DSN" required:"true"`
}

func NewPGConfig() (config.PGConfig, error) {
	var cfg pgConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("pg dsn not found: %w", err)
	}

	return &cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.DSNValue
}
