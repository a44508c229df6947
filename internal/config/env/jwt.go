package env

import (
	"flying_horse_backend/internal/config"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type jwtConfig struct {
	AccessTokenKey  string        `envconfig:"ACCESS_TOKEN" required:"true"`
	AccessTokenTTL  time.Duration `envconfig:"ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenTTL time.Duration `envconfig:"REFRESH_TOKEN_DURATION" default:"720h"`
}

func NewJWTConfig() (config.JWTConfig, error) {
	var cfg jwtConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("invalid jwt config: %w", err)
	}

	if len(cfg.AccessTokenKey) == 0 {
		return nil, fmt.Errorf("access token secret key not found")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("invalid access token duration: %s", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("invalid refresh token duration: %s", cfg.RefreshTokenTTL)
	}

	return &cfg, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.AccessTokenKey)
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.RefreshTokenTTL
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.AccessTokenTTL
}
