package env

import (
	"flying_horse_backend/internal/config"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type appConfig struct {
	Level   string `envconfig:"APP_LOG_LEVEL" default:"info"`
	Migrate bool   `envconfig:"APP_MIGRATE" default:"true"`

	// Администратор, которого создаёт старт приложения. Пустой логин выключает
	AdminLogin    string `envconfig:"APP_ADMIN_LOGIN"`
	AdminPassword string `envconfig:"APP_ADMIN_PASSWORD"`
}

func NewAppConfig() (config.AppConfig, error) {
	var cfg appConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}

	return &cfg, nil
}

func (cfg *appConfig) LogLevel() string {
	return cfg.Level
}

func (cfg *appConfig) MigrateOnStart() bool {
	return cfg.Migrate
}

func (cfg *appConfig) Admin() (login, password string) {
	return cfg.AdminLogin, cfg.AdminPassword
}
