package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type AppConfig interface {
	LogLevel() string
	MigrateOnStart() bool
	Admin() (login, password string)
}

type HTTPConfig interface {
	Address() string
	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// GameConfig значения по умолчанию для игры из config.yaml.
// Действующие bet list и RTP живут в БД и меняются админом
type GameConfig interface {
	BetList() []float64
	MulSteps() []float64
	TargetRTP() float64
	StartingBalance() float64
}
