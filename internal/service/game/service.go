// Package game сервис ставок: проверяет ставку и баланс, вызывает движок
// исходов сессии, проводит деньги и пишет историю раундов.
package game

import (
	"flying_horse_backend/internal/config"
	"flying_horse_backend/internal/repository"
	"flying_horse_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type serv struct {
	txManager  trm.Manager
	userRepo   repository.UserRepository
	recordRepo repository.RecordRepository
	configRepo repository.ConfigRepository
	statsRepo  repository.StatsRepository
	engines    service.EngineRegistry
	defaults   config.GameConfig
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	recordRepo repository.RecordRepository,
	configRepo repository.ConfigRepository,
	statsRepo repository.StatsRepository,
	engines service.EngineRegistry,
	defaults config.GameConfig,
) service.GameService {
	return &serv{
		txManager:  txManager,
		userRepo:   userRepo,
		recordRepo: recordRepo,
		configRepo: configRepo,
		statsRepo:  statsRepo,
		engines:    engines,
		defaults:   defaults,
	}
}
