package admin

import (
	"flying_horse_backend/internal/config"
	"flying_horse_backend/internal/repository"
	"flying_horse_backend/internal/service"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

const (
	defaultPlayersLimit = 20
	maxPlayersLimit     = 100
	recentRecordsLimit  = 50
	reportDays          = 7
)

type serv struct {
	txManager  trm.Manager
	userRepo   repository.UserRepository
	recordRepo repository.RecordRepository
	configRepo repository.ConfigRepository
	statsRepo  repository.StatsRepository
	engines    service.EngineRegistry
	defaults   config.GameConfig
	now        func() time.Time
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	recordRepo repository.RecordRepository,
	configRepo repository.ConfigRepository,
	statsRepo repository.StatsRepository,
	engines service.EngineRegistry,
	defaults config.GameConfig,
) service.AdminService {
	return &serv{
		txManager:  txManager,
		userRepo:   userRepo,
		recordRepo: recordRepo,
		configRepo: configRepo,
		statsRepo:  statsRepo,
		engines:    engines,
		defaults:   defaults,
		now:        time.Now,
	}
}
