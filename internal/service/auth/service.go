package auth

import (
	"flying_horse_backend/internal/config"
	"flying_horse_backend/internal/repository"
	"flying_horse_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// minPasswordLen минимальная длина пароля
const minPasswordLen = 4

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
	gameCfg   config.GameConfig
	engines   service.EngineRegistry
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	gameCfg config.GameConfig,
	engines service.EngineRegistry,
) service.AuthService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
		gameCfg:   gameCfg,
		engines:   engines,
	}
}
