package service

import (
	"context"
	"flying_horse_backend/internal/engine"
	"flying_horse_backend/internal/model"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
	Profile(ctx context.Context) (*model.User, error)
	EnsureAdmin(ctx context.Context, login, password string) error
}

type GameService interface {
	Config(ctx context.Context) (*model.GameConfig, error)
	Balance(ctx context.Context) (float64, error)
	Launch(ctx context.Context, req model.Launch) (*model.LaunchResult, error)
	Shoot(ctx context.Context, req model.Shoot) (*model.ShootResult, error)
	History(ctx context.Context, page, limit int) (*model.RecordPage, error)
	Stats(ctx context.Context) (*model.PlayerStats, error)
}

type AdminService interface {
	Players(ctx context.Context, filter model.PlayerFilter) (*model.PlayerPage, error)
	PlayerDetail(ctx context.Context, id int) (*model.PlayerDetail, error)
	AdjustBalance(ctx context.Context, id int, amount float64, reason string) (*model.BalanceAdjustment, error)
	SetStatus(ctx context.Context, id int, status string) error
	Reports(ctx context.Context) (*model.Reports, error)
	GameConfig(ctx context.Context) (*model.GameConfig, error)
	UpdateGameConfig(ctx context.Context, upd model.GameConfigUpdate) (*model.GameConfig, error)
}

// EngineRegistry движки исходов по сессиям авторизации
type EngineRegistry interface {
	Session(sessionID string) (*engine.Engine, error)
	Release(sessionID string)
	Len() int
	SetTargetRTP(rtp float64) error
}
