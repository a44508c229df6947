package repository

import (
	"context"
	"flying_horse_backend/internal/model"
	"time"
)

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
	DeleteExpiredSessions(ctx context.Context, now time.Time) ([]string, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)

	// GetBalance блокирует строку пользователя до конца транзакции
	GetBalance(ctx context.Context, id int) (int64, error)
	UpdateBalance(ctx context.Context, id int, balance int64) error

	ListUsers(ctx context.Context, filter model.PlayerFilter) ([]model.User, int, error)
	CountUsers(ctx context.Context, status string) (int, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type RecordRepository interface {
	CreateRecord(ctx context.Context, record *model.GameRecord) error
	ListByUser(ctx context.Context, userID, limit, offset int) ([]model.GameRecord, error)
	CountByUser(ctx context.Context, userID int) (int, error)
	CountByUsers(ctx context.Context, userIDs []int) (map[int]int, error)
	StatsByUser(ctx context.Context, userID int) (model.PlayerStats, error)
	Overall(ctx context.Context) (model.PlayerStats, error)
	Daily(ctx context.Context, since time.Time) ([]model.DailyReport, error)
}

type ConfigRepository interface {
	// GetOrCreate возвращает конфиг игры, при отсутствии сохраняет defaults
	GetOrCreate(ctx context.Context, defaults model.GameConfig) (*model.GameConfig, error)
	Save(ctx context.Context, cfg model.GameConfig) error
}

// StatsRepository RTP трекер в памяти процесса
type StatsRepository interface {
	UpdateState(bet, payout float64)
	SetTargetRTP(rtp float64)
	Snapshot() model.LiveRTP
}
