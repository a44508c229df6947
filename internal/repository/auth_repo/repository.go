package auth_repo

import (
	"context"
	"errors"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "sessions"
	colSessionID   = "session_id"
	colUserID      = "user_id"
	colRefreshHash = "refresh_hash"
	colExpiredTime = "expired_time"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAuthRepository(dbc *pgxpool.Pool) repository.AuthRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn транзакция из контекста или пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateSession - создает сессию в БД
// Принимает model.Session - (ID, UserID, RefreshToken, ExpiresAt)
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	query := psql.Insert(table).
		Columns(colSessionID, colUserID, colRefreshHash, colExpiredTime).
		Values(session.ID, session.UserID, session.RefreshToken, session.ExpiresAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}

// GetRefreshTokenBySessionID - хэш refresh токена живой сессии
func (r *repo) GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (string, error) {
	query := psql.Select(colRefreshHash).
		From(table).
		Where(sq.Eq{colSessionID: sessionID}).
		Where(sq.Gt{colExpiredTime: time.Now()})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", err
	}

	var refreshHash string
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&refreshHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrSessionNotFound
		}
		return "", err
	}

	return refreshHash, nil
}

// DeleteSession - удаляет сессию из БД
func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	query := psql.Delete(table).
		Where(sq.Eq{colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}

// DeleteExpiredSessions - чистит сессии с истёкшим refresh токеном,
// возвращает ID удалённых
func (r *repo) DeleteExpiredSessions(ctx context.Context, now time.Time) ([]string, error) {
	query := psql.Delete(table).
		Where(sq.LtOrEq{colExpiredTime: now}).
		Suffix("RETURNING " + colSessionID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// GetUserBySessionID - пользователь сессии (ID, Name, Login, Role, Status, Balance)
func (r *repo) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	query := psql.Select("u.id", "u.name", "u.login", "u.role", "u.status", "u.balance").
		From(table + " s").
		Join("users u ON s." + colUserID + " = u.id").
		Where(sq.Eq{"s." + colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Name, &user.Login, &user.Role, &user.Status, &user.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	return &user, nil
}
