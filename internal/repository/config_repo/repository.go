package config_repo

import (
	"context"
	"encoding/json"
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
	table        = "game_config"
	colID        = "id"
	colBetList   = "bet_list"
	colMulSteps  = "mul_steps"
	colRTP       = "rtp"
	colUpdatedAt = "updated_at"

	// Конфиг игры один на весь сервис
	configID = 1
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewConfigRepository(dbc *pgxpool.Pool) repository.ConfigRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// GetOrCreate - читает конфиг, при первом обращении записывает defaults
func (r *repo) GetOrCreate(ctx context.Context, defaults model.GameConfig) (*model.GameConfig, error) {
	cfg, err := r.get(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, model.ErrConfigNotFound) {
		return nil, err
	}

	if err = r.upsert(ctx, defaults, "ON CONFLICT ("+colID+") DO NOTHING"); err != nil {
		return nil, err
	}

	return r.get(ctx)
}

// Save - перезаписывает конфиг
func (r *repo) Save(ctx context.Context, cfg model.GameConfig) error {
	return r.upsert(ctx, cfg, "ON CONFLICT ("+colID+") DO UPDATE SET "+
		colBetList+" = EXCLUDED."+colBetList+", "+
		colMulSteps+" = EXCLUDED."+colMulSteps+", "+
		colRTP+" = EXCLUDED."+colRTP+", "+
		colUpdatedAt+" = EXCLUDED."+colUpdatedAt)
}

func (r *repo) get(ctx context.Context) (*model.GameConfig, error) {
	sqlStr, args, err := psql.Select(colBetList, colMulSteps, colRTP).
		From(table).
		Where(sq.Eq{colID: configID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		cfg            model.GameConfig
		betRaw, mulRaw []byte
	)
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&betRaw, &mulRaw, &cfg.RTP)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrConfigNotFound
		}
		return nil, err
	}

	if err = json.Unmarshal(betRaw, &cfg.BetList); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(mulRaw, &cfg.MulSteps); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (r *repo) upsert(ctx context.Context, cfg model.GameConfig, onConflict string) error {
	betRaw, err := json.Marshal(cfg.BetList)
	if err != nil {
		return err
	}
	mulRaw, err := json.Marshal(cfg.MulSteps)
	if err != nil {
		return err
	}

	sqlStr, args, err := psql.Insert(table).
		Columns(colID, colBetList, colMulSteps, colRTP, colUpdatedAt).
		Values(configID, string(betRaw), string(mulRaw), cfg.RTP, time.Now()).
		Suffix(onConflict).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}
