package user_repo

import (
	"context"
	"errors"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/internal/repository"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colName         = "name"
	colLogin        = "login"
	colPasswordHash = "password_hash"
	colBalance      = "balance"
	colRole         = "role"
	colStatus       = "status"
	colCreatedAt    = "created_at"

	uniqueViolation = "23505"
)

var (
	psql       = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	userFields = []string{colID, colName, colLogin, colPasswordHash, colBalance, colRole, colStatus, colCreatedAt}
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Login, &u.Password, &u.Balance, &u.Role, &u.Status, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя, занятый логин даёт ErrLoginTaken
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	query := psql.Insert(table).
		Columns(colName, colLogin, colPasswordHash, colBalance, colRole, colStatus).
		Values(user.Name, user.Login, user.Password, user.Balance, user.Role, user.Status).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, model.ErrLoginTaken
		}
		return 0, err
	}

	return id, nil
}

// GetUserByLogin - пользователь по логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	query := psql.Select(userFields...).
		From(table).
		Where(sq.Eq{colLogin: login})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanUser(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
}

// GetUserByID - пользователь по ID
func (r *repo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	query := psql.Select(userFields...).
		From(table).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanUser(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
}

// GetBalance - баланс пользователя в центах.
// Внутри транзакции строка блокируется до коммита
func (r *repo) GetBalance(ctx context.Context, id int) (int64, error) {
	query := psql.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrUserNotFound
		}
		return 0, err
	}

	return balance, nil
}

// UpdateBalance - записывает новый баланс в центах
func (r *repo) UpdateBalance(ctx context.Context, id int, balance int64) error {
	query := psql.Update(table).
		Set(colBalance, balance).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	return nil
}

// ListUsers - страница пользователей, новые сверху. Поиск по логину и нику.
// Возвращает также общее число подходящих
func (r *repo) ListUsers(ctx context.Context, filter model.PlayerFilter) ([]model.User, int, error) {
	where := sq.And{}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		where = append(where, sq.Or{sq.ILike{colLogin: pattern}, sq.ILike{colName: pattern}})
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.conn(ctx).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := psql.Select(userFields...).
		From(table).
		Where(where).
		OrderBy(colCreatedAt+" DESC", colID+" DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64((filter.Page - 1) * filter.Limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]model.User, 0, filter.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}

	return users, total, rows.Err()
}

// CountUsers - число пользователей, пустой status считает всех
func (r *repo) CountUsers(ctx context.Context, status string) (int, error) {
	query := psql.Select("COUNT(*)").From(table)
	if status != "" {
		query = query.Where(sq.Eq{colStatus: status})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&n)
	return n, err
}

// UpdateStatus - меняет статус аккаунта
func (r *repo) UpdateStatus(ctx context.Context, id int, status string) error {
	query := psql.Update(table).
		Set(colStatus, status).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	return nil
}
