package record_repo

import (
	"context"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "game_records"
	colID         = "id"
	colRoundID    = "round_id"
	colUserID     = "user_id"
	colBetAmount  = "bet_amount"
	colMultiplier = "multiplier"
	colWinAmount  = "win_amount"
	colBalAfter   = "balance_after"
	colGamePhase  = "game_phase"
	colResult     = "result"
	colCreatedAt  = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// statsColumns агрегаты для PlayerStats, порядок как в scanStats
var statsColumns = []string{
	"COUNT(*)",
	"COALESCE(SUM(" + colBetAmount + "), 0)",
	"COALESCE(SUM(" + colWinAmount + "), 0)",
	"COALESCE(MAX(" + colWinAmount + "), 0)",
	"COUNT(*) FILTER (WHERE " + colResult + " = '" + model.ResultJackpot + "')",
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRecordRepository(dbc *pgxpool.Pool) repository.RecordRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateRecord - пишет результат ставки, заполняет ID и CreatedAt
func (r *repo) CreateRecord(ctx context.Context, rec *model.GameRecord) error {
	query := psql.Insert(table).
		Columns(colRoundID, colUserID, colBetAmount, colMultiplier, colWinAmount, colBalAfter, colGamePhase, colResult).
		Values(rec.RoundID, rec.UserID, rec.BetAmount, rec.Multiplier, rec.WinAmount, rec.BalAfter, rec.GamePhase, rec.Result).
		Suffix("RETURNING " + colID + ", " + colCreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&rec.ID, &rec.CreatedAt)
}

// ListByUser - записи игрока, новые сверху
func (r *repo) ListByUser(ctx context.Context, userID, limit, offset int) ([]model.GameRecord, error) {
	query := psql.Select(colID, colRoundID, colUserID, colBetAmount, colMultiplier, colWinAmount, colBalAfter, colGamePhase, colResult, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt+" DESC", colID+" DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.GameRecord, 0, limit)
	for rows.Next() {
		var rec model.GameRecord
		err = rows.Scan(&rec.ID, &rec.RoundID, &rec.UserID, &rec.BetAmount, &rec.Multiplier,
			&rec.WinAmount, &rec.BalAfter, &rec.GamePhase, &rec.Result, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// CountByUser - число записей игрока
func (r *repo) CountByUser(ctx context.Context, userID int) (int, error) {
	sqlStr, args, err := psql.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{colUserID: userID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&n)
	return n, err
}

// CountByUsers - число записей по каждому из игроков
func (r *repo) CountByUsers(ctx context.Context, userIDs []int) (map[int]int, error) {
	counts := make(map[int]int, len(userIDs))
	if len(userIDs) == 0 {
		return counts, nil
	}

	sqlStr, args, err := psql.Select(colUserID, "COUNT(*)").
		From(table).
		Where(sq.Eq{colUserID: userIDs}).
		GroupBy(colUserID).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, n int
		if err = rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}

	return counts, rows.Err()
}

// StatsByUser - агрегаты по игроку
func (r *repo) StatsByUser(ctx context.Context, userID int) (model.PlayerStats, error) {
	return r.stats(ctx, psql.Select(statsColumns...).From(table).Where(sq.Eq{colUserID: userID}))
}

// Overall - агрегаты по всем игрокам
func (r *repo) Overall(ctx context.Context) (model.PlayerStats, error) {
	return r.stats(ctx, psql.Select(statsColumns...).From(table))
}

func (r *repo) stats(ctx context.Context, query sq.SelectBuilder) (model.PlayerStats, error) {
	var st model.PlayerStats

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return st, err
	}

	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).
		Scan(&st.TotalBets, &st.TotalWagered, &st.TotalWon, &st.BiggestWin, &st.Jackpots)
	return st, err
}

// Daily - ставки, оборот и выплаты по дням начиная с since
func (r *repo) Daily(ctx context.Context, since time.Time) ([]model.DailyReport, error) {
	day := "date_trunc('day', " + colCreatedAt + ")"
	sqlStr, args, err := psql.Select(day, "COUNT(*)", "COALESCE(SUM("+colBetAmount+"), 0)", "COALESCE(SUM("+colWinAmount+"), 0)").
		From(table).
		Where(sq.GtOrEq{colCreatedAt: since}).
		GroupBy(day).
		OrderBy(day + " DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []model.DailyReport
	for rows.Next() {
		var d model.DailyReport
		if err = rows.Scan(&d.Date, &d.Bets, &d.Wagered, &d.Paid); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}
