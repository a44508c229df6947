package admin

import (
	"context"
	"flying_horse_backend/internal/middleware"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/money"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// Players страница игроков с числом сыгранных раундов
func (s *serv) Players(ctx context.Context, filter model.PlayerFilter) (*model.PlayerPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPlayersLimit
	}
	if filter.Limit > maxPlayersLimit {
		filter.Limit = maxPlayersLimit
	}
	filter.Search = strings.TrimSpace(filter.Search)

	users, total, err := s.userRepo.ListUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	counts, err := s.recordRepo.CountByUsers(ctx, ids)
	if err != nil {
		return nil, err
	}

	players := make([]model.PlayerSummary, 0, len(users))
	for _, u := range users {
		players = append(players, model.PlayerSummary{User: u, TotalGames: counts[u.ID]})
	}

	return &model.PlayerPage{
		Players:    players,
		Pagination: model.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// PlayerDetail игрок, его агрегаты и последние раунды
func (s *serv) PlayerDetail(ctx context.Context, id int) (*model.PlayerDetail, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.recordRepo.StatsByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	recent, err := s.recordRepo.ListByUser(ctx, id, recentRecordsLimit, 0)
	if err != nil {
		return nil, err
	}

	return &model.PlayerDetail{User: *user, Stats: stats, RecentRecords: recent}, nil
}

// AdjustBalance ручная корректировка баланса. Уйти в минус нельзя
func (s *serv) AdjustBalance(ctx context.Context, id int, amount float64, reason string) (*model.BalanceAdjustment, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, model.ErrInvalidAmount
	}
	adj := money.ToCents(amount)

	res := &model.BalanceAdjustment{UserID: id, Adjustment: adj}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		balance, err := s.userRepo.GetBalance(ctx, id)
		if err != nil {
			return err
		}

		newBalance := balance + adj
		if newBalance < 0 {
			return model.ErrNegativeBalance
		}
		if err = s.userRepo.UpdateBalance(ctx, id, newBalance); err != nil {
			return err
		}

		res.PreviousBalance = balance
		res.NewBalance = newBalance
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry := logrus.WithFields(logrus.Fields{
		"player_id":   id,
		"amount":      money.FromCents(adj),
		"new_balance": money.FromCents(res.NewBalance),
		"reason":      reason,
	})
	if admin, err := middleware.IdentityFromContext(ctx); err == nil {
		entry = entry.WithField("admin_id", admin.UserID)
	}
	entry.Info("balance adjusted")

	return res, nil
}

// SetStatus active или suspended
func (s *serv) SetStatus(ctx context.Context, id int, status string) error {
	if status != model.StatusActive && status != model.StatusSuspended {
		return fmt.Errorf("%w: %q", model.ErrInvalidStatus, status)
	}

	if err := s.userRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"player_id": id, "status": status}).Info("player status changed")
	return nil
}
