package game

import (
	"context"
	"flying_horse_backend/internal/middleware"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/money"

	"github.com/sirupsen/logrus"
)

// Launch фаза взлёта: списывает ставку, спрашивает исход у движка сессии
// и зачисляет выигрыш в одной транзакции
func (s *serv) Launch(ctx context.Context, req model.Launch) (*model.LaunchResult, error) {
	id, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	betCents, err := s.validateWager(ctx, req.Bet, req.SpringMultiplier)
	if err != nil {
		return nil, err
	}
	bet := money.FromCents(betCents)
	eng, err := s.engines.Session(id.SessionID)
	if err != nil {
		return nil, err
	}

	res := &model.LaunchResult{RoundID: newRoundID()}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		balance, err := s.userRepo.GetBalance(ctx, id.UserID)
		if err != nil {
			return err
		}
		if balance < betCents {
			return model.ErrInsufficientBalance
		}

		out, err := eng.Launch(bet)
		if err != nil {
			return err
		}

		winCents := money.ToCents(out.WinAmount)
		newBalance, err := money.AddCents(balance-betCents, winCents)
		if err != nil {
			return err
		}
		if err = s.userRepo.UpdateBalance(ctx, id.UserID, newBalance); err != nil {
			return err
		}

		result := model.ResultLose
		if out.IsWin {
			result = model.ResultWin
		}
		err = s.recordRepo.CreateRecord(ctx, &model.GameRecord{
			RoundID:    res.RoundID,
			UserID:     id.UserID,
			BetAmount:  betCents,
			Multiplier: req.SpringMultiplier,
			WinAmount:  winCents,
			BalAfter:   newBalance,
			GamePhase:  model.PhaseLaunch,
			Result:     result,
		})
		if err != nil {
			return err
		}

		res.IsWin = out.IsWin
		res.WinAmount = money.FromCents(winCents)
		res.LaunchMultiplier = out.Multiplier
		res.Balance = money.FromCents(newBalance)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.UpdateState(bet, res.WinAmount)

	logrus.WithFields(logrus.Fields{
		"user_id":    id.UserID,
		"round_id":   res.RoundID,
		"bet":        bet,
		"win":        res.WinAmount,
		"multiplier": res.LaunchMultiplier,
	}).Debug("launch settled")

	return res, nil
}
