package game

import (
	"context"
	"flying_horse_backend/internal/engine"
	"flying_horse_backend/internal/middleware"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/money"

	"github.com/sirupsen/logrus"
)

// outcomeResults исход движка -> результат в записи раунда
var outcomeResults = map[engine.Outcome]string{
	engine.OutcomeJackpot:    model.ResultJackpot,
	engine.OutcomeSmallWin:   model.ResultSmallWin,
	engine.OutcomeBadExplode: model.ResultBadExplode,
	engine.OutcomeMiss:       model.ResultMiss,
}

// Shoot выстрел в пиньяту. Джекпот платит bet × currentMultiplier,
// малый выигрыш считает движок, остальные исходы без выплаты
func (s *serv) Shoot(ctx context.Context, req model.Shoot) (*model.ShootResult, error) {
	id, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.PinataHits < 0 {
		return nil, model.ErrInvalidPinataHits
	}

	betCents, err := s.validateWager(ctx, req.Bet, req.CurrentMultiplier)
	if err != nil {
		return nil, err
	}
	bet := money.FromCents(betCents)
	eng, err := s.engines.Session(id.SessionID)
	if err != nil {
		return nil, err
	}

	roundID := req.RoundID
	if roundID == "" {
		roundID = newRoundID()
	}
	res := &model.ShootResult{RoundID: roundID}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		balance, err := s.userRepo.GetBalance(ctx, id.UserID)
		if err != nil {
			return err
		}
		if balance < betCents {
			return model.ErrInsufficientBalance
		}

		outcome, err := eng.Shoot(req.CurrentMultiplier, req.PinataHits)
		if err != nil {
			return err
		}

		var winCents int64
		switch outcome {
		case engine.OutcomeJackpot:
			winCents, err = money.MulCents(betCents, req.CurrentMultiplier)
			if err != nil {
				return err
			}
		case engine.OutcomeSmallWin:
			amount, err := eng.SmallWinAmount(bet)
			if err != nil {
				return err
			}
			winCents = money.ToCents(amount)
		}

		newBalance, err := money.AddCents(balance-betCents, winCents)
		if err != nil {
			return err
		}
		if err = s.userRepo.UpdateBalance(ctx, id.UserID, newBalance); err != nil {
			return err
		}

		err = s.recordRepo.CreateRecord(ctx, &model.GameRecord{
			RoundID:    roundID,
			UserID:     id.UserID,
			BetAmount:  betCents,
			Multiplier: req.CurrentMultiplier,
			WinAmount:  winCents,
			BalAfter:   newBalance,
			GamePhase:  model.PhaseShoot,
			Result:     outcomeResults[outcome],
		})
		if err != nil {
			return err
		}

		res.Result = string(outcome)
		res.WinAmount = money.FromCents(winCents)
		res.Balance = money.FromCents(newBalance)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.UpdateState(bet, res.WinAmount)

	logrus.WithFields(logrus.Fields{
		"user_id":    id.UserID,
		"round_id":   roundID,
		"bet":        bet,
		"multiplier": req.CurrentMultiplier,
		"hits":       req.PinataHits,
		"result":     res.Result,
		"win":        res.WinAmount,
	}).Debug("shoot settled")

	return res, nil
}
