package game

import (
	"context"
	"flying_horse_backend/internal/config"
	"flying_horse_backend/internal/middleware"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/money"
	"math"

	"github.com/google/uuid"
)

// roundIDLen длина идентификатора раунда
const roundIDLen = 8

// DefaultGameConfig конфиг игры из значений config.yaml
func DefaultGameConfig(cfg config.GameConfig) model.GameConfig {
	return model.GameConfig{
		BetList:  cfg.BetList(),
		MulSteps: cfg.MulSteps(),
		RTP:      cfg.TargetRTP(),
	}
}

// Config действующий конфиг игры
func (s *serv) Config(ctx context.Context) (*model.GameConfig, error) {
	return s.configRepo.GetOrCreate(ctx, DefaultGameConfig(s.defaults))
}

// Balance баланс текущего игрока
func (s *serv) Balance(ctx context.Context) (float64, error) {
	id, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return 0, err
	}

	user, err := s.userRepo.GetUserByID(ctx, id.UserID)
	if err != nil {
		return 0, err
	}

	return money.FromCents(user.Balance), nil
}

// validateWager проверяет ставку и множитель раунда по действующему конфигу.
// Ставка должна точно совпасть с пунктом bet list (в центах, без долей цента),
// множитель лежать в [1, max(mulSteps)]
func (s *serv) validateWager(ctx context.Context, bet, multiplier float64) (int64, error) {
	if !(multiplier >= 1) || math.IsInf(multiplier, 0) {
		return 0, model.ErrInvalidMultiplier
	}
	if !(bet > 0) || math.IsInf(bet, 0) || !money.IsWholeCents(bet) {
		return 0, model.ErrInvalidBetAmount
	}

	cfg, err := s.Config(ctx)
	if err != nil {
		return 0, err
	}

	if multiplier > maxStep(cfg.MulSteps) {
		return 0, model.ErrInvalidMultiplier
	}

	betCents := money.ToCents(bet)
	for _, b := range cfg.BetList {
		if money.ToCents(b) == betCents {
			return betCents, nil
		}
	}

	return 0, model.ErrInvalidBetAmount
}

// maxStep верхняя ступень лестницы, 0 для пустой
func maxStep(steps []float64) float64 {
	var m float64
	for _, s := range steps {
		m = max(m, s)
	}
	return m
}

func newRoundID() string {
	return uuid.NewString()[:roundIDLen]
}
