package admin

import (
	"context"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/internal/service/game"
	"time"

	"github.com/sirupsen/logrus"
)

// Reports сводка по игрокам, обороту за 7 дней и живому RTP
func (s *serv) Reports(ctx context.Context) (*model.Reports, error) {
	total, err := s.userRepo.CountUsers(ctx, "")
	if err != nil {
		return nil, err
	}
	active, err := s.userRepo.CountUsers(ctx, model.StatusActive)
	if err != nil {
		return nil, err
	}

	overall, err := s.recordRepo.Overall(ctx)
	if err != nil {
		return nil, err
	}

	daily, err := s.recordRepo.Daily(ctx, s.now().Add(-reportDays*24*time.Hour))
	if err != nil {
		return nil, err
	}

	return &model.Reports{
		Overview: model.Overview{
			TotalPlayers:  total,
			ActivePlayers: active,
			Stats:         overall,
		},
		Daily:    daily,
		Live:     s.statsRepo.Snapshot(),
		Sessions: s.engines.Len(),
	}, nil
}

// GameConfig действующий конфиг игры
func (s *serv) GameConfig(ctx context.Context) (*model.GameConfig, error) {
	return s.configRepo.GetOrCreate(ctx, game.DefaultGameConfig(s.defaults))
}

// UpdateGameConfig меняет bet list и/или RTP. Новый RTP сразу
// получают все движки сессий
func (s *serv) UpdateGameConfig(ctx context.Context, upd model.GameConfigUpdate) (*model.GameConfig, error) {
	if upd.BetList != nil {
		if err := model.ValidateBetList(upd.BetList); err != nil {
			return nil, err
		}
	}
	if upd.RTP != nil {
		if err := model.ValidateRTP(*upd.RTP); err != nil {
			return nil, err
		}
	}

	cfg, err := s.GameConfig(ctx)
	if err != nil {
		return nil, err
	}
	if upd.BetList != nil {
		cfg.BetList = model.SortedCopy(upd.BetList)
	}
	if upd.RTP != nil {
		cfg.RTP = *upd.RTP
	}

	if err = s.configRepo.Save(ctx, *cfg); err != nil {
		return nil, err
	}
	if err = s.engines.SetTargetRTP(cfg.RTP); err != nil {
		return nil, err
	}
	s.statsRepo.SetTargetRTP(cfg.RTP)

	logrus.WithFields(logrus.Fields{
		"rtp":      cfg.RTP,
		"bet_list": cfg.BetList,
	}).Info("game config updated")

	return cfg, nil
}
