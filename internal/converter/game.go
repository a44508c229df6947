package converter

import (
	"flying_horse_backend/internal/api/dto/game"
	"flying_horse_backend/internal/model"
)

func ToConfigResponse(cfg *model.GameConfig) game.ConfigResponse {
	return game.ConfigResponse{
		BetList:  cfg.BetList,
		MulSteps: cfg.MulSteps,
		RTP:      cfg.RTP,
	}
}

func ToLaunch(req game.LaunchRequest) model.Launch {
	return model.Launch{
		Bet:              req.BetAmount,
		SpringMultiplier: req.SpringMultiplier,
	}
}

func ToLaunchResponse(res model.LaunchResult) game.LaunchResponse {
	return game.LaunchResponse{
		RoundID:          res.RoundID,
		IsWin:            res.IsWin,
		WinAmount:        res.WinAmount,
		LaunchMultiplier: res.LaunchMultiplier,
		Balance:          res.Balance,
	}
}

// ToShoot pinataHits обязателен, nil проверяет хендлер
func ToShoot(req game.ShootRequest) model.Shoot {
	s := model.Shoot{
		Bet:               req.BetAmount,
		CurrentMultiplier: req.CurrentMultiplier,
		RoundID:           req.RoundID,
	}
	if req.PinataHits != nil {
		s.PinataHits = *req.PinataHits
	}
	return s
}

func ToShootResponse(res model.ShootResult) game.ShootResponse {
	return game.ShootResponse{
		RoundID:   res.RoundID,
		Result:    res.Result,
		WinAmount: res.WinAmount,
		Balance:   res.Balance,
	}
}
