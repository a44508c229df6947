package converter

import (
	"flying_horse_backend/internal/api/dto/auth"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/money"
)

func RegisterRequestToUserModel(req *auth.RegisterRequest) *model.User {
	return &model.User{
		Login:    req.Username,
		Name:     req.Nickname,
		Password: req.Password,
	}
}

func ToAuthPlayer(u *model.User) auth.Player {
	return auth.Player{
		ID:        u.ID,
		Username:  u.Login,
		Nickname:  u.Name,
		Balance:   money.FromCents(u.Balance),
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func ToAuthResponse(data *model.AuthData) auth.AuthResponse {
	return auth.AuthResponse{
		Token:        data.AccessToken,
		RefreshToken: data.RefreshToken,
		SessionID:    data.SessionID,
		Player:       ToAuthPlayer(data.User),
	}
}
