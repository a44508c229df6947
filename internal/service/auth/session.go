package auth

import (
	"context"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/token"
	"time"
)

// openSession создаёт сессию и выдаёт пару токенов
func (s *serv) openSession(ctx context.Context, user *model.User) (*model.AuthData, error) {
	sessionID := token.NewSessionID()

	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			UserID:       user.ID,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		user,
		sessionID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
		User:         user,
	}, nil
}
