package auth

import (
	"context"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (string, error) {
	// Получение хэша refresh токена из хранилища по sessionID
	refreshTokenHash, err := s.authRepo.GetRefreshTokenBySessionID(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if !token.VerifyRefreshToken(data.RefreshToken, refreshTokenHash) {
		return "", model.ErrInvalidToken
	}

	user, err := s.authRepo.GetUserBySessionID(ctx, data.SessionID)
	if err != nil {
		return "", err
	}
	if user.Status == model.StatusSuspended {
		return "", model.ErrUserSuspended
	}

	// Новый access токен в той же сессии, движок сессии сохраняется
	return token.GenerateAccessToken(
		user,
		data.SessionID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}
