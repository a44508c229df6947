package auth

import (
	"context"
	"errors"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/pass"
)

func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	if login == "" || password == "" {
		return nil, model.ErrInvalidUserData
	}

	// Получение пользователя из бд по логину
	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Status == model.StatusSuspended {
		return nil, model.ErrUserSuspended
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.Password, password) {
		return nil, model.ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}
