package auth

import (
	"context"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/money"
	"flying_horse_backend/pkg/pass"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || len(user.Password) < minPasswordLen {
		return nil, model.ErrInvalidUserData
	}
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash
	user.Role = model.RolePlayer
	user.Status = model.StatusActive
	user.Balance = money.ToCents(s.gameCfg.StartingBalance())

	var data *model.AuthData

	// Пользователь и его первая сессия создаются вместе
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		data, err = s.openSession(ctx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("register %q: %w", user.Login, err)
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "login": user.Login}).Info("player registered")
	return data, nil
}
