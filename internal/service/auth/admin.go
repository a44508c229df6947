package auth

import (
	"context"
	"errors"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/pass"
	"fmt"

	"github.com/sirupsen/logrus"
)

const adminName = "Administrator"

// EnsureAdmin создаёт администратора, если логин свободен.
// Существующую учётную запись не трогает
func (s *serv) EnsureAdmin(ctx context.Context, login, password string) error {
	if login == "" {
		return nil
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("admin %q: %w", login, model.ErrInvalidUserData)
	}

	existing, err := s.userRepo.GetUserByLogin(ctx, login)
	if err == nil {
		if existing.Role != model.RoleAdmin {
			logrus.WithField("login", login).Warn("admin login is taken by a player")
		}
		return nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return err
	}

	hash, err := pass.HashPassword(password)
	if err != nil {
		return err
	}

	id, err := s.userRepo.CreateUser(ctx, &model.User{
		Name:     adminName,
		Login:    login,
		Password: hash,
		Role:     model.RoleAdmin,
		Status:   model.StatusActive,
	})
	if err != nil {
		return fmt.Errorf("create admin %q: %w", login, err)
	}

	logrus.WithFields(logrus.Fields{"user_id": id, "login": login}).Info("admin created")
	return nil
}
