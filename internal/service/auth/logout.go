package auth

import (
	"context"
	"flying_horse_backend/internal/middleware"
	"flying_horse_backend/internal/model"
)

// Logout закрывает сессию и освобождает её движок исходов
func (s *serv) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return model.ErrSessionNotFound
	}

	if err := s.authRepo.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	s.engines.Release(sessionID)
	return nil
}

// Profile текущий пользователь
func (s *serv) Profile(ctx context.Context) (*model.User, error) {
	id, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.userRepo.GetUserByID(ctx, id.UserID)
}
