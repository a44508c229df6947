package game

import (
	"context"
	"flying_horse_backend/internal/middleware"
	"flying_horse_backend/internal/model"
)

// History страница истории раундов текущего игрока
func (s *serv) History(ctx context.Context, page, limit int) (*model.RecordPage, error) {
	id, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := s.recordRepo.ListByUser(ctx, id.UserID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := s.recordRepo.CountByUser(ctx, id.UserID)
	if err != nil {
		return nil, err
	}

	return &model.RecordPage{
		Records:    records,
		Pagination: model.NewPagination(page, limit, total),
	}, nil
}

// Stats агрегаты текущего игрока
func (s *serv) Stats(ctx context.Context) (*model.PlayerStats, error) {
	id, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, err := s.recordRepo.StatsByUser(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
