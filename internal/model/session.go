package model

import "time"

type Session struct {
	ID           string
	UserID       int
	RefreshToken string // Хэш refresh токена
	ExpiresAt    time.Time
}
