package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Роли игроков
const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

// Статусы аккаунта
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

type User struct {
	ID        int
	Name      string // Никнейм
	Login     string
	Password  string // bcrypt хэш после регистрации
	Balance   int64  // В центах
	Role      string
	Status    string
	CreatedAt time.Time
}

// UserClaims содержимое access токена
type UserClaims struct {
	jwt.RegisteredClaims
	UserID    int    `json:"uid"`
	Role      string `json:"role"`
	SessionID string `json:"sid"`
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
	User         *User
}
