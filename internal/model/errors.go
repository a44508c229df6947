package model

import "errors"

// Ошибки игры и кошелька
var (
	ErrInvalidBetAmount    = errors.New("invalid bet amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidMultiplier   = errors.New("invalid multiplier")
	ErrInvalidPinataHits   = errors.New("pinataHits must be >= 0")
	ErrNegativeBalance     = errors.New("balance cannot be negative")
	ErrInvalidAmount       = errors.New("amount must be number")
)

// Ошибки пользователей и авторизации
var (
	ErrUserNotFound       = errors.New("player not found")
	ErrUserSuspended      = errors.New("account suspended")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginTaken         = errors.New("username already exists")
	ErrInvalidUserData    = errors.New("username and password are required, password at least 4 characters")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Ошибки конфигурации игры
var (
	ErrInvalidRTP      = errors.New("rtp must be 0.5-1.0")
	ErrBetListTooShort = errors.New("betList must have at least 5 items")
	ErrInvalidBetList  = errors.New("betList items must be positive")
	ErrConfigNotFound  = errors.New("game config not found")
)
