package auth

import "time"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nickname string `json:"nickname"` // Необязательный, по умолчанию username
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest используется, если cookies нет
type RefreshRequest struct {
	SessionID    string `json:"sessionId"`
	RefreshToken string `json:"refreshToken"`
}

type Player struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Balance   float64   `json:"balance"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	SessionID    string `json:"sessionId"`
	Player       Player `json:"player"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	Player Player `json:"player"`
}
