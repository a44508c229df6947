// Package apierr переводит ошибки сервисов в HTTP ответы.
package apierr

import (
	"errors"
	"flying_horse_backend/internal/engine"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/resp"
	"net/http"

	"github.com/sirupsen/logrus"
)

type mapping struct {
	target error
	status int
	msg    string
}

// mappings порядок важен: первая подходящая ошибка выигрывает
var mappings = []mapping{
	{model.ErrInvalidBetAmount, http.StatusBadRequest, "Invalid bet amount"},
	{model.ErrInsufficientBalance, http.StatusBadRequest, "Insufficient balance"},
	{model.ErrInvalidMultiplier, http.StatusBadRequest, "Invalid multiplier"},
	{model.ErrInvalidPinataHits, http.StatusBadRequest, "pinataHits must be >= 0"},
	{model.ErrNegativeBalance, http.StatusBadRequest, "Balance cannot be negative"},
	{model.ErrInvalidAmount, http.StatusBadRequest, "Amount must be number"},
	{model.ErrInvalidUserData, http.StatusBadRequest, "Username and password are required, password at least 4 characters"},
	{model.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
	{model.ErrInvalidRTP, http.StatusBadRequest, "RTP must be 0.5-1.0"},
	{model.ErrBetListTooShort, http.StatusBadRequest, "betList must have at least 5 items"},
	{model.ErrInvalidBetList, http.StatusBadRequest, "betList items must be positive"},
	{engine.ErrInvalidBet, http.StatusBadRequest, "Invalid bet amount"},
	{engine.ErrInvalidMultiplier, http.StatusBadRequest, "Invalid multiplier"},
	{engine.ErrInvalidHits, http.StatusBadRequest, "pinataHits must be >= 0"},
	{model.ErrLoginTaken, http.StatusConflict, "Username already exists"},
	{model.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{model.ErrInvalidToken, http.StatusUnauthorized, "Invalid token"},
	{model.ErrSessionNotFound, http.StatusUnauthorized, "Session not found"},
	{engine.ErrSessionClosed, http.StatusUnauthorized, "Session closed"},
	{model.ErrUnauthorized, http.StatusUnauthorized, "No token provided"},
	{model.ErrUserSuspended, http.StatusForbidden, "Account suspended"},
	{model.ErrUserNotFound, http.StatusNotFound, "Player not found"},
}

// Status HTTP статус и текст для ошибки
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Write пишет ошибку в ответ. Неизвестные ошибки логируются
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := Status(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}
	resp.WriteError(w, status, msg)
}

// BadRequest ответ 400 с текстом
func BadRequest(w http.ResponseWriter, msg string) {
	resp.WriteError(w, http.StatusBadRequest, msg)
}
