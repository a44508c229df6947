package apierr

import (
	"errors"
	"flying_horse_backend/internal/engine"
	"flying_horse_backend/internal/model"
	"fmt"
	"net/http"
	"testing"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("launch: %w", model.ErrInsufficientBalance), http.StatusBadRequest},
		{fmt.Errorf("register: %w", model.ErrLoginTaken), http.StatusConflict},
		{model.ErrUserSuspended, http.StatusForbidden},
		{model.ErrUserNotFound, http.StatusNotFound},
		{model.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: got 0.5", engine.ErrInvalidMultiplier), http.StatusBadRequest},
		{fmt.Errorf("shoot: %w", engine.ErrSessionClosed), http.StatusUnauthorized},
		{errors.New("db is down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got, _ := Status(tt.err); got != tt.want {
			t.Errorf("Status(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
