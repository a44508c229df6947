package env

import (
	"errors"
	"flying_horse_backend/internal/model"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validGame = `
game:
  bet_list: [5, 1, 2, 3, 4]
  mul_steps: [2, 5, 10]
  target_rtp: 0.96
  starting_balance: 5000
`

func TestParseGameConfig(t *testing.T) {
	cfg, err := parseGameConfig([]byte(validGame))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{1, 2, 3, 4, 5}
	got := cfg.BetList()
	if len(got) != len(want) {
		t.Fatalf("bet list = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bet list = %v, want %v", got, want)
		}
	}
	if cfg.TargetRTP() != 0.96 {
		t.Errorf("rtp = %v", cfg.TargetRTP())
	}
	if cfg.StartingBalance() != 5000 {
		t.Errorf("starting balance = %v", cfg.StartingBalance())
	}
}

func TestParseGameConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "short bet list",
			yaml:    "game:\n  bet_list: [1, 2]\n  mul_steps: [2]\n  target_rtp: 0.96\n",
			wantErr: model.ErrBetListTooShort,
		},
		{
			name:    "non positive bet",
			yaml:    "game:\n  bet_list: [0, 1, 2, 3, 4]\n  mul_steps: [2]\n  target_rtp: 0.96\n",
			wantErr: model.ErrInvalidBetList,
		},
		{
			name:    "rtp out of range",
			yaml:    "game:\n  bet_list: [1, 2, 3, 4, 5]\n  mul_steps: [2]\n  target_rtp: 1.2\n",
			wantErr: model.ErrInvalidRTP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseGameConfig([]byte(tt.yaml))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := parseGameConfig([]byte("game:\n  bet_list: [1, 2, 3, 4, 5]\n  mul_steps: [10, 2]\n  target_rtp: 0.9\n")); err == nil {
		t.Error("expected error for unsorted mul_steps")
	}
	if _, err := parseGameConfig([]byte("game:\n  bet_list: [1, 2, 3, 4, 5]\n  mul_steps: [0.5, 2]\n  target_rtp: 0.9\n")); err == nil {
		t.Error("expected error for mul_steps below 1")
	}
}

func TestNewGameConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(validGame), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewGameConfigFromYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.MulSteps(); len(got) != 3 || got[2] != 10 {
		t.Errorf("mul steps = %v", got)
	}

	if _, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "secret")
	t.Setenv("ACCESS_TOKEN_DURATION", "10m")
	unsetenv(t, "REFRESH_TOKEN_DURATION")

	cfg, err := NewJWTConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(cfg.AccessTokenSecretKey()) != "secret" {
		t.Errorf("secret = %q", cfg.AccessTokenSecretKey())
	}
	if cfg.AccessTokenDuration() != 10*time.Minute {
		t.Errorf("access ttl = %v", cfg.AccessTokenDuration())
	}
	if cfg.RefreshTokenDuration() != 720*time.Hour {
		t.Errorf("refresh ttl = %v", cfg.RefreshTokenDuration())
	}
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	unsetenv(t, "ACCESS_TOKEN")
	if _, err := NewJWTConfig(); err == nil {
		t.Fatal("expected error without ACCESS_TOKEN")
	}
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Address() != "127.0.0.1:8080" {
		t.Errorf("address = %q", cfg.Address())
	}
	if cfg.ShutdownTimeout() != 15*time.Second {
		t.Errorf("shutdown timeout = %v", cfg.ShutdownTimeout())
	}
}

func TestNewJWTConfig_EmptySecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "")
	if _, err := NewJWTConfig(); err == nil {
		t.Fatal("expected error for empty ACCESS_TOKEN")
	}
}

func TestNewAppConfig(t *testing.T) {
	unsetenv(t, "APP_LOG_LEVEL")
	unsetenv(t, "APP_MIGRATE")
	t.Setenv("APP_ADMIN_LOGIN", "admin")
	t.Setenv("APP_ADMIN_PASSWORD", "admin123")

	cfg, err := NewAppConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel() != "info" || !cfg.MigrateOnStart() {
		t.Errorf("defaults: level %q, migrate %v", cfg.LogLevel(), cfg.MigrateOnStart())
	}
	if login, password := cfg.Admin(); login != "admin" || password != "admin123" {
		t.Errorf("admin = %q/%q", login, password)
	}
}

// unsetenv убирает переменную на время теста
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}
