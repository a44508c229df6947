package auth

import (
	"context"
	"errors"
	"flying_horse_backend/internal/engine"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/internal/service"
	"flying_horse_backend/internal/service/servicetest"
	"flying_horse_backend/pkg/pass"
	"flying_horse_backend/pkg/token"
	"testing"
)

type fixture struct {
	users    *servicetest.Users
	sessions *servicetest.Sessions
	registry *engine.Registry
	jwt      *servicetest.JWTConfig
	serv     service.AuthService
}

func newFixture() *fixture {
	users := servicetest.NewUsers()
	f := &fixture{
		users:    users,
		sessions: servicetest.NewSessions(users),
		registry: engine.NewRegistry(0.96),
		jwt:      servicetest.DefaultJWTConfig(),
	}
	f.serv = NewService(&servicetest.TxManager{}, f.users, f.sessions, f.jwt, servicetest.DefaultGameConfig(), f.registry)
	return f
}

func (f *fixture) addUser(t *testing.T, login, password, status string) int {
	t.Helper()
	hash, err := pass.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	return f.users.Add(model.User{Login: login, Name: login, Password: hash, Role: model.RolePlayer, Status: status})
}

func TestRegister(t *testing.T) {
	f := newFixture()

	data, err := f.serv.Register(servicetest.PlayerContext(1, "x"), &model.User{Login: " rider ", Password: "horse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := f.users.Get(data.User.ID)
	if user.Login != "rider" || user.Name != "rider" {
		t.Errorf("login/name = %q/%q", user.Login, user.Name)
	}
	if user.Balance != 500000 || user.Role != model.RolePlayer || user.Status != model.StatusActive {
		t.Errorf("user = %+v", user)
	}
	if !pass.VerifyPassword(user.Password, "horse") {
		t.Error("password not hashed with bcrypt")
	}
	if !f.sessions.Has(data.SessionID) {
		t.Error("session not stored")
	}

	claims, err := token.VerifyToken(data.AccessToken, f.jwt.Secret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != user.ID || claims.SessionID != data.SessionID || claims.Role != model.RolePlayer {
		t.Errorf("claims = %+v", claims)
	}
}

func TestRegister_Rejects(t *testing.T) {
	f := newFixture()
	f.addUser(t, "taken", "secret", model.StatusActive)

	tests := []struct {
		name    string
		user    model.User
		wantErr error
	}{
		{name: "empty login", user: model.User{Login: "  ", Password: "horse"}, wantErr: model.ErrInvalidUserData},
		{name: "short password", user: model.User{Login: "rider", Password: "abc"}, wantErr: model.ErrInvalidUserData},
		{name: "login taken", user: model.User{Login: "taken", Password: "horse"}, wantErr: model.ErrLoginTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.user
			if _, err := f.serv.Register(servicetest.PlayerContext(1, "x"), &u); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	f := newFixture()
	id := f.addUser(t, "rider", "horse", model.StatusActive)
	f.addUser(t, "banned", "horse", model.StatusSuspended)

	data, err := f.serv.Login(servicetest.PlayerContext(1, "x"), "rider", "horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.User.ID != id || data.AccessToken == "" || data.RefreshToken == "" {
		t.Errorf("auth data = %+v", data)
	}

	tests := []struct {
		name     string
		login    string
		password string
		wantErr  error
	}{
		{name: "wrong password", login: "rider", password: "pony", wantErr: model.ErrInvalidCredentials},
		{name: "unknown user", login: "ghost", password: "horse", wantErr: model.ErrInvalidCredentials},
		{name: "suspended", login: "banned", password: "horse", wantErr: model.ErrUserSuspended},
		{name: "empty", login: "", password: "", wantErr: model.ErrInvalidUserData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.serv.Login(servicetest.PlayerContext(1, "x"), tt.login, tt.password); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRefresh(t *testing.T) {
	f := newFixture()
	f.addUser(t, "rider", "horse", model.StatusActive)
	ctx := servicetest.PlayerContext(1, "x")

	data, err := f.serv.Login(ctx, "rider", "horse")
	if err != nil {
		t.Fatal(err)
	}

	access, err := f.serv.Refresh(ctx, &model.AuthData{SessionID: data.SessionID, RefreshToken: data.RefreshToken})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := token.VerifyToken(access, f.jwt.Secret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.SessionID != data.SessionID {
		t.Errorf("refresh must keep the session, got %q", claims.SessionID)
	}

	if _, err = f.serv.Refresh(ctx, &model.AuthData{SessionID: data.SessionID, RefreshToken: "forged"}); !errors.Is(err, model.ErrInvalidToken) {
		t.Errorf("forged token: err = %v", err)
	}
	if _, err = f.serv.Refresh(ctx, &model.AuthData{SessionID: "nope", RefreshToken: data.RefreshToken}); !errors.Is(err, model.ErrSessionNotFound) {
		t.Errorf("unknown session: err = %v", err)
	}
}

func TestLogout_ReleasesEngine(t *testing.T) {
	f := newFixture()
	f.addUser(t, "rider", "horse", model.StatusActive)
	ctx := servicetest.PlayerContext(1, "x")

	data, err := f.serv.Login(ctx, "rider", "horse")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = f.registry.Session(data.SessionID); err != nil {
		t.Fatal(err)
	}

	if err = f.serv.Logout(ctx, data.SessionID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.sessions.Has(data.SessionID) {
		t.Error("session not deleted")
	}
	if f.registry.Len() != 0 {
		t.Error("engine of a closed session must be released")
	}
	if _, err = f.registry.Session(data.SessionID); !errors.Is(err, engine.ErrSessionClosed) {
		t.Errorf("logged out session got an engine back: %v", err)
	}
	if err = f.serv.Logout(ctx, ""); !errors.Is(err, model.ErrSessionNotFound) {
		t.Errorf("empty session: err = %v", err)
	}
}

func TestProfile(t *testing.T) {
	f := newFixture()
	id := f.addUser(t, "rider", "horse", model.StatusActive)

	user, err := f.serv.Profile(servicetest.PlayerContext(id, "x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Login != "rider" {
		t.Errorf("login = %q", user.Login)
	}
}

func TestEnsureAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if err := f.serv.EnsureAdmin(ctx, "boss", "admin123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	admin, err := f.users.GetUserByLogin(ctx, "boss")
	if err != nil {
		t.Fatal(err)
	}
	if admin.Role != model.RoleAdmin || admin.Balance != 0 || !pass.VerifyPassword(admin.Password, "admin123") {
		t.Errorf("admin = %+v", admin)
	}

	// повторный вызов ничего не создаёт
	if err = f.serv.EnsureAdmin(ctx, "boss", "other-password"); err != nil {
		t.Fatalf("second call: %v", err)
	}
	again, _ := f.users.GetUserByLogin(ctx, "boss")
	if again.Password != admin.Password {
		t.Error("existing admin was overwritten")
	}

	if err = f.serv.EnsureAdmin(ctx, "", ""); err != nil {
		t.Errorf("empty login: %v", err)
	}
	if err = f.serv.EnsureAdmin(ctx, "root", "123"); !errors.Is(err, model.ErrInvalidUserData) {
		t.Errorf("short password err = %v", err)
	}
}
