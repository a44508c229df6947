// Package servicetest in-memory репозитории, менеджер транзакций и
// детерминированные движки для тестов сервисов и хендлеров.
package servicetest

import (
	"context"
	"flying_horse_backend/internal/engine"
	"flying_horse_backend/internal/middleware"
	"flying_horse_backend/internal/model"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// TxManager выполняет функцию без транзакции
type TxManager struct {
	Calls int
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

func (m *TxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// Users репозиторий пользователей в памяти
type Users struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]*model.User
}

func NewUsers() *Users {
	return &Users{byID: make(map[int]*model.User)}
}

// Add добавляет пользователя и возвращает его ID
func (u *Users) Add(user model.User) int {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.nextID++
	user.ID = u.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Date(2026, 1, 1, 0, 0, u.nextID, 0, time.UTC)
	}
	u.byID[user.ID] = &user
	return user.ID
}

// Get копия пользователя для проверок в тестах
func (u *Users) Get(id int) model.User {
	u.mu.Lock()
	defer u.mu.Unlock()
	return *u.byID[id]
}

func (u *Users) CreateUser(_ context.Context, user *model.User) (int, error) {
	u.mu.Lock()
	for _, existing := range u.byID {
		if existing.Login == user.Login {
			u.mu.Unlock()
			return 0, model.ErrLoginTaken
		}
	}
	u.mu.Unlock()

	return u.Add(*user), nil
}

func (u *Users) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, user := range u.byID {
		if user.Login == login {
			cp := *user
			return &cp, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (u *Users) GetUserByID(_ context.Context, id int) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.byID[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (u *Users) GetBalance(_ context.Context, id int) (int64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.byID[id]
	if !ok {
		return 0, model.ErrUserNotFound
	}
	return user.Balance, nil
}

func (u *Users) UpdateBalance(_ context.Context, id int, balance int64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.byID[id]
	if !ok {
		return model.ErrUserNotFound
	}
	user.Balance = balance
	return nil
}

func (u *Users) ListUsers(_ context.Context, filter model.PlayerFilter) ([]model.User, int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var matched []model.User
	for _, user := range u.byID {
		if filter.Search == "" ||
			strings.Contains(strings.ToLower(user.Login), strings.ToLower(filter.Search)) ||
			strings.Contains(strings.ToLower(user.Name), strings.ToLower(filter.Search)) {
			matched = append(matched, *user)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := len(matched)
	from := (filter.Page - 1) * filter.Limit
	if from > total {
		from = total
	}
	to := from + filter.Limit
	if to > total {
		to = total
	}
	return matched[from:to], total, nil
}

func (u *Users) CountUsers(_ context.Context, status string) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	n := 0
	for _, user := range u.byID {
		if status == "" || user.Status == status {
			n++
		}
	}
	return n, nil
}

func (u *Users) UpdateStatus(_ context.Context, id int, status string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.byID[id]
	if !ok {
		return model.ErrUserNotFound
	}
	user.Status = status
	return nil
}

// Sessions репозиторий сессий в памяти
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]model.Session
	users    *Users
}

func NewSessions(users *Users) *Sessions {
	return &Sessions{sessions: make(map[string]model.Session), users: users}
}

// Has есть ли сессия
func (s *Sessions) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok
}

func (s *Sessions) CreateSession(_ context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *Sessions) GetRefreshTokenBySessionID(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || !sess.ExpiresAt.After(time.Now()) {
		return "", model.ErrSessionNotFound
	}
	return sess.RefreshToken, nil
}

func (s *Sessions) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *Sessions) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return s.users.GetUserByID(ctx, sess.UserID)
}

func (s *Sessions) DeleteExpiredSessions(_ context.Context, now time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for id, sess := range s.sessions {
		if !sess.ExpiresAt.After(now) {
			delete(s.sessions, id)
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Records репозиторий записей раундов в памяти
type Records struct {
	mu      sync.Mutex
	records []model.GameRecord
}

func NewRecords() *Records {
	return &Records{}
}

// All копия всех записей в порядке создания
func (r *Records) All() []model.GameRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.GameRecord(nil), r.records...)
}

func (r *Records) CreateRecord(_ context.Context, rec *model.GameRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = int64(len(r.records) + 1)
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	r.records = append(r.records, *rec)
	return nil
}

func (r *Records) byUser(userID int) []model.GameRecord {
	var out []model.GameRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].UserID == userID {
			out = append(out, r.records[i])
		}
	}
	return out
}

func (r *Records) ListByUser(_ context.Context, userID, limit, offset int) ([]model.GameRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.byUser(userID)
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *Records) CountByUser(_ context.Context, userID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byUser(userID)), nil
}

func (r *Records) CountByUsers(_ context.Context, userIDs []int) (map[int]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[int]int, len(userIDs))
	for _, id := range userIDs {
		if n := len(r.byUser(id)); n > 0 {
			counts[id] = n
		}
	}
	return counts, nil
}

func aggregate(records []model.GameRecord) model.PlayerStats {
	var st model.PlayerStats
	for _, rec := range records {
		st.TotalBets++
		st.TotalWagered += rec.BetAmount
		st.TotalWon += rec.WinAmount
		if rec.WinAmount > st.BiggestWin {
			st.BiggestWin = rec.WinAmount
		}
		if rec.Result == model.ResultJackpot {
			st.Jackpots++
		}
	}
	return st
}

func (r *Records) StatsByUser(_ context.Context, userID int) (model.PlayerStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return aggregate(r.byUser(userID)), nil
}

func (r *Records) Overall(_ context.Context) (model.PlayerStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return aggregate(r.records), nil
}

func (r *Records) Daily(_ context.Context, since time.Time) ([]model.DailyReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDay := make(map[time.Time]*model.DailyReport)
	for _, rec := range r.records {
		if rec.CreatedAt.Before(since) {
			continue
		}
		day := rec.CreatedAt.Truncate(24 * time.Hour)
		d, ok := byDay[day]
		if !ok {
			d = &model.DailyReport{Date: day}
			byDay[day] = d
		}
		d.Bets++
		d.Wagered += rec.BetAmount
		d.Paid += rec.WinAmount
	}

	days := make([]model.DailyReport, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.After(days[j].Date) })
	return days, nil
}

// Configs репозиторий конфига игры в памяти
type Configs struct {
	mu  sync.Mutex
	cfg *model.GameConfig
}

func NewConfigs() *Configs {
	return &Configs{}
}

func (c *Configs) GetOrCreate(_ context.Context, defaults model.GameConfig) (*model.GameConfig, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfg == nil {
		cp := defaults
		c.cfg = &cp
	}
	cp := *c.cfg
	return &cp, nil
}

func (c *Configs) Save(_ context.Context, cfg model.GameConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = &cfg
	return nil
}

// GameConfig значения по умолчанию для игры
type GameConfig struct {
	Bets     []float64
	Steps    []float64
	RTP      float64
	Starting float64
}

// DefaultGameConfig короткий bet list, RTP 0.96 и стартовый баланс 5000
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Bets:     []float64{0.2, 1, 2, 5, 10, 50},
		Steps:    []float64{2, 5, 10, 25, 50, 100, 200, 500, 1000, 10000},
		RTP:      0.96,
		Starting: 5000,
	}
}

func (g *GameConfig) BetList() []float64       { return g.Bets }
func (g *GameConfig) MulSteps() []float64      { return g.Steps }
func (g *GameConfig) TargetRTP() float64       { return g.RTP }
func (g *GameConfig) StartingBalance() float64 { return g.Starting }

// JWTConfig конфиг токенов для тестов
type JWTConfig struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{Secret: []byte("test-secret"), AccessTTL: time.Minute, RefreshTTL: time.Hour}
}

func (j *JWTConfig) AccessTokenSecretKey() []byte        { return j.Secret }
func (j *JWTConfig) AccessTokenDuration() time.Duration  { return j.AccessTTL }
func (j *JWTConfig) RefreshTokenDuration() time.Duration { return j.RefreshTTL }

// Source источник, который отдаёт заданные числа по кругу
type Source struct {
	mu    sync.Mutex
	draws []float64
	next  int
}

func NewSource(draws ...float64) *Source {
	return &Source{draws: draws}
}

// Push заменяет очередь чисел
func (s *Source) Push(draws ...float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draws = draws
	s.next = 0
}

func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

// FixedLuck модулятор с постоянной удачей
type FixedLuck float64

func (f FixedLuck) Advance() float64 { return float64(f) }

// NewRegistry реестр, в котором все движки читают src и имеют удачу 1.0
func NewRegistry(rtp float64, src engine.RandomSource) *engine.Registry {
	return engine.NewRegistry(rtp, engine.WithEngineOptions(func() []engine.Option {
		return []engine.Option{engine.WithRandomSource(src), engine.WithModulator(FixedLuck(1.0))}
	}))
}

// PlayerContext контекст запроса игрока
func PlayerContext(userID int, sessionID string) context.Context {
	return middleware.WithIdentity(context.Background(), middleware.Identity{
		UserID:    userID,
		Role:      model.RolePlayer,
		SessionID: sessionID,
	})
}

// AdminContext контекст запроса администратора
func AdminContext(userID int) context.Context {
	return middleware.WithIdentity(context.Background(), middleware.Identity{
		UserID:    userID,
		Role:      model.RoleAdmin,
		SessionID: "admin-session",
	})
}
