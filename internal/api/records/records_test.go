package records

import (
	"encoding/json"
	dto "flying_horse_backend/internal/api/dto/records"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/internal/repository/stats_repo"
	"flying_horse_backend/internal/service/game"
	"flying_horse_backend/internal/service/servicetest"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newHandler(t *testing.T, records int) (*Handler, int) {
	t.Helper()

	users := servicetest.NewUsers()
	recs := servicetest.NewRecords()
	userID := users.Add(model.User{Login: "rider", Role: model.RolePlayer, Status: model.StatusActive})

	ctx := servicetest.PlayerContext(userID, "session-1")
	for i := 0; i < records; i++ {
		err := recs.CreateRecord(ctx, &model.GameRecord{
			RoundID: "r", UserID: userID, BetAmount: 100, WinAmount: 50,
			GamePhase: model.PhaseShoot, Result: model.ResultSmallWin,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	serv := game.NewService(
		&servicetest.TxManager{},
		users,
		recs,
		servicetest.NewConfigs(),
		stats_repo.NewStatsRepository(0.96),
		servicetest.NewRegistry(0.96, servicetest.NewSource(0.5)),
		servicetest.DefaultGameConfig(),
	)
	return NewHandler(HandlerDeps{Serv: serv}), userID
}

func TestHistory(t *testing.T) {
	h, userID := newHandler(t, 5)

	r := httptest.NewRequest(http.MethodGet, "/records/history?page=2&limit=2", nil)
	r = r.WithContext(servicetest.PlayerContext(userID, "session-1"))
	rec := httptest.NewRecorder()
	h.History(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var out dto.HistoryResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Records) != 2 || out.Pagination.Page != 2 || out.Pagination.Total != 5 || out.Pagination.TotalPages != 3 {
		t.Errorf("response = %+v", out)
	}
}

func TestStats(t *testing.T) {
	h, userID := newHandler(t, 4)

	r := httptest.NewRequest(http.MethodGet, "/records/stats", nil)
	r = r.WithContext(servicetest.PlayerContext(userID, "session-1"))
	rec := httptest.NewRecorder()
	h.Stats(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out dto.StatsResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.TotalBets != 4 || out.TotalWagered != 4 || out.TotalWon != 2 {
		t.Errorf("stats = %+v", out)
	}
}

func TestHistory_Anonymous(t *testing.T) {
	h, _ := newHandler(t, 0)

	rec := httptest.NewRecorder()
	h.History(rec, httptest.NewRequest(http.MethodGet, "/records/history", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
