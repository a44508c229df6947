package admin

import (
	"encoding/json"
	dto "flying_horse_backend/internal/api/dto/admin"
	"flying_horse_backend/internal/engine"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/internal/repository/stats_repo"
	"flying_horse_backend/internal/service/admin"
	"flying_horse_backend/internal/service/servicetest"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type fixture struct {
	users    *servicetest.Users
	registry *engine.Registry
	router   chi.Router
}

func newFixture() *fixture {
	f := &fixture{
		users:    servicetest.NewUsers(),
		registry: engine.NewRegistry(0.96),
	}
	serv := admin.NewService(
		&servicetest.TxManager{},
		f.users,
		servicetest.NewRecords(),
		servicetest.NewConfigs(),
		stats_repo.NewStatsRepository(0.96),
		f.registry,
		servicetest.DefaultGameConfig(),
	)
	h := NewHandler(HandlerDeps{Serv: serv})

	r := chi.NewRouter()
	r.Get("/admin/players", h.Players)
	r.Get("/admin/players/{id}", h.PlayerDetail)
	r.Put("/admin/players/{id}/balance", h.UpdateBalance)
	r.Put("/admin/players/{id}/status", h.UpdateStatus)
	r.Get("/admin/reports", h.Reports)
	r.Get("/admin/game-config", h.GameConfig)
	r.Put("/admin/game-config", h.UpdateGameConfig)
	f.router = r
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r = r.WithContext(servicetest.AdminContext(1))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, r)
	return rec
}

func (f *fixture) addPlayer(login string, balance int64) int {
	return f.users.Add(model.User{Login: login, Name: login, Balance: balance, Role: model.RolePlayer, Status: model.StatusActive})
}

func TestPlayers(t *testing.T) {
	f := newFixture()
	f.addPlayer("alice", 1000)
	f.addPlayer("bob", 2000)
	f.addPlayer("alina", 3000)

	rec := f.do(http.MethodGet, "/admin/players?search=ali&limit=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var out dto.PlayersResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Players) != 1 || out.Pagination.Total != 2 || out.Pagination.TotalPages != 2 || out.Pagination.Limit != 1 {
		t.Errorf("response = %+v", out)
	}
}

func TestPlayerDetail(t *testing.T) {
	f := newFixture()
	id := f.addPlayer("alice", 1050)

	rec := f.do(http.MethodGet, "/admin/players/"+strconv.Itoa(id), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out dto.PlayerDetailResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Player.ID != id || out.Player.Balance != 10.5 {
		t.Errorf("player = %+v", out.Player)
	}

	if rec = f.do(http.MethodGet, "/admin/players/abc", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", rec.Code)
	}
	if rec = f.do(http.MethodGet, "/admin/players/999", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rec.Code)
	}
}

func TestUpdateBalance(t *testing.T) {
	f := newFixture()
	id := f.addPlayer("alice", 1000)

	rec := f.do(http.MethodPut, "/admin/players/"+strconv.Itoa(id)+"/balance", `{"amount":25.5,"reason":"bonus"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var out dto.BalanceResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.PreviousBalance != 10 || out.Adjustment != 25.5 || out.NewBalance != 35.5 {
		t.Errorf("response = %+v", out)
	}

	if rec = f.do(http.MethodPut, "/admin/players/"+strconv.Itoa(id)+"/balance", `{"amount":-100}`); rec.Code != http.StatusBadRequest {
		t.Errorf("negative result status = %d, want 400", rec.Code)
	}
	if rec = f.do(http.MethodPut, "/admin/players/"+strconv.Itoa(id)+"/balance", `{"reason":"x"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing amount status = %d, want 400", rec.Code)
	}
	if got := f.users.Get(id).Balance; got != 3550 {
		t.Errorf("stored balance = %d, want 3550", got)
	}
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture()
	id := f.addPlayer("alice", 0)

	rec := f.do(http.MethodPut, "/admin/players/"+strconv.Itoa(id)+"/status", `{"status":"suspended"}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if f.users.Get(id).Status != model.StatusSuspended {
		t.Error("status not stored")
	}

	if rec = f.do(http.MethodPut, "/admin/players/"+strconv.Itoa(id)+"/status", `{"status":"banned"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("invalid status code = %d, want 400", rec.Code)
	}
}

func TestGameConfig(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPut, "/admin/game-config", `{"betList":[5,1,2,3,4],"rtp":0.9}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var out dto.GameConfigResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.RTP != 0.9 || len(out.BetList) != 5 || out.BetList[0] != 1 || out.BetList[4] != 5 {
		t.Errorf("response = %+v", out)
	}
	if f.registry.TargetRTP() != 0.9 {
		t.Errorf("engines rtp = %v, want 0.9", f.registry.TargetRTP())
	}

	rec = f.do(http.MethodGet, "/admin/game-config", "")
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.RTP != 0.9 {
		t.Errorf("stored rtp = %v", out.RTP)
	}

	for _, body := range []string{`{"rtp":1.5}`, `{"betList":[1,2]}`, `{"betList":[1,2,3,4,-5]}`} {
		if rec = f.do(http.MethodPut, "/admin/game-config", body); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestReports(t *testing.T) {
	f := newFixture()
	f.addPlayer("alice", 0)

	rec := f.do(http.MethodGet, "/admin/reports", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var out dto.ReportsResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Overview.TotalPlayers != 1 {
		t.Errorf("overview = %+v", out.Overview)
	}
}
