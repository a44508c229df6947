package admin

import (
	"flying_horse_backend/internal/api/apierr"
	dto "flying_horse_backend/internal/api/dto/admin"
	"flying_horse_backend/internal/converter"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/internal/service"
	"flying_horse_backend/pkg/req"
	"flying_horse_backend/pkg/resp"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.AdminService
}

type Handler struct {
	serv service.AdminService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Players ?page=1&limit=20&search=
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	page, err := h.serv.Players(r.Context(), model.PlayerFilter{
		Page:   req.QueryInt(r, "page", 1),
		Limit:  req.QueryInt(r, "limit", 20),
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayersResponse(page))
}

func (h *Handler) PlayerDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	detail, err := h.serv.PlayerDetail(r.Context(), id)
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerDetailResponse(detail))
}

func (h *Handler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.BalanceRequest](r.Body)
	if err != nil || payload.Amount == nil {
		apierr.BadRequest(w, "Amount must be number")
		return
	}

	adj, err := h.serv.AdjustBalance(r.Context(), id, *payload.Amount, payload.Reason)
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(adj))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.StatusRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, "Invalid status")
		return
	}

	if err = h.serv.SetStatus(r.Context(), id, payload.Status); err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) Reports(w http.ResponseWriter, r *http.Request) {
	rep, err := h.serv.Reports(r.Context())
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReportsResponse(rep))
}

func (h *Handler) GameConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.serv.GameConfig(r.Context())
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameConfigResponse(cfg))
}

func (h *Handler) UpdateGameConfig(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.GameConfigRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, "Invalid request")
		return
	}

	cfg, err := h.serv.UpdateGameConfig(r.Context(), converter.ToGameConfigUpdate(payload))
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameConfigResponse(cfg))
}

func playerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		apierr.BadRequest(w, "Invalid player id")
		return 0, false
	}
	return id, true
}
