package game

import (
	"flying_horse_backend/internal/api/apierr"
	dto "flying_horse_backend/internal/api/dto/game"
	"flying_horse_backend/internal/converter"
	"flying_horse_backend/internal/service"
	"flying_horse_backend/pkg/req"
	"flying_horse_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Config bet list, лестница множителей и RTP. Доступен без токена
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.serv.Config(r.Context())
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToConfigResponse(cfg))
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.serv.Balance(r.Context())
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (h *Handler) Launch(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.LaunchRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, "Invalid request")
		return
	}
	if payload.BetAmount == 0 || payload.SpringMultiplier == 0 {
		apierr.BadRequest(w, "betAmount and springMultiplier are required")
		return
	}

	result, err := h.serv.Launch(r.Context(), converter.ToLaunch(payload))
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLaunchResponse(*result))
}

func (h *Handler) Shoot(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ShootRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, "Invalid request")
		return
	}
	if payload.BetAmount == 0 || payload.CurrentMultiplier == 0 || payload.PinataHits == nil {
		apierr.BadRequest(w, "Missing required fields")
		return
	}

	result, err := h.serv.Shoot(r.Context(), converter.ToShoot(payload))
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToShootResponse(*result))
}
