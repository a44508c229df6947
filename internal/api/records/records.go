package records

import (
	"flying_horse_backend/internal/api/apierr"
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

// History ?page=1&limit=50
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	page, err := h.serv.History(r.Context(), req.QueryInt(r, "page", 1), req.QueryInt(r, "limit", 50))
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(page))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.serv.Stats(r.Context())
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(st))
}
