package auth

import (
	"flying_horse_backend/internal/api/apierr"
	dto "flying_horse_backend/internal/api/dto/auth"
	"flying_horse_backend/internal/converter"
	"flying_horse_backend/internal/middleware"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/internal/service"
	"flying_horse_backend/pkg/req"
	"flying_horse_backend/pkg/resp"
	"net/http"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
	refreshCookiePath  = "/api/auth"
	cookieMaxAge       = 30 * 24 * 60 * 60 // 30 дней
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Register создаёт игрока, открывает сессию и возвращает токены.
// session_id и refresh_token дополнительно ставятся в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, "Invalid request")
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUserModel(&requestBody))
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	setSessionIDCookie(w, data.SessionID)
	setRefreshTokenCookie(w, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToAuthResponse(data))
}

// Login открывает новую сессию
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, "Invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	setSessionIDCookie(w, data.SessionID)
	setRefreshTokenCookie(w, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAuthResponse(data))
}

// Refresh выдаёт новый access токен по session_id и refresh_token.
// Сначала смотрит cookies, потом тело запроса
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	data := model.AuthData{}
	if c, err := r.Cookie(sessionIDCookie); err == nil {
		data.SessionID = c.Value
	}
	if c, err := r.Cookie(refreshTokenCookie); err == nil {
		data.RefreshToken = c.Value
	}

	if data.SessionID == "" || data.RefreshToken == "" {
		body, err := req.Decode[dto.RefreshRequest](r.Body)
		if err != nil || body.SessionID == "" || body.RefreshToken == "" {
			resp.WriteError(w, http.StatusUnauthorized, "No refresh token")
			return
		}
		data.SessionID = body.SessionID
		data.RefreshToken = body.RefreshToken
	}

	accessToken, err := h.serv.Refresh(r.Context(), &data)
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{Token: accessToken})
}

// Logout закрывает текущую сессию
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	id, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	if err = h.serv.Logout(r.Context(), id.SessionID); err != nil {
		apierr.Write(w, r, err)
		return
	}

	deleteSessionIDCookie(w)
	deleteRefreshTokenCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

// Profile текущий игрок
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.serv.Profile(r.Context())
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{Player: converter.ToAuthPlayer(user)})
}

// setRefreshTokenCookie устанавливает cookie с refresh_token
func setRefreshTokenCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     refreshCookiePath,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   cookieMaxAge,
	})
}

// deleteRefreshTokenCookie удаляет cookie с refresh_token
func deleteRefreshTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     refreshCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// setSessionIDCookie устанавливает cookie с session_id
func setSessionIDCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionIDCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   cookieMaxAge,
	})
}

// deleteSessionIDCookie удаляет cookie с session_id
func deleteSessionIDCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionIDCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
