package http

import (
	"net/http"

	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/models"
)

// sessionLoginRequest is the remote login form.
type sessionLoginRequest struct {
	Nickname string `json:"nickname"`
	Key      string `json:"key"`
}

// sessionResponse describes the session of the caller. Token is set when
// the session was created or re-signed by the request.
type sessionResponse struct {
	Token    string          `json:"token,omitempty"`
	Nickname string          `json:"nickname,omitempty"`
	Settings models.Settings `json:"settings"`
	UserID   int64           `json:"user_id,omitempty"`
}

func newSessionResponse(session models.Session, token models.Token) sessionResponse {
	return sessionResponse{
		Token:    token.SignedString,
		Nickname: session.Nickname(),
		Settings: session.Settings,
		UserID:   session.UserID,
	}
}

func (h *Handler) sessionLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req sessionLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.sessionLogin").Msg("Invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	session, token, err := h.services.SessionService.Login(r.Context(), sessionFromRequest(r), models.Credentials{
		Nickname:  req.Nickname,
		RemoteKey: req.Key,
	})
	if err != nil {
		log.Err(err).Str("nickname", req.Nickname).Msg("remote login failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("nickname", session.Nickname()).Msg("remote login succeeded")

	setBearer(w, token)
	writeJSON(w, r, newSessionResponse(session, token), http.StatusOK)
}

func (h *Handler) sessionLogout(w http.ResponseWriter, r *http.Request) {
	current := sessionFromRequest(r)

	if err := h.services.SessionService.Logout(r.Context(), current); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, sessionResponse{Settings: h.settingsOf(current)}, http.StatusOK)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	current := sessionFromRequest(r)

	resp := sessionResponse{Settings: h.settingsOf(current)}
	if current != nil {
		resp.Nickname = current.Nickname()
		resp.UserID = current.UserID
	}

	writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	settings := h.settingsOf(sessionFromRequest(r))
	if err := decodeJSON(r, &settings); err != nil {
		log.Err(err).Str("func", "*Handler.updateSettings").Msg("Invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	session, token, err := h.services.SessionService.UpdateSettings(r.Context(), sessionFromRequest(r), settings)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	setBearer(w, token)
	writeJSON(w, r, newSessionResponse(session, token), http.StatusOK)
}

// settingsOf returns the settings of session, or the defaults for an
// anonymous reader.
func (h *Handler) settingsOf(session *models.Session) models.Settings {
	if session == nil {
		return h.services.SessionService.DefaultSettings()
	}
	return session.Settings
}
