// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/service"
	"github.com/MKhiriev/ff-to-go/internal/utils"
	"github.com/MKhiriev/ff-to-go/models"
)

// accountResponse is returned by register and login. Next is the local page
// the client should continue to.
type accountResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
	Next  string      `json:"next"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

func (h *Handler) accountRegister(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.accountRegister").Msg("Invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user registration")
		h.writeError(w, r, err)
		return
	}

	h.attachAccount(w, r, user, req.Next)
}

func (h *Handler) accountLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.accountLogin").Msg("Invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	h.attachAccount(w, r, user, req.Next)
}

// attachAccount links user to the caller's session and answers with a token
// for it.
func (h *Handler) attachAccount(w http.ResponseWriter, r *http.Request, user models.User, next string) {
	_, token, err := h.services.SessionService.AttachAccount(r.Context(), sessionFromRequest(r), user.UserID)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", user.UserID).Msg("attaching account to session failed")
		h.writeError(w, r, err)
		return
	}

	setBearer(w, token)
	writeJSON(w, r, accountResponse{
		User:  user,
		Token: token.SignedString,
		Next:  utils.SafeNext(next),
	}, http.StatusOK)
}

func (h *Handler) accountLogout(w http.ResponseWriter, r *http.Request) {
	err := h.services.SessionService.DetachAccount(r.Context(), sessionFromRequest(r))
	if err != nil && !errors.Is(err, service.ErrNoAccount) {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, accountResponse{Next: utils.SafeNext(r.URL.Query().Get("next_url"))}, http.StatusOK)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(r)
	if session == nil {
		h.writeError(w, r, service.ErrNoAccount)
		return
	}

	user, err := h.services.AuthService.User(r.Context(), session.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session := sessionFromRequest(r)
	if session == nil || session.UserID == 0 {
		h.writeError(w, r, service.ErrNoAccount)
		return
	}

	var req passwordRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.changePassword").Msg("Invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.SetPassword(r.Context(), session.UserID, req.Password); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
