package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/ff-to-go/internal/adapter"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/models"
	"github.com/go-chi/render"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any, status int) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// writeError answers with the status mapped from err. Client errors carry the
// error text; server errors only the status text.
//
// A remote 401 means the stored remote key is no longer valid, so the
// credentials of the session are dropped before answering.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if errors.Is(err, adapter.ErrUnauthorized) {
		if dropErr := h.services.SessionService.DropCredentials(r.Context(), sessionFromRequest(r)); dropErr != nil {
			log.Err(dropErr).Str("func", "*Handler.writeError").Msg("error dropping session credentials")
		}
	}

	status := statusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	}

	writeJSON(w, r, errorResponse{Error: message}, status)
}

// decodeJSON reads the request body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	if err := render.DecodeJSON(r.Body, v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// setBearer hands the session token back to the client.
func setBearer(w http.ResponseWriter, token models.Token) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrMethodNotAllowed)
}
