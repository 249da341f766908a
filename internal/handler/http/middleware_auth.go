package http

import (
	"net/http"

	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/service"
	"github.com/MKhiriev/ff-to-go/internal/utils"
	"github.com/MKhiriev/ff-to-go/models"
)

// withSession resolves the bearer token of the request, if any, and stores
// the session in the request context.
//
// A request without an "Authorization" header is served as an anonymous
// reader. A header that cannot be parsed, or a token whose session is
// unknown or expired, is rejected with 401 so that the client knows to drop
// it and log in again.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Msg("malformed authorization header")
			h.writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		session, err := h.services.SessionService.Resolve(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("session resolution failed")
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, &session)))
	})
}

// requireCredentials rejects requests whose session carries no remote
// credentials.
func (h *Handler) requireCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !sessionFromRequest(r).Authenticated() {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("credentials required")
			h.writeError(w, r, service.ErrCredentialsRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionFromRequest returns the session resolved by withSession, or nil for
// an anonymous reader.
func sessionFromRequest(r *http.Request) *models.Session {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return nil
	}
	return session
}
