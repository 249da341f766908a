package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ff-to-go/internal/adapter"
	"github.com/MKhiriev/ff-to-go/internal/service"
	"github.com/MKhiriev/ff-to-go/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrUnknownFeedType:            http.StatusNotFound,
	ErrRouteNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:           http.StatusMethodNotAllowed,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrCredentialsRequired:     http.StatusUnauthorized,
	service.ErrBadCredentials:          http.StatusUnauthorized,
	service.ErrUnknownAction:           http.StatusNotFound,
	service.ErrNoAccount:               http.StatusNotFound,
	service.ErrSessionNotFound:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrSessionNotFound:    http.StatusUnauthorized,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,

	adapter.ErrBadRequest:          http.StatusBadRequest,
	adapter.ErrUnauthorized:        http.StatusUnauthorized,
	adapter.ErrForbidden:           http.StatusForbidden,
	adapter.ErrNotFound:            http.StatusNotFound,
	adapter.ErrConflict:            http.StatusConflict,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrUnexpectedStatus:    http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
