// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a "Bearer <token>" pair.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrUnknownFeedType is returned for a user feed kind other than
	// comments, likes, discussion or friends.
	ErrUnknownFeedType = errors.New("unknown feed type")

	// ErrRouteNotFound is returned for paths no route matches.
	ErrRouteNotFound = errors.New("not found")

	// ErrMethodNotAllowed is returned when a route exists but does not
	// handle the request method.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
