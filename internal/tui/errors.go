// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/ff-to-go/internal/adapter"
	"github.com/MKhiriev/ff-to-go/internal/service"
)

var (
	errNoLink = errors.New("entry has no link")
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrCredentialsRequired):
		return "Sign in with a nickname and remote key to use this feed"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "The remote key was rejected"
	case errors.Is(err, adapter.ErrForbidden):
		return "Not allowed"
	case errors.Is(err, adapter.ErrNotFound):
		return "Not found"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the feed service is unavailable"
	}

	return err.Error()
}
