// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials are the remote API credentials of a signed-in user. They are
// stamped on every outbound call as basic-auth credentials.
type Credentials struct {
	Nickname  string `json:"nickname"`
	RemoteKey string `json:"remote_key"`
}

// Complete reports whether both the nickname and the remote key are set.
func (c Credentials) Complete() bool {
	return c.Nickname != "" && c.RemoteKey != ""
}

// Settings are the per-session display preferences.
type Settings struct {
	// Num is the page size, 1..30.
	Num int `json:"num"`
	// FontSize is the base font size, at least 1.
	FontSize int `json:"fontsize"`
	// NewWindow opens entry links in a new window.
	NewWindow bool `json:"newwindow"`
	// GoogleMobileProxy routes outbound links through the Google mobile proxy.
	GoogleMobileProxy bool `json:"googlemobileproxy"`
	// Media shows entry media (thumbnails, players).
	Media bool `json:"media"`
}

// Session is the server-side state behind a bearer token.
type Session struct {
	ID          string      `json:"id"`
	Credentials Credentials `json:"credentials"`
	Settings    Settings    `json:"settings"`
	// UserID links the session to a local account. Zero when none.
	UserID    int64     `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Authenticated reports whether the session carries remote API credentials.
func (s *Session) Authenticated() bool {
	return s != nil && s.Credentials.Complete()
}

// Nickname returns the remote nickname of the session, or "" for an
// anonymous or nil session.
func (s *Session) Nickname() string {
	if s == nil {
		return ""
	}
	return s.Credentials.Nickname
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
