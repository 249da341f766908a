// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/ff-to-go/models"
)

// StructuredConfig is the top-level configuration container for the
// ff-to-go server and terminal client. It aggregates all sub-configurations
// and is populated by merging values from command-line flags, environment
// variables, an optional config file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session token
	// parameters, the via tag and the application version.
	App App `envPrefix:"APP_"`

	// Display holds the default display settings of a new session.
	Display Display `envPrefix:"DISPLAY_"`

	// Cache holds settings of the public feed cache.
	Cache Cache `envPrefix:"CACHE_"`

	// Adapter holds settings of the remote feed API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the account database and the session
	// store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and rate limit settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds settings used only by the terminal client.
	Client Client `envPrefix:"CLIENT_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via the CONFIG environment variable or the -c / --config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionSignKey is the secret key used to sign and verify session
	// tokens. Must be kept confidential.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is how long a session and its token stay valid.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// Via is the client name attached to shared entries and comments.
	// Env: APP_VIA
	Via string `env:"VIA"`

	// SiteURL is the public URL of this front-end. Links to it are never
	// routed through the mobile proxy.
	// Env: APP_SITE_URL
	SiteURL string `env:"SITE_URL"`

	// Version is the version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Display holds the settings a new session starts with.
type Display struct {
	Num               int    `env:"NUM"`
	FontSize          int    `env:"FONT_SIZE"`
	GoogleMobileProxy bool   `env:"GOOGLE_MOBILE_PROXY"`
	Media             bool   `env:"MEDIA"`
	NewWindow         bool   `env:"NEW_WINDOW"`
	ProxyURL          string `env:"PROXY_URL"`
}

// Settings returns the display settings new sessions start with.
func (d Display) Settings() models.Settings {
	return models.Settings{
		Num:               d.Num,
		FontSize:          d.FontSize,
		NewWindow:         d.NewWindow,
		GoogleMobileProxy: d.GoogleMobileProxy,
		Media:             d.Media,
	}
}

// Cache holds settings of the public feed cache.
type Cache struct {
	// PublicFeedTTL is how long an anonymous public feed page is served from
	// memory.
	PublicFeedTTL time.Duration `env:"PUBLIC_FEED_TTL"`
	// MaxKeys bounds the number of cached pages.
	MaxKeys int `env:"MAX_KEYS"`
}

// Adapter holds settings of the remote feed API client.
type Adapter struct {
	// BaseURL is the root of the remote API (e.g. "http://friendfeed.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the maximum number of outbound requests per second.
	// Zero disables the limiter.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the account database connection settings.
	DB DB `envPrefix:"DB_"`

	// Sessions holds the session store settings.
	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// DB holds connection settings for the account database.
type DB struct {
	// DSN selects the driver: "postgres://" and "postgresql://" open
	// PostgreSQL, anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sessions holds settings of the bolt session store.
type Sessions struct {
	// Path is the bolt database file.
	// Env: STORAGE_SESSIONS_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the maximum number of requests per second accepted from a
	// single remote address.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionCleanupInterval is how often expired sessions are purged.
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL"`
}

// Client holds settings of the terminal client.
type Client struct {
	Nickname  string `env:"NICKNAME"`
	RemoteKey string `env:"REMOTE_KEY"`
	LogPath   string `env:"LOG_PATH"`
	// Feed is the feed shown on start: "home" or "public".
	Feed string `env:"FEED"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. For every field the first source that sets it
// wins, in the following order:
//  1. Command-line flags
//  2. Environment variables
//  3. Config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
