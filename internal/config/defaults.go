package config

import "time"

const (
	defaultNum      = 30
	defaultFontSize = 13
	maxNum          = 30

	// DefaultProxyURL is the Google mobile proxy prefix; the target URL is
	// appended query-escaped.
	DefaultProxyURL = "http://www.google.com/gwt/n?u="
)

// defaultConfig returns the built-in values used for every field no other
// source sets. Boolean display settings default to false so that any source
// can enable them.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:   "ff-to-go",
			SessionDuration: 30 * 24 * time.Hour,
			Via:             "fftogo",
			SiteURL:         "http://www.fftogo.com",
			Version:         "N/A",
		},
		Display: Display{
			Num:      defaultNum,
			FontSize: defaultFontSize,
			ProxyURL: DefaultProxyURL,
		},
		Cache: Cache{
			PublicFeedTTL: time.Minute,
			MaxKeys:       1000,
		},
		Adapter: Adapter{
			BaseURL:        "http://friendfeed.com",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DB:       DB{DSN: "fftogo.db"},
			Sessions: Sessions{Path: "sessions.bdb"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			RateLimit:      10,
		},
		Workers: Workers{
			SessionCleanupInterval: 10 * time.Minute,
		},
		Client: Client{
			Feed: "home",
		},
	}
}
