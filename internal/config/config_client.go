package config

import (
	"fmt"
	"os"
)

// ClientCredentials are the remote API credentials of the terminal client.
// Both empty means anonymous access.
type ClientCredentials struct {
	Nickname  string
	RemoteKey string
}

// ClientConfig is the terminal client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains the via tag used when liking or commenting.
	App App
	// Display contains the page size and display toggles.
	Display Display
	// Cache contains the public feed cache settings.
	Cache Cache
	// Adapter contains the remote API settings.
	Adapter Adapter
	// Credentials are the remote nickname and key.
	Credentials ClientCredentials
	// LogPath is the log file; empty means next to the executable.
	LogPath string
	// Feed is the feed shown on start.
	Feed string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It merges the same sources as [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App:     cfg.App,
		Display: cfg.Display,
		Cache:   cfg.Cache,
		Adapter: cfg.Adapter,
		Credentials: ClientCredentials{
			Nickname:  cfg.Client.Nickname,
			RemoteKey: cfg.Client.RemoteKey,
		},
		LogPath: cfg.Client.LogPath,
		Feed:    cfg.Client.Feed,
	}
}
