package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

// NetAddress holds structured network address data for host and port.
// It implements the flags.Unmarshaler interface.
type NetAddress struct {
	Host string
	Port int
}

// flagOptions lists every command-line flag. Unset flags keep their zero
// value so that lower-priority sources can fill them.
type flagOptions struct {
	Config string `short:"c" long:"config" description:"config file path (json or yaml)"`

	Address        NetAddress    `short:"a" long:"address" description:"HTTP listen address host:port"`
	RequestTimeout time.Duration `long:"request-timeout" description:"inbound request timeout (e.g. 30s)"`
	RateLimit      float64       `long:"rate-limit" description:"inbound requests per second per client"`

	DSN          string `short:"d" long:"dsn" description:"account database DSN (postgres URL or sqlite file)"`
	SessionsPath string `long:"sessions" description:"bolt file for sessions"`

	RemoteURL     string        `long:"remote-url" description:"remote feed API base URL"`
	RemoteTimeout time.Duration `long:"remote-timeout" description:"remote API request timeout"`
	RemoteRate    float64       `long:"remote-rate" description:"remote API requests per second (0 - unlimited)"`

	SessionSignKey  string        `long:"session-sign-key" description:"session token signing key"`
	SessionIssuer   string        `long:"session-issuer" description:"session token issuer"`
	SessionDuration time.Duration `long:"session-duration" description:"session lifetime (e.g. 720h)"`
	Via             string        `long:"via" description:"client name attached to shared entries"`
	SiteURL         string        `long:"site-url" description:"public URL of this site"`
	Version         string        `long:"app-version" description:"application version"`

	Num       int    `long:"num" description:"default page size (1..30)"`
	FontSize  int    `long:"font-size" description:"default font size"`
	ProxyURL  string `long:"proxy-url" description:"mobile proxy prefix"`
	GMP       bool   `long:"gmp" description:"route links through the mobile proxy by default"`
	Media     bool   `long:"media" description:"show media by default"`
	NewWindow bool   `long:"new-window" description:"open links in a new window by default"`

	CacheTTL     time.Duration `long:"cache-ttl" description:"public feed cache TTL"`
	CacheMaxKeys int           `long:"cache-max-keys" description:"public feed cache size"`

	CleanupInterval time.Duration `long:"session-cleanup-interval" description:"expired session purge interval"`

	Nickname  string `short:"n" long:"nickname" description:"remote nickname (client)"`
	RemoteKey string `short:"k" long:"remote-key" description:"remote key (client)"`
	LogPath   string `long:"log" description:"log file (client)"`
	Feed      string `long:"feed" description:"feed shown on start: home or public (client)"`
}

// parseFlags parses args (without the program name) into a
// [StructuredConfig].
func parseFlags(args []string) (*StructuredConfig, error) {
	var opts flagOptions

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionSignKey:  opts.SessionSignKey,
			SessionIssuer:   opts.SessionIssuer,
			SessionDuration: opts.SessionDuration,
			Via:             opts.Via,
			SiteURL:         opts.SiteURL,
			Version:         opts.Version,
		},
		Display: Display{
			Num:               opts.Num,
			FontSize:          opts.FontSize,
			GoogleMobileProxy: opts.GMP,
			Media:             opts.Media,
			NewWindow:         opts.NewWindow,
			ProxyURL:          opts.ProxyURL,
		},
		Cache: Cache{
			PublicFeedTTL: opts.CacheTTL,
			MaxKeys:       opts.CacheMaxKeys,
		},
		Adapter: Adapter{
			BaseURL:        opts.RemoteURL,
			RequestTimeout: opts.RemoteTimeout,
			RateLimit:      opts.RemoteRate,
		},
		Storage: Storage{
			DB:       DB{DSN: opts.DSN},
			Sessions: Sessions{Path: opts.SessionsPath},
		},
		Server: Server{
			HTTPAddress:    opts.Address.String(),
			RequestTimeout: opts.RequestTimeout,
			RateLimit:      opts.RateLimit,
		},
		Workers: Workers{
			SessionCleanupInterval: opts.CleanupInterval,
		},
		Client: Client{
			Nickname:  opts.Nickname,
			RemoteKey: opts.RemoteKey,
			LogPath:   opts.LogPath,
			Feed:      opts.Feed,
		},
		ConfigFilePath: opts.Config,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// UnmarshalFlag implements flags.Unmarshaler.
func (a *NetAddress) UnmarshalFlag(value string) error {
	return a.Set(value)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
