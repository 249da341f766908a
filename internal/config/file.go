package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML config files.
type fileConfig struct {
	App struct {
		SessionSignKey  string   `json:"session_sign_key" yaml:"session_sign_key"`
		SessionIssuer   string   `json:"session_issuer" yaml:"session_issuer"`
		SessionDuration Duration `json:"session_duration" yaml:"session_duration"`
		Via             string   `json:"via" yaml:"via"`
		SiteURL         string   `json:"site_url" yaml:"site_url"`
		Version         string   `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Display struct {
		Num               int    `json:"num" yaml:"num"`
		FontSize          int    `json:"font_size" yaml:"font_size"`
		GoogleMobileProxy bool   `json:"google_mobile_proxy" yaml:"google_mobile_proxy"`
		Media             bool   `json:"media" yaml:"media"`
		NewWindow         bool   `json:"new_window" yaml:"new_window"`
		ProxyURL          string `json:"proxy_url" yaml:"proxy_url"`
	} `json:"display" yaml:"display"`

	Cache struct {
		PublicFeedTTL Duration `json:"public_feed_ttl" yaml:"public_feed_ttl"`
		MaxKeys       int      `json:"max_keys" yaml:"max_keys"`
	} `json:"cache" yaml:"cache"`

	Adapter struct {
		BaseURL        string   `json:"base_url" yaml:"base_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RateLimit      float64  `json:"rate_limit" yaml:"rate_limit"`
	} `json:"adapter" yaml:"adapter"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Sessions struct {
			Path string `json:"path" yaml:"path"`
		} `json:"sessions" yaml:"sessions"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RateLimit      float64  `json:"rate_limit" yaml:"rate_limit"`
	} `json:"server" yaml:"server"`

	Workers struct {
		SessionCleanupInterval Duration `json:"session_cleanup_interval" yaml:"session_cleanup_interval"`
	} `json:"workers" yaml:"workers"`

	Client struct {
		Nickname  string `json:"nickname" yaml:"nickname"`
		RemoteKey string `json:"remote_key" yaml:"remote_key"`
		LogPath   string `json:"log_path" yaml:"log_path"`
		Feed      string `json:"feed" yaml:"feed"`
	} `json:"client" yaml:"client"`
}

// parseFile reads a config file. Files ending in .yml or .yaml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			SessionSignKey:  fileCfg.App.SessionSignKey,
			SessionIssuer:   fileCfg.App.SessionIssuer,
			SessionDuration: time.Duration(fileCfg.App.SessionDuration),
			Via:             fileCfg.App.Via,
			SiteURL:         fileCfg.App.SiteURL,
			Version:         fileCfg.App.Version,
		},
		Display: Display{
			Num:               fileCfg.Display.Num,
			FontSize:          fileCfg.Display.FontSize,
			GoogleMobileProxy: fileCfg.Display.GoogleMobileProxy,
			Media:             fileCfg.Display.Media,
			NewWindow:         fileCfg.Display.NewWindow,
			ProxyURL:          fileCfg.Display.ProxyURL,
		},
		Cache: Cache{
			PublicFeedTTL: time.Duration(fileCfg.Cache.PublicFeedTTL),
			MaxKeys:       fileCfg.Cache.MaxKeys,
		},
		Adapter: Adapter{
			BaseURL:        fileCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
			RateLimit:      fileCfg.Adapter.RateLimit,
		},
		Storage: Storage{
			DB:       DB{DSN: fileCfg.Storage.DB.DSN},
			Sessions: Sessions{Path: fileCfg.Storage.Sessions.Path},
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
			RateLimit:      fileCfg.Server.RateLimit,
		},
		Workers: Workers{
			SessionCleanupInterval: time.Duration(fileCfg.Workers.SessionCleanupInterval),
		},
		Client: Client{
			Nickname:  fileCfg.Client.Nickname,
			RemoteKey: fileCfg.Client.RemoteKey,
			LogPath:   fileCfg.Client.LogPath,
			Feed:      fileCfg.Client.Feed,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err != nil {
		var nanos int64
		if intErr := unmarshal(&nanos); intErr != nil {
			return err
		}
		*d = Duration(time.Duration(nanos))
		return nil
	}

	tmp, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
