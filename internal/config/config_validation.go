// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSignKey == "" || cfg.App.SessionIssuer == "" || cfg.App.SessionDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if err := cfg.Display.validate(); err != nil {
		return err
	}

	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Sessions.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SessionCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (d Display) validate() error {
	if d.Num < 1 || d.Num > maxNum {
		return fmt.Errorf("%w: num must be between 1 and %d", ErrInvalidDisplayConfigs, maxNum)
	}
	if d.FontSize < 1 {
		return fmt.Errorf("%w: font size must be positive", ErrInvalidDisplayConfigs)
	}
	return nil
}

func (a Adapter) validate() error {
	if a.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}
	u, err := url.Parse(a.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: malformed base url %q", ErrInvalidAdapterConfigs, a.BaseURL)
	}
	if a.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidAdapterConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Display.validate(); err != nil {
		return err
	}

	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if (cfg.Credentials.Nickname == "") != (cfg.Credentials.RemoteKey == "") {
		return ErrInvalidClientConfigs
	}

	return nil
}
