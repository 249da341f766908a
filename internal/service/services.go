package service

import (
	"fmt"

	"github.com/MKhiriev/ff-to-go/internal/adapter"
	"github.com/MKhiriev/ff-to-go/internal/config"
	"github.com/MKhiriev/ff-to-go/internal/crypto"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	FeedService    FeedService
	EntryService   EntryService
	SessionService SessionService
	AuthService    AuthService
}

func NewServices(storages *store.Storages, remote adapter.FriendFeed, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	feedService, err := NewFeedService(remote, cfg.Display, cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("create feed service: %w", err)
	}

	return &Services{
		AppInfoService: appInfoService,
		FeedService:    feedService,
		EntryService:   NewEntryService(remote, cfg.App, logger),
		SessionService: NewSessionService(storages.SessionStorage, remote, cfg.App, cfg.Display, logger),
		AuthService:    NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), logger),
	}, nil
}
