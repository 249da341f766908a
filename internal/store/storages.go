package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ff-to-go/internal/config"
	"github.com/MKhiriev/ff-to-go/internal/logger"
)

// Storages aggregates every storage backend of the server.
type Storages struct {
	UserRepository UserRepository
	SessionStorage SessionStorage

	db       *DB
	sessions *BoltSessionStorage
}

// NewStorages opens the account database, applies its migrations and opens
// the session store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open account database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	sessions, err := NewSessionStorage(cfg.Sessions.Path, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		SessionStorage: sessions,
		db:             db,
		sessions:       sessions,
	}, nil
}

// Close closes every backend opened by [NewStorages].
func (s *Storages) Close() error {
	var errs []error
	if s.sessions != nil {
		errs = append(errs, s.sessions.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
