// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/models"
	bolt "go.etcd.io/bbolt"
)

var sessionsBucket = []byte("sessions")

// BoltSessionStorage is the bolt implementation of [SessionStorage]. Sessions
// are stored as JSON values keyed by session id in a single bucket.
type BoltSessionStorage struct {
	db     *bolt.DB
	logger *logger.Logger
}

// NewSessionStorage opens (creating when missing) the bolt file at path.
// The caller owns the returned storage and must Close it.
func NewSessionStorage(path string, log *logger.Logger) (*BoltSessionStorage, error) {
	log.Debug().Str("func", "NewSessionStorage").Str("path", path).Msg("opening bolt session store")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create session store dir: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create sessions bucket: %w", err)
	}

	return &BoltSessionStorage{db: db, logger: log}, nil
}

// Close releases the bolt file lock.
func (s *BoltSessionStorage) Close() error {
	return s.db.Close()
}

func (s *BoltSessionStorage) Save(ctx context.Context, session models.Session) error {
	value, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Put([]byte(session.ID), value)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*BoltSessionStorage.Save").Msg("error saving session")
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *BoltSessionStorage) Get(ctx context.Context, sessionID string) (models.Session, error) {
	var (
		session models.Session
		found   bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(sessionsBucket).Get([]byte(sessionID))
		if value == nil {
			return nil
		}
		found = true
		return json.Unmarshal(value, &session)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*BoltSessionStorage.Get").Msg("error reading session")
		return models.Session{}, fmt.Errorf("read session: %w", err)
	}
	if !found {
		return models.Session{}, ErrSessionNotFound
	}

	if session.Expired(time.Now()) {
		if err = s.Delete(ctx, sessionID); err != nil {
			return models.Session{}, err
		}
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *BoltSessionStorage) Delete(ctx context.Context, sessionID string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Delete([]byte(sessionID))
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*BoltSessionStorage.Delete").Msg("error deleting session")
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *BoltSessionStorage) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	purged := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionsBucket)
		var expired [][]byte

		err := bucket.ForEach(func(k, v []byte) error {
			var session models.Session
			if err := json.Unmarshal(v, &session); err != nil || session.Expired(now) {
				expired = append(expired, append([]byte(nil), k...))
			}
			return ctx.Err()
		})
		if err != nil {
			return err
		}

		for _, k := range expired {
			if err = bucket.Delete(k); err != nil {
				return err
			}
		}
		purged = len(expired)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}

	return purged, nil
}
