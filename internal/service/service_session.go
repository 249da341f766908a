package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/ff-to-go/internal/adapter"
	"github.com/MKhiriev/ff-to-go/internal/config"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/store"
	"github.com/MKhiriev/ff-to-go/internal/utils"
	"github.com/MKhiriev/ff-to-go/internal/validators"
	"github.com/MKhiriev/ff-to-go/models"
)

type idGenerator interface {
	Generate() string
}

// sessionService is the concrete implementation of SessionService.
//
// Sessions live in a SessionStorage and are addressed by signed JWTs whose
// subject is the session id. Every save slides the session expiry forward
// and issues a new token with the same lifetime.
type sessionService struct {
	storage   store.SessionStorage
	remote    adapter.FriendFeed
	validator validators.Validator
	ids       idGenerator

	defaults models.Settings

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

func NewSessionService(
	storage store.SessionStorage,
	remote adapter.FriendFeed,
	appCfg config.App,
	displayCfg config.Display,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		storage:       storage,
		remote:        remote,
		validator:     validators.NewFormValidator(),
		ids:           utils.NewUUIDGenerator(),
		defaults:      displayCfg.Settings(),
		tokenSignKey:  appCfg.SessionSignKey,
		tokenIssuer:   appCfg.SessionIssuer,
		tokenDuration: appCfg.SessionDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Login checks creds against the remote API and stores them in the current
// session, creating one when current is nil. The nickname is trimmed and
// lower-cased first.
func (s *sessionService) Login(ctx context.Context, current *models.Session, creds models.Credentials) (models.Session, models.Token, error) {
	log := logger.FromContext(ctx)

	creds.Nickname = strings.ToLower(strings.TrimSpace(creds.Nickname))
	creds.RemoteKey = strings.TrimSpace(creds.RemoteKey)
	if err := s.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.remote.As(creds).Validate(ctx); err != nil {
		log.Err(err).Str("func", "sessionService.Login").Str("nickname", creds.Nickname).Msg("remote rejected credentials")
		return models.Session{}, models.Token{}, fmt.Errorf("validate credentials: %w", err)
	}

	session := s.sessionOrNew(current)
	session.Credentials = creds

	return s.saveAndIssue(ctx, session)
}

// Logout forgets the remote credentials. Settings and the linked account
// stay with the session.
func (s *sessionService) Logout(ctx context.Context, current *models.Session) error {
	if current == nil {
		return nil
	}

	session := *current
	session.Credentials = models.Credentials{}

	if err := s.storage.Save(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.Logout").Str("session", session.ID).Msg("error saving session")
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Resolve verifies tokenString and loads the session it names.
func (s *sessionService) Resolve(ctx context.Context, tokenString string) (models.Session, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := s.storage.Get(ctx, token.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrSessionNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.Resolve").Str("session", token.SessionID).Msg("error loading session")
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	if session.Expired(s.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *sessionService) DefaultSettings() models.Settings {
	return s.defaults
}

// UpdateSettings replaces the display settings of the current session. It
// works for anonymous readers, creating a session when current is nil.
func (s *sessionService) UpdateSettings(ctx context.Context, current *models.Session, settings models.Settings) (models.Session, models.Token, error) {
	if err := s.validator.Validate(ctx, settings); err != nil {
		return models.Session{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	session := s.sessionOrNew(current)
	session.Settings = settings

	return s.saveAndIssue(ctx, session)
}

// DropCredentials is called when the remote API rejects the credentials of
// the current session.
func (s *sessionService) DropCredentials(ctx context.Context, current *models.Session) error {
	if current == nil {
		return nil
	}

	logger.FromContext(ctx).Warn().Str("session", current.ID).Str("nickname", current.Nickname()).Msg("dropping rejected remote credentials")
	return s.Logout(ctx, current)
}

// AttachAccount links the local account userID to the current session,
// creating one when current is nil.
func (s *sessionService) AttachAccount(ctx context.Context, current *models.Session, userID int64) (models.Session, models.Token, error) {
	if userID <= 0 {
		return models.Session{}, models.Token{}, fmt.Errorf("%w: invalid user id %d", ErrInvalidDataProvided, userID)
	}

	session := s.sessionOrNew(current)
	session.UserID = userID

	return s.saveAndIssue(ctx, session)
}

// DetachAccount unlinks the local account from the current session.
func (s *sessionService) DetachAccount(ctx context.Context, current *models.Session) error {
	if current == nil || current.UserID == 0 {
		return ErrNoAccount
	}

	session := *current
	session.UserID = 0

	if err := s.storage.Save(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.DetachAccount").Str("session", session.ID).Msg("error saving session")
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (s *sessionService) sessionOrNew(current *models.Session) models.Session {
	if current != nil {
		return *current
	}

	return models.Session{
		ID:        s.ids.Generate(),
		Settings:  s.defaults,
		CreatedAt: s.now().UTC(),
	}
}

func (s *sessionService) saveAndIssue(ctx context.Context, session models.Session) (models.Session, models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(s.tokenIssuer, session.ID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "sessionService.saveAndIssue").Msg("error creating session token")
		return models.Session{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	session.ExpiresAt = s.now().Add(s.tokenDuration).UTC()
	if err = s.storage.Save(ctx, session); err != nil {
		log.Err(err).Str("func", "sessionService.saveAndIssue").Str("session", session.ID).Msg("error saving session")
		return models.Session{}, models.Token{}, fmt.Errorf("save session: %w", err)
	}

	return session, token, nil
}
