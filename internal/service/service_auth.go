package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/ff-to-go/internal/crypto"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/store"
	"github.com/MKhiriev/ff-to-go/internal/validators"
	"github.com/MKhiriev/ff-to-go/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration and password checks of local accounts, storing
// passwords in the "algorithm|hash|salt" form produced by a
// crypto.PasswordHasher.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and verifies stored passwords.
	hasher crypto.PasswordHasher

	validator validators.Validator

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewFormValidator(),
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new account and logs it in.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if a field is missing or the email is malformed.
//   - A wrapped store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	password, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     req.Email,
		Password:  password,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.touchLastLogin(ctx, user)
}

// Login authenticates an account by email and password.
//
// An unknown email and a wrong password both return ErrBadCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", req.Email).Msg("login with unknown email")
			return models.User{}, ErrBadCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.Password) {
		log.Warn().Int64("id", user.UserID).Msg("wrong password")
		return models.User{}, ErrBadCredentials
	}

	return a.touchLastLogin(ctx, user)
}

// SetPassword re-hashes password and stores it for userID.
func (a *authService) SetPassword(ctx context.Context, userID int64, password string) error {
	log := logger.FromContext(ctx)

	if userID <= 0 || strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyPassword)
	}

	hashed, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("func", "authService.SetPassword").Msg("error hashing password")
		return fmt.Errorf("hash password: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, hashed); err != nil {
		log.Err(err).Int64("id", userID).Msg("error updating password")
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

func (a *authService) User(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrNoAccount
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func (a *authService) touchLastLogin(ctx context.Context, user models.User) (models.User, error) {
	now := a.now().UTC()
	if err := a.userRepository.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.UserID).Msg("error updating last login")
		return models.User{}, fmt.Errorf("update last login: %w", err)
	}

	user.LastLogin = &now
	return user, nil
}
