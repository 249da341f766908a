package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/mock"
	"github.com/MKhiriev/ff-to-go/internal/store"
	"github.com/MKhiriev/ff-to-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(repo, hasher, logger.Nop()).(*authService)
	svc.now = func() time.Time { return testNow }

	return svc, repo, hasher
}

var validRegistration = models.RegisterRequest{
	FirstName: "Bret",
	LastName:  "Taylor",
	Email:     "bret@example.com",
	Password:  "secret",
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().Hash("secret").Return("argon2id|abc|salt", nil),
		repo.EXPECT().CreateUser(ctx, models.User{
			FirstName: "Bret",
			LastName:  "Taylor",
			Email:     "bret@example.com",
			Password:  "argon2id|abc|salt",
		}).Return(models.User{UserID: 7, Email: "bret@example.com", Password: "argon2id|abc|salt"}, nil),
		repo.EXPECT().UpdateLastLogin(ctx, int64(7), testNow).Return(nil),
	)

	user, err := svc.Register(ctx, validRegistration)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	require.NotNil(t, user.LastLogin)
	assert.Equal(t, testNow, *user.LastLogin)
}

func TestAuthService_Register_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	req := validRegistration
	req.Email = "not-an-email"

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(context.Background(), validRegistration)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("entropy exhausted"))

	_, err := svc.Register(context.Background(), validRegistration)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash password")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 3, Email: "bret@example.com", Password: "sha1|deadbeef|salt"}
	repo.EXPECT().FindUserByEmail(ctx, "bret@example.com").Return(stored, nil)
	hasher.EXPECT().Verify("secret", "sha1|deadbeef|salt").Return(true)
	repo.EXPECT().UpdateLastLogin(ctx, int64(3), testNow).Return(nil)

	user, err := svc.Login(ctx, models.LoginRequest{Email: " bret@example.com ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.NotNil(t, user.LastLogin)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _ := newTestAuthSvc(t, ctrl)

		repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.Login(context.Background(), models.LoginRequest{Email: "who@example.com", Password: "x"})
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, hasher := newTestAuthSvc(t, ctrl)

		repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1, Password: "h"}, nil)
		hasher.EXPECT().Verify("x", "h").Return(false)

		_, err := svc.Login(context.Background(), models.LoginRequest{Email: "bret@example.com", Password: "x"})
		assert.ErrorIs(t, err, ErrBadCredentials)
		assert.Equal(t, "bad username and password", err.Error())
	})
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "bret@example.com", Password: "x"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrBadCredentials)
}

// ── SetPassword / User ───────────────────────────────────────────────────────

func TestAuthService_SetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	require.ErrorIs(t, svc.SetPassword(ctx, 1, " "), ErrInvalidDataProvided)

	hasher.EXPECT().Hash("new").Return("argon2id|n|s", nil)
	repo.EXPECT().UpdatePassword(ctx, int64(1), "argon2id|n|s").Return(nil)
	require.NoError(t, svc.SetPassword(ctx, 1, "new"))

	hasher.EXPECT().Hash("new").Return("argon2id|n|s", nil)
	repo.EXPECT().UpdatePassword(ctx, int64(2), gomock.Any()).Return(store.ErrNoUserWasFound)
	assert.ErrorIs(t, svc.SetPassword(ctx, 2, "new"), store.ErrNoUserWasFound)
}

func TestAuthService_User(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.User(context.Background(), 0)
	require.ErrorIs(t, err, ErrNoAccount)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{UserID: 5, FirstName: "Paul"}, nil)
	user, err := svc.User(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Paul", user.FirstName)
}
