package client

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/ff-to-go/internal/adapter"
	"github.com/MKhiriev/ff-to-go/internal/config"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/models"
)

// Reader is the interactive part of the client.
type Reader interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)

type App struct {
	remote  adapter.FriendFeed
	session *models.Session
	reader  Reader
	logger  *logger.Logger
}

// NewSession builds the in-memory session of the terminal client from its
// configured credentials and display defaults. Without credentials the
// session is anonymous.
func NewSession(cfg *config.ClientConfig) *models.Session {
	return &models.Session{
		Credentials: models.Credentials{
			Nickname:  strings.ToLower(strings.TrimSpace(cfg.Credentials.Nickname)),
			RemoteKey: cfg.Credentials.RemoteKey,
		},
		Settings: cfg.Display.Settings(),
	}
}

func NewApp(remote adapter.FriendFeed, session *models.Session, reader Reader, logger *logger.Logger) (*App, error) {
	return &App{
		remote:  remote,
		session: session,
		reader:  reader,
		logger:  logger,
	}, nil
}

// Run checks the configured remote key, if any, and shows the reader until
// the user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	if a.session.Authenticated() {
		if err := a.remote.As(a.session.Credentials).Validate(ctx); err != nil {
			a.logger.Err(err).Str("func", "*App.run").Str("nickname", a.session.Nickname()).Msg("remote key check failed")
			return fmt.Errorf("check remote key of %q: %w", a.session.Nickname(), err)
		}
		a.logger.Info().Str("func", "*App.run").Str("nickname", a.session.Nickname()).Msg("signed in")
	}

	return a.reader.Run(ctx)
}
