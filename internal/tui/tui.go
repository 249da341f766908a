package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/service"
	"github.com/MKhiriev/ff-to-go/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errUnknownStartFeed = errors.New("unknown start feed")

// TUI is the terminal feed reader.
type TUI struct {
	feeds     service.FeedService
	entries   service.EntryService
	session   *models.Session
	start     models.FeedKind
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a reader for session. startFeed is "home" or "public"; empty
// picks home for a signed-in session and public otherwise. An anonymous
// session always starts on the public feed.
func New(feeds service.FeedService, entries service.EntryService, session *models.Session,
	startFeed string, info models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	start, err := startKind(startFeed, session.Authenticated())
	if err != nil {
		return nil, err
	}

	return &TUI{
		feeds:     feeds,
		entries:   entries,
		session:   session,
		start:     start,
		buildInfo: info,
		logger:    logger,
	}, nil
}

func startKind(feed string, authenticated bool) (models.FeedKind, error) {
	switch models.FeedKind(feed) {
	case "":
	case models.FeedKindHome:
	case models.FeedKindPublic:
		return models.FeedKindPublic, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownStartFeed, feed)
	}

	if !authenticated {
		return models.FeedKindPublic, nil
	}
	return models.FeedKindHome, nil
}

// Run shows the reader until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.feeds, t.entries, t.session, t.start, t.buildInfo)

	t.logger.Info().Str("func", "*TUI.Run").Str("feed", string(t.start)).Msg("starting reader")
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
