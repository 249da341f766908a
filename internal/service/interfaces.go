package service

import (
	"context"

	"github.com/MKhiriev/ff-to-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FeedService builds pages of remote feeds. A nil session is an anonymous
// reader with the default settings.
type FeedService interface {
	Home(ctx context.Context, session *models.Session, req models.PageRequest) (models.FeedPage, error)
	Public(ctx context.Context, session *models.Session, req models.PageRequest) (models.FeedPage, error)
	Rooms(ctx context.Context, session *models.Session, req models.PageRequest) (models.FeedPage, error)
	Room(ctx context.Context, session *models.Session, nickname string, req models.PageRequest) (models.FeedPage, error)
	List(ctx context.Context, session *models.Session, nickname string, req models.PageRequest) (models.FeedPage, error)
	User(ctx context.Context, session *models.Session, nickname string, feedType models.UserFeedType, req models.PageRequest) (models.FeedPage, error)
	Search(ctx context.Context, session *models.Session, query string, req models.PageRequest) (models.FeedPage, error)
	Entry(ctx context.Context, session *models.Session, entryID string) (models.FeedPage, error)

	RoomsList(ctx context.Context, session *models.Session) ([]models.RoomSummary, error)
	Lists(ctx context.Context, session *models.Session) ([]models.ListSummary, error)
}

// EntryService applies the viewer's actions to entries and comments.
type EntryService interface {
	Act(ctx context.Context, session *models.Session, entryID string, action models.EntryAction, next string) (models.ActionResult, error)
	CommentAction(ctx context.Context, session *models.Session, entryID, commentID string, action models.EntryAction, next string) (models.ActionResult, error)
	Comment(ctx context.Context, session *models.Session, req models.CommentRequest) (models.ActionResult, error)
	Share(ctx context.Context, session *models.Session, req models.ShareRequest) (models.ActionResult, error)
}

// SessionService manages server-side sessions. Methods that may create a
// session return it with a freshly signed token.
type SessionService interface {
	Login(ctx context.Context, current *models.Session, creds models.Credentials) (models.Session, models.Token, error)
	Logout(ctx context.Context, current *models.Session) error
	Resolve(ctx context.Context, tokenString string) (models.Session, error)

	DefaultSettings() models.Settings
	UpdateSettings(ctx context.Context, current *models.Session, settings models.Settings) (models.Session, models.Token, error)

	DropCredentials(ctx context.Context, current *models.Session) error

	AttachAccount(ctx context.Context, current *models.Session, userID int64) (models.Session, models.Token, error)
	DetachAccount(ctx context.Context, current *models.Session) error
}

// AuthService manages local accounts.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	SetPassword(ctx context.Context, userID int64, password string) error
	User(ctx context.Context, userID int64) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
