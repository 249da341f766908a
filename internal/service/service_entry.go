package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/ff-to-go/internal/adapter"
	"github.com/MKhiriev/ff-to-go/internal/config"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/utils"
	"github.com/MKhiriev/ff-to-go/internal/validators"
	"github.com/MKhiriev/ff-to-go/models"
)

const (
	messageHidden    = "hidden"
	messageUnhidden  = "un-hidden"
	messageLiked     = "liked"
	messageUnliked   = "un-liked"
	messageDeleted   = "deleted"
	messageShared    = "shared"
	messageCommented = "commented"
)

type entryService struct {
	remote    adapter.FriendFeed
	via       string
	validator validators.Validator

	logger *logger.Logger
}

// NewEntryService returns an EntryService publishing through remote. New
// entries and comments are tagged with cfg.Via.
func NewEntryService(remote adapter.FriendFeed, cfg config.App, logger *logger.Logger) EntryService {
	return &entryService{
		remote:    remote,
		via:       cfg.Via,
		validator: validators.NewFormValidator(),
		logger:    logger,
	}
}

// Act hides, unhides, likes, unlikes, deletes or undeletes an entry. The
// result points back at the entry.
func (s *entryService) Act(ctx context.Context, session *models.Session, entryID string, action models.EntryAction, next string) (models.ActionResult, error) {
	log := logger.FromContext(ctx)

	if !session.Authenticated() {
		return models.ActionResult{}, ErrCredentialsRequired
	}
	if strings.TrimSpace(entryID) == "" {
		return models.ActionResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyEntry)
	}

	client := s.remote.As(session.Credentials)

	var (
		apply   func(ctx context.Context, entryID string) error
		message string
	)
	switch action {
	case models.ActionHide:
		apply, message = client.HideEntry, messageHidden
	case models.ActionUnhide:
		apply, message = client.UnhideEntry, messageUnhidden
	case models.ActionLike:
		apply, message = client.AddLike, messageLiked
	case models.ActionUnlike:
		apply, message = client.DeleteLike, messageUnliked
	case models.ActionDelete:
		apply, message = client.DeleteEntry, messageDeleted
	case models.ActionUndelete:
		apply, message = client.UndeleteEntry, messageShared
	default:
		return models.ActionResult{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if err := apply(ctx, entryID); err != nil {
		log.Err(err).Str("func", "entryService.Act").Str("action", string(action)).Str("entry", entryID).Msg("entry action failed")
		return models.ActionResult{}, fmt.Errorf("%s entry: %w", action, err)
	}

	return models.ActionResult{
		Message: message,
		EntryID: entryID,
		Next: utils.BuildRedirect(next, utils.RedirectParams{
			Message: message,
			Entry:   entryID,
			Anchor:  entryID,
		}),
	}, nil
}

// CommentAction deletes or undeletes a comment. A deleted comment points
// back at its entry, a restored one at the comment itself.
func (s *entryService) CommentAction(ctx context.Context, session *models.Session, entryID, commentID string, action models.EntryAction, next string) (models.ActionResult, error) {
	log := logger.FromContext(ctx)

	if !session.Authenticated() {
		return models.ActionResult{}, ErrCredentialsRequired
	}
	if strings.TrimSpace(entryID) == "" || strings.TrimSpace(commentID) == "" {
		return models.ActionResult{}, fmt.Errorf("%w: entry and comment are required", ErrInvalidDataProvided)
	}

	client := s.remote.As(session.Credentials)

	var (
		apply   func(ctx context.Context, entryID, commentID string) error
		message string
		anchor  string
	)
	switch action {
	case models.ActionDelete:
		apply, message, anchor = client.DeleteComment, messageDeleted, entryID
	case models.ActionUndelete:
		apply, message, anchor = client.UndeleteComment, messageCommented, commentID
	default:
		return models.ActionResult{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if err := apply(ctx, entryID, commentID); err != nil {
		log.Err(err).Str("func", "entryService.CommentAction").Str("action", string(action)).Str("entry", entryID).Str("comment", commentID).Msg("comment action failed")
		return models.ActionResult{}, fmt.Errorf("%s comment: %w", action, err)
	}

	return models.ActionResult{
		Message:   message,
		EntryID:   entryID,
		CommentID: commentID,
		Next: utils.BuildRedirect(next, utils.RedirectParams{
			Message: message,
			Entry:   entryID,
			Comment: commentID,
			Anchor:  anchor,
		}),
	}, nil
}

// Comment adds a comment to an entry, or edits req.CommentID when set. An
// edit carries no message.
func (s *entryService) Comment(ctx context.Context, session *models.Session, req models.CommentRequest) (models.ActionResult, error) {
	log := logger.FromContext(ctx)

	if !session.Authenticated() {
		return models.ActionResult{}, ErrCredentialsRequired
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ActionResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	client := s.remote.As(session.Credentials)

	if req.CommentID != "" {
		commentID, err := client.EditComment(ctx, req.EntryID, req.CommentID, req.Body)
		if err != nil {
			log.Err(err).Str("func", "entryService.Comment").Str("entry", req.EntryID).Str("comment", req.CommentID).Msg("error editing comment")
			return models.ActionResult{}, fmt.Errorf("edit comment: %w", err)
		}

		return models.ActionResult{
			EntryID:   req.EntryID,
			CommentID: commentID,
			Next:      utils.BuildRedirect(req.Next, utils.RedirectParams{Anchor: commentID}),
		}, nil
	}

	commentID, err := client.AddComment(ctx, req.EntryID, req.Body, s.via)
	if err != nil {
		log.Err(err).Str("func", "entryService.Comment").Str("entry", req.EntryID).Msg("error adding comment")
		return models.ActionResult{}, fmt.Errorf("add comment: %w", err)
	}

	return models.ActionResult{
		Message:   messageCommented,
		EntryID:   req.EntryID,
		CommentID: commentID,
		Next: utils.BuildRedirect(req.Next, utils.RedirectParams{
			Message: messageCommented,
			Entry:   req.EntryID,
			Comment: commentID,
			Anchor:  commentID,
		}),
	}, nil
}

// Share publishes a text entry to the viewer's feed, or to req.Room.
func (s *entryService) Share(ctx context.Context, session *models.Session, req models.ShareRequest) (models.ActionResult, error) {
	log := logger.FromContext(ctx)

	if !session.Authenticated() {
		return models.ActionResult{}, ErrCredentialsRequired
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ActionResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	entry, err := s.remote.As(session.Credentials).PublishMessage(ctx, models.PublishRequest{
		Title: req.Title,
		Via:   s.via,
		Room:  strings.TrimSpace(req.Room),
	})
	if err != nil {
		log.Err(err).Str("func", "entryService.Share").Str("room", req.Room).Msg("error sharing entry")
		return models.ActionResult{}, fmt.Errorf("share: %w", err)
	}

	return models.ActionResult{
		Message: messageShared,
		EntryID: entry.ID,
		Next: utils.BuildRedirect(req.Next, utils.RedirectParams{
			Message: messageShared,
			Entry:   entry.ID,
			Anchor:  entry.ID,
		}),
	}, nil
}
