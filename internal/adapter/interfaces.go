// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the remote FriendFeed API.
//
// The primary abstraction is [FriendFeed], which decouples the service layer
// from the wire protocol. Every call appends format=json, reads go out as GET
// and writes as form-encoded POST, and basic-auth credentials are attached
// only when both the nickname and the remote key are known.
//
// Non-2xx replies, and 2xx replies whose body carries an errorCode, are
// returned as [*APIError] values which unwrap to the sentinels in errors.go,
// so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/ff-to-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/friendfeed_mock.go -package=mock

// FriendFeed is the remote feed API.
type FriendFeed interface {
	// As returns a client bound to creds. The returned client shares the
	// connection pool and the rate limiter of the receiver.
	As(creds models.Credentials) FriendFeed

	// Credentials returns the credentials the client is bound to.
	Credentials() models.Credentials

	// Validate checks the bound credentials. Returns an error wrapping
	// [ErrUnauthorized] when the remote rejects them.
	Validate(ctx context.Context) error

	HideEntry(ctx context.Context, entryID string) error
	UnhideEntry(ctx context.Context, entryID string) error
	DeleteEntry(ctx context.Context, entryID string) error
	UndeleteEntry(ctx context.Context, entryID string) error

	// FetchEntry returns a single entry. Returns [ErrNotFound] when the
	// remote answers with an empty feed.
	FetchEntry(ctx context.Context, entryID string) (models.Entry, error)

	FetchUserProfile(ctx context.Context, nickname string) (models.Profile, error)
	FetchRoomProfile(ctx context.Context, nickname string) (models.Profile, error)
	FetchListProfile(ctx context.Context, nickname string) (models.Profile, error)

	FetchPublicFeed(ctx context.Context, query models.FeedQuery) (models.Feed, error)
	FetchHomeFeed(ctx context.Context, query models.FeedQuery) (models.Feed, error)
	FetchRoomsFeed(ctx context.Context, query models.FeedQuery) (models.Feed, error)
	FetchRoomFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error)
	FetchListFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error)
	FetchUserFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error)
	FetchUserCommentsFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error)
	FetchUserLikesFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error)
	FetchUserDiscussionFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error)
	FetchUserFriendsFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error)
	// FetchMultiUserFeed merges the feeds of all nicknames.
	FetchMultiUserFeed(ctx context.Context, nicknames []string, query models.FeedQuery) (models.Feed, error)
	// Search runs q over the entries visible to the bound user, or over all
	// public entries for an anonymous client.
	Search(ctx context.Context, q string, query models.FeedQuery) (models.Feed, error)

	// PublishMessage shares a text-only entry. req.Link is ignored.
	PublishMessage(ctx context.Context, req models.PublishRequest) (models.Entry, error)
	// PublishLink shares a link entry with optional images, audio, comment
	// and room. Returns the entry as stored by the remote.
	PublishLink(ctx context.Context, req models.PublishRequest) (models.Entry, error)

	// AddComment returns the id of the new comment.
	AddComment(ctx context.Context, entryID, body, via string) (string, error)
	// EditComment returns the id of the edited comment.
	EditComment(ctx context.Context, entryID, commentID, body string) (string, error)
	DeleteComment(ctx context.Context, entryID, commentID string) error
	UndeleteComment(ctx context.Context, entryID, commentID string) error

	AddLike(ctx context.Context, entryID string) error
	DeleteLike(ctx context.Context, entryID string) error
}
