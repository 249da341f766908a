// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Feed is the body of every feed endpoint of the remote API.
type Feed struct {
	Entries []Entry `json:"entries"`
}

// FeedQuery carries the paging arguments accepted by every feed endpoint.
// Zero values are not sent.
type FeedQuery struct {
	Num     int
	Start   int
	Service string
}

// FeedKind names the page a [FeedPage] was built for.
type FeedKind string

const (
	FeedKindHome   FeedKind = "home"
	FeedKindPublic FeedKind = "public"
	FeedKindRooms  FeedKind = "rooms"
	FeedKindRoom   FeedKind = "room"
	FeedKindList   FeedKind = "list"
	FeedKindUser   FeedKind = "user"
	FeedKindSearch FeedKind = "search"
	FeedKindEntry  FeedKind = "entry"
)

// UserFeedType selects one of the per-user feeds.
type UserFeedType string

const (
	UserFeedDefault    UserFeedType = ""
	UserFeedComments   UserFeedType = "comments"
	UserFeedLikes      UserFeedType = "likes"
	UserFeedDiscussion UserFeedType = "discussion"
	UserFeedFriends    UserFeedType = "friends"
)

// Valid reports whether t is a known user feed type.
func (t UserFeedType) Valid() bool {
	switch t {
	case UserFeedDefault, UserFeedComments, UserFeedLikes, UserFeedDiscussion, UserFeedFriends:
		return true
	}
	return false
}

// PageRequest is a request for one page of a feed, as received from the
// caller.
type PageRequest struct {
	// Start is the zero-based offset of the first entry.
	Start int
	// Service optionally restricts the feed to one imported service.
	Service string
}

// FeedPage is a page of entries ready for presentation.
type FeedPage struct {
	Kind        FeedKind     `json:"kind"`
	Title       string       `json:"title,omitempty"`
	Nickname    string       `json:"nickname,omitempty"`
	Type        UserFeedType `json:"type,omitempty"`
	Entries     []Entry      `json:"entries"`
	Hidden      []Entry      `json:"hidden"`
	Start       int          `json:"start"`
	Num         int          `json:"num"`
	Next        int          `json:"next"`
	HasPrevious bool         `json:"has_previous"`
	Previous    int          `json:"previous"`
	Service     string       `json:"service,omitempty"`
	Profile     *Profile     `json:"profile,omitempty"`
	// Permalink is set on single-entry pages.
	Permalink bool `json:"permalink,omitempty"`
}
