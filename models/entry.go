// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Entry is a single item of a remote feed as returned by the feed API.
//
// Entry is a transport DTO: it is decoded from the remote JSON, enriched by
// the display filters and serialised back to API clients. It is never
// persisted locally.
type Entry struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Link      string       `json:"link,omitempty"`
	Published Timestamp    `json:"published"`
	Updated   Timestamp    `json:"updated"`
	Hidden    bool         `json:"hidden,omitempty"`
	Anonymous bool         `json:"anonymous,omitempty"`
	User      EntryUser    `json:"user"`
	Service   EntryService `json:"service"`
	Room      *EntryRoom   `json:"room,omitempty"`
	Via       *Via         `json:"via,omitempty"`
	Comments  []Comment    `json:"comments"`
	Likes     []Like       `json:"likes"`
	Media     []Media      `json:"media,omitempty"`
}

// EntryUser is the author of an entry, comment or like.
type EntryUser struct {
	ID         string `json:"id,omitempty"`
	Nickname   string `json:"nickname"`
	Name       string `json:"name"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

// EntryService describes the service an entry was imported from.
type EntryService struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IconURL    string `json:"iconUrl,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

// EntryRoom is set when an entry was posted to a room.
type EntryRoom struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	URL      string `json:"url,omitempty"`
}

// Via names the client an entry or comment was published from.
type Via struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Comment is a comment attached to an entry.
type Comment struct {
	ID   string    `json:"id"`
	Date Timestamp `json:"date"`
	User EntryUser `json:"user"`
	Body string    `json:"body"`
	Via  *Via      `json:"via,omitempty"`
}

// Like is a like attached to an entry.
type Like struct {
	Date Timestamp `json:"date"`
	User EntryUser `json:"user"`
}

// Media is an attachment (image, video, audio) of an entry.
type Media struct {
	Title      string      `json:"title,omitempty"`
	Player     string      `json:"player,omitempty"`
	Link       string      `json:"link,omitempty"`
	Thumbnails []Thumbnail `json:"thumbnails,omitempty"`
	Content    []Content   `json:"content,omitempty"`
	Enclosures []Enclosure `json:"enclosures,omitempty"`
}

// Thumbnail is a preview image of a media attachment.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Content is a full-size rendition of a media attachment.
type Content struct {
	URL    string `json:"url"`
	Type   string `json:"type,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Enclosure is a downloadable file of a media attachment.
type Enclosure struct {
	URL    string `json:"url"`
	Type   string `json:"type,omitempty"`
	Length int64  `json:"length,omitempty"`
}

// LikedBy reports whether nickname is among the users that liked the entry.
func (e Entry) LikedBy(nickname string) bool {
	for _, like := range e.Likes {
		if like.User.Nickname == nickname {
			return true
		}
	}
	return false
}
