// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/ff-to-go/internal/config"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `{
  "entries": [{
    "id": "e1",
    "title": "Hello @bret",
    "link": "http://example.com/",
    "published": "2009-03-01T10:20:30Z",
    "updated": "2009-03-02T11:21:31Z",
    "user": {"nickname": "paul", "name": "Paul"},
    "service": {"id": "internal", "name": "FriendFeed"},
    "comments": [{"id": "c1", "date": "2009-03-02T11:00:00Z", "user": {"nickname": "bret", "name": "Bret"}, "body": "hi"}],
    "likes": [{"date": "2009-03-02T12:00:00Z", "user": {"nickname": "jim", "name": "Jim"}}]
  }]
}`

// newTestAdapter creates a friendFeed pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *friendFeed {
	t.Helper()
	a, err := NewFriendFeed(config.Adapter{BaseURL: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*friendFeed)
}

func TestNewFriendFeed_InvalidBaseURL(t *testing.T) {
	_, err := NewFriendFeed(config.Adapter{BaseURL: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("friendfeed.com/")
	require.NoError(t, err)
	assert.Equal(t, "http://friendfeed.com", got)
}

// ── Request shape ───────────────────────────────────────────────────────────

func TestFetchPublicFeed_GetWithQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/feed/public", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "30", r.URL.Query().Get("num"))
		assert.Equal(t, "60", r.URL.Query().Get("start"))
		assert.Equal(t, "twitter", r.URL.Query().Get("service"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, sampleFeed)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	feed, err := a.FetchPublicFeed(context.Background(), models.FeedQuery{Num: 30, Start: 60, Service: "twitter"})

	require.NoError(t, err)
	require.Len(t, feed.Entries, 1)
	entry := feed.Entries[0]
	assert.Equal(t, "e1", entry.ID)
	assert.Equal(t, time.Date(2009, 3, 2, 11, 21, 31, 0, time.UTC), entry.Updated.Time)
	assert.Equal(t, time.Date(2009, 3, 1, 10, 20, 30, 0, time.UTC), entry.Published.Time)
	require.Len(t, entry.Comments, 1)
	assert.Equal(t, time.Date(2009, 3, 2, 11, 0, 0, 0, time.UTC), entry.Comments[0].Date.Time)
	require.Len(t, entry.Likes, 1)
	assert.Equal(t, "jim", entry.Likes[0].User.Nickname)
}

func TestFetchFeed_ZeroQueryOmitted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("num"))
		assert.False(t, q.Has("start"))
		assert.False(t, q.Has("service"))
		_, _ = io.WriteString(w, `{"entries":[]}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchHomeFeed(context.Background(), models.FeedQuery{})
	require.NoError(t, err)
}

func TestAs_BasicAuthOnlyWithCompleteCredentials(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	base := newTestAdapter(t, srv.URL)

	require.NoError(t, base.As(models.Credentials{Nickname: "bret", RemoteKey: "k3y"}).Validate(context.Background()))
	assert.True(t, gotOK)
	assert.Equal(t, "bret", gotUser)
	assert.Equal(t, "k3y", gotPass)

	require.NoError(t, base.As(models.Credentials{Nickname: "bret"}).Validate(context.Background()))
	assert.False(t, gotOK)

	assert.Equal(t, models.Credentials{}, base.Credentials())
}

func TestUserFeeds_Paths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.EscapedPath())
		_, _ = io.WriteString(w, `{"entries":[]}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()
	q := models.FeedQuery{}

	_, err := a.FetchUserFeed(ctx, "bret", q)
	require.NoError(t, err)
	_, err = a.FetchUserCommentsFeed(ctx, "bret", q)
	require.NoError(t, err)
	_, err = a.FetchUserLikesFeed(ctx, "bret", q)
	require.NoError(t, err)
	_, err = a.FetchUserDiscussionFeed(ctx, "bret", q)
	require.NoError(t, err)
	_, err = a.FetchUserFriendsFeed(ctx, "bret", q)
	require.NoError(t, err)
	_, err = a.FetchRoomFeed(ctx, "friendfeed-feedback", q)
	require.NoError(t, err)
	_, err = a.FetchListFeed(ctx, "work", q)
	require.NoError(t, err)
	_, err = a.FetchRoomsFeed(ctx, q)
	require.NoError(t, err)
	_, err = a.FetchUserFeed(ctx, "a b", q)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/api/feed/user/bret",
		"/api/feed/user/bret/comments",
		"/api/feed/user/bret/likes",
		"/api/feed/user/bret/discussion",
		"/api/feed/user/bret/friends",
		"/api/feed/room/friendfeed-feedback",
		"/api/feed/list/work",
		"/api/feed/rooms",
		"/api/feed/user/a%20b",
	}, paths)
}

func TestFetchMultiUserFeed_And_Search(t *testing.T) {
	var queries []url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query())
		_, _ = io.WriteString(w, `{"entries":[]}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchMultiUserFeed(context.Background(), []string{"bret", "paul", "jim"}, models.FeedQuery{Num: 10})
	require.NoError(t, err)
	_, err = a.Search(context.Background(), "friendfeed", models.FeedQuery{})
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.Equal(t, "bret,paul,jim", queries[0].Get("nickname"))
	assert.Equal(t, "10", queries[0].Get("num"))
	assert.Equal(t, "friendfeed", queries[1].Get("q"))
}

func TestEntryActions_PostForm(t *testing.T) {
	type call struct {
		path string
		form url.Values
	}
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		require.NoError(t, r.ParseForm())
		calls = append(calls, call{path: r.URL.Path, form: r.PostForm})
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, a.HideEntry(ctx, "e1"))
	require.NoError(t, a.UnhideEntry(ctx, "e1"))
	require.NoError(t, a.DeleteEntry(ctx, "e1"))
	require.NoError(t, a.UndeleteEntry(ctx, "e1"))
	require.NoError(t, a.AddLike(ctx, "e1"))
	require.NoError(t, a.DeleteLike(ctx, "e1"))
	require.NoError(t, a.DeleteComment(ctx, "e1", "c1"))
	require.NoError(t, a.UndeleteComment(ctx, "e1", "c1"))

	require.Len(t, calls, 8)
	assert.Equal(t, "/api/entry/hide", calls[0].path)
	assert.False(t, calls[0].form.Has("unhide"))
	assert.Equal(t, "1", calls[1].form.Get("unhide"))
	assert.Equal(t, "/api/entry/delete", calls[2].path)
	assert.Equal(t, "1", calls[3].form.Get("undelete"))
	assert.Equal(t, "/api/like", calls[4].path)
	assert.Equal(t, "/api/like/delete", calls[5].path)
	assert.Equal(t, "/api/comment/delete", calls[6].path)
	assert.Equal(t, "c1", calls[6].form.Get("comment"))
	assert.Equal(t, "1", calls[7].form.Get("undelete"))
	for _, c := range calls {
		assert.Equal(t, "e1", c.form.Get("entry"))
	}
}

// ── Comments ────────────────────────────────────────────────────────────────

func TestAddComment_ReturnsID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/api/comment", r.URL.Path)
		assert.Equal(t, "e1", r.PostForm.Get("entry"))
		assert.Equal(t, "nice", r.PostForm.Get("body"))
		assert.Equal(t, "fftogo", r.PostForm.Get("via"))
		_, _ = io.WriteString(w, `{"id":"c42"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	id, err := a.AddComment(context.Background(), "e1", "nice", "fftogo")

	require.NoError(t, err)
	assert.Equal(t, "c42", id)
}

func TestEditComment_FallsBackToGivenID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "c7", r.PostForm.Get("comment"))
		assert.False(t, r.PostForm.Has("via"))
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	id, err := a.EditComment(context.Background(), "e1", "c7", "edited")

	require.NoError(t, err)
	assert.Equal(t, "c7", id)
}

// ── Publishing ──────────────────────────────────────────────────────────────

func TestPublishLink_FormFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		f := r.PostForm
		assert.Equal(t, "/api/share", r.URL.Path)
		assert.Equal(t, "Look", f.Get("title"))
		assert.Equal(t, "http://example.com/", f.Get("link"))
		assert.Equal(t, "first!", f.Get("comment"))
		assert.Equal(t, "fftogo", f.Get("via"))
		assert.Equal(t, "http://img/explicit.png", f.Get("image0_url"))
		assert.Equal(t, "http://click/", f.Get("image0_link"))
		assert.Equal(t, "http://img/a.png", f.Get("image1_url"))
		assert.False(t, f.Has("image1_link"))
		assert.Equal(t, "http://snd/explicit.mp3", f.Get("audio0_url"))
		assert.Equal(t, "Song", f.Get("audio0_title"))
		assert.Equal(t, "http://snd/a.mp3", f.Get("audio1_url"))
		assert.Equal(t, "friendfeed-feedback", f.Get("room"))
		_, _ = io.WriteString(w, sampleFeed)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	entry, err := a.PublishLink(context.Background(), models.PublishRequest{
		Title:     "Look",
		Link:      "http://example.com/",
		Comment:   "first!",
		Via:       "fftogo",
		Room:      "friendfeed-feedback",
		ImageURLs: []string{"http://img/a.png"},
		Images:    []models.Image{{URL: "http://img/explicit.png", Link: "http://click/"}},
		AudioURLs: []string{"http://snd/a.mp3"},
		Audio:     []models.Audio{{URL: "http://snd/explicit.mp3", Title: "Song"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "e1", entry.ID)
}

func TestPublishMessage_OmitsLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.False(t, r.PostForm.Has("link"))
		assert.False(t, r.PostForm.Has("room"))
		_, _ = io.WriteString(w, sampleFeed)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PublishMessage(context.Background(), models.PublishRequest{Title: "hello", Link: "http://ignored/"})
	require.NoError(t, err)
}

// ── Single resources ────────────────────────────────────────────────────────

func TestFetchEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/feed/entry/missing" {
			_, _ = io.WriteString(w, `{"entries":[]}`)
			return
		}
		assert.Equal(t, "/api/feed/entry/e1", r.URL.Path)
		_, _ = io.WriteString(w, sampleFeed)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	entry, err := a.FetchEntry(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "Hello @bret", entry.Title)

	_, err = a.FetchEntry(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchProfiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/bret/profile":
			_, _ = io.WriteString(w, `{"nickname":"bret","name":"Bret Taylor","rooms":[{"nickname":"r1","name":"Room"}],"lists":[{"nickname":"l1","name":"List"}]}`)
		case "/api/room/r1/profile":
			_, _ = io.WriteString(w, `{"nickname":"r1","name":"Room","members":[{"nickname":"bret","name":"Bret"}]}`)
		case "/api/list/l1/profile":
			_, _ = io.WriteString(w, `{"nickname":"l1","name":"List"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	user, err := a.FetchUserProfile(ctx, "bret")
	require.NoError(t, err)
	assert.Equal(t, "Bret Taylor", user.Name)
	require.Len(t, user.Rooms, 1)
	require.Len(t, user.Lists, 1)

	room, err := a.FetchRoomProfile(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, room.Members, 1)

	list, err := a.FetchListProfile(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, "List", list.Name)

	_, err = a.FetchUserProfile(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Errors ──────────────────────────────────────────────────────────────────

func TestFetch_StatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, "nope")
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			err := a.Validate(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "nope", apiErr.Body)
		})
	}
}

func TestFetch_ErrorCodeWithOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"errorCode":"entry-not-found"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.AddLike(context.Background(), "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "entry-not-found", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "entry-not-found")
}

func TestFetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchPublicFeed(context.Background(), models.FeedQuery{})
	require.Error(t, err)
}

// ── Rate limiting ───────────────────────────────────────────────────────────

func TestRateLimiter_NilNeverBlocks(t *testing.T) {
	var r *rateLimiter
	assert.NoError(t, r.Wait(context.Background()))
	assert.Nil(t, newRateLimiter(0))
}

func TestRateLimiter_CancelledContext(t *testing.T) {
	r := newRateLimiter(0.001)
	require.NotNil(t, r)
	require.NoError(t, r.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, r.Wait(ctx))
}

func TestAs_SharesLimiter(t *testing.T) {
	a, err := NewFriendFeed(config.Adapter{BaseURL: "http://example.com", RateLimit: 5}, logger.Nop())
	require.NoError(t, err)

	bound := a.As(models.Credentials{Nickname: "n", RemoteKey: "k"}).(*friendFeed)
	assert.Same(t, a.(*friendFeed).limiter, bound.limiter)
	assert.Same(t, a.(*friendFeed).client, bound.client)
}
