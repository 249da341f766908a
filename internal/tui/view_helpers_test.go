package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/ff-to-go/internal/adapter"
	"github.com/MKhiriev/ff-to-go/internal/service"
	"github.com/MKhiriev/ff-to-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"collapse   inner\nwhitespace", 0, "collapse inner whitespace"},
		{"abcdefghij", 8, "abcde..."},
		{"abcdef", 2, "ab"},
		{"привет мир", 7, "прив..."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fitText(tt.in, tt.max), tt.in)
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2009, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		when time.Time
		want string
	}{
		{time.Time{}, ""},
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-1 * time.Minute), "1 minute ago"},
		{now.Add(-5 * time.Hour), "5 hours ago"},
		{now.Add(-72 * time.Hour), "3 days ago"},
		{time.Date(2008, 7, 4, 0, 0, 0, 0, time.UTC), "Jul 4, 2008"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ago(tt.when, now))
	}
}

func TestStartKind(t *testing.T) {
	tests := []struct {
		feed          string
		authenticated bool
		want          models.FeedKind
		wantErr       bool
	}{
		{feed: "", authenticated: true, want: models.FeedKindHome},
		{feed: "", authenticated: false, want: models.FeedKindPublic},
		{feed: "home", authenticated: true, want: models.FeedKindHome},
		{feed: "home", authenticated: false, want: models.FeedKindPublic},
		{feed: "public", authenticated: true, want: models.FeedKindPublic},
		{feed: "rooms", authenticated: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.feed, tt.authenticated), func(t *testing.T) {
			got, err := startKind(tt.feed, tt.authenticated)
			if tt.wantErr {
				require.ErrorIs(t, err, errUnknownStartFeed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("home: %w", service.ErrCredentialsRequired), "Sign in with a nickname and remote key to use this feed"},
		{&adapter.APIError{StatusCode: 403}, "Not allowed"},
		{&adapter.APIError{StatusCode: 404}, "Not found"},
		{errors.New(`Get "http://friendfeed.com/api/feed/home": dial tcp: lookup friendfeed.com: no such host`), "Network is down or the feed service is unavailable"},
		{errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeError(tt.err))
	}
}
