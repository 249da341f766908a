package utils

import "testing"

func TestSafeNext(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"   ", "/"},
		{"/", "/"},
		{"/room/friendfeed-feedback", "/room/friendfeed-feedback"},
		{"/feed?start=30", "/feed?start=30"},
		{"http://evil.example.com/", "/"},
		{"//evil.example.com/", "/"},
		{"/\\evil.example.com", "/"},
		{"javascript:alert(1)", "/"},
		{"relative/path", "/"},
	}

	for _, tt := range tests {
		if got := SafeNext(tt.in); got != tt.want {
			t.Errorf("SafeNext(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildRedirect(t *testing.T) {
	tests := []struct {
		name   string
		next   string
		params RedirectParams
		want   string
	}{
		{
			name:   "plain path",
			next:   "/",
			params: RedirectParams{Message: "hidden", Entry: "e1", Anchor: "e1"},
			want:   "/?message=hidden&entry=e1#e1",
		},
		{
			name:   "existing query",
			next:   "/public?start=30",
			params: RedirectParams{Message: "liked", Entry: "e1", Anchor: "e1"},
			want:   "/public?start=30&message=liked&entry=e1#e1",
		},
		{
			name:   "comment anchor",
			next:   "/e/e1",
			params: RedirectParams{Message: "commented", Entry: "e1", Comment: "c9", Anchor: "c9"},
			want:   "/e/e1?message=commented&entry=e1&comment=c9#c9",
		},
		{
			name:   "no message",
			next:   "/e/e1",
			params: RedirectParams{Anchor: "c9"},
			want:   "/e/e1#c9",
		},
		{
			name:   "old fragment dropped",
			next:   "/e/e1#top",
			params: RedirectParams{Message: "un-liked", Entry: "e1", Anchor: "e1"},
			want:   "/e/e1?message=un-liked&entry=e1#e1",
		},
		{
			name:   "foreign next",
			next:   "https://example.org/",
			params: RedirectParams{Message: "shared", Entry: "e2", Anchor: "e2"},
			want:   "/?message=shared&entry=e2#e2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildRedirect(tt.next, tt.params); got != tt.want {
				t.Errorf("BuildRedirect() = %q, want %q", got, tt.want)
			}
		})
	}
}
