package utils

import (
	"net/url"
	"strings"
)

// DefaultNext is the redirect target used when the caller gives none or an
// unsafe one.
const DefaultNext = "/"

// SafeNext returns next when it is a path on this site, DefaultNext otherwise.
// Absolute URLs, protocol-relative URLs ("//host") and backslash tricks are
// rejected.
func SafeNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") {
		return DefaultNext
	}
	if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return DefaultNext
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return DefaultNext
	}

	return next
}

// RedirectParams are the query parameters appended to a redirect target after
// an entry action.
type RedirectParams struct {
	Message string
	Entry   string
	Comment string
	Anchor  string
}

// BuildRedirect appends params to the (sanitized) next path. Parameters are
// joined with "?" or "&" depending on whether next already has a query; the
// anchor replaces any fragment next carried.
//
// Example:
//
//	BuildRedirect("/feed?start=30", RedirectParams{Message: "liked", Entry: "e1", Anchor: "e1"})
//	// "/feed?start=30&message=liked&entry=e1#e1"
func BuildRedirect(next string, params RedirectParams) string {
	next = SafeNext(next)
	if i := strings.IndexByte(next, '#'); i >= 0 {
		next = next[:i]
	}

	var query []string
	if params.Message != "" {
		query = append(query, "message="+url.QueryEscape(params.Message))
	}
	if params.Entry != "" {
		query = append(query, "entry="+url.QueryEscape(params.Entry))
	}
	if params.Comment != "" {
		query = append(query, "comment="+url.QueryEscape(params.Comment))
	}

	var b strings.Builder
	b.WriteString(next)
	if len(query) > 0 {
		if strings.Contains(next, "?") {
			b.WriteByte('&')
		} else {
			b.WriteByte('?')
		}
		b.WriteString(strings.Join(query, "&"))
	}
	if params.Anchor != "" {
		b.WriteByte('#')
		b.WriteString(params.Anchor)
	}

	return b.String()
}
