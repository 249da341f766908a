// Package display holds the filters applied to remote entries before they
// are handed to API clients: mobile proxy link rewriting, @mention linking,
// like permissions and HTML sanitizing.
package display

import (
	"bytes"
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/ff-to-go/models"
	"github.com/microcosm-cc/bluemonday"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const twitterProfileURL = "http://twitter.com/"

var mentionRe = regexp.MustCompile(`@(\w+)`)

// Filters carries the site-dependent state of the display filters.
type Filters struct {
	siteHost string
	proxyURL string
	policy   *bluemonday.Policy
}

// NewFilters returns filters for a front-end served at siteURL. proxyURL is
// the mobile proxy prefix the escaped target URL is appended to.
func NewFilters(siteURL, proxyURL string) *Filters {
	host := siteURL
	if u, err := url.Parse(siteURL); err == nil && u.Host != "" {
		host = u.Hostname()
	}

	return &Filters{
		siteHost: strings.TrimPrefix(strings.ToLower(host), "www."),
		proxyURL: proxyURL,
		policy:   bluemonday.UGCPolicy(),
	}
}

// GmpizeURL routes link through the mobile proxy unless it points at this
// site, is relative, or is not an http(s) URL.
func (f *Filters) GmpizeURL(link string) string {
	if !f.proxied(link) {
		return link
	}
	return f.proxyURL + url.QueryEscape(link)
}

func (f *Filters) proxied(link string) bool {
	if f.proxyURL == "" || strings.HasPrefix(link, f.proxyURL) {
		return false
	}

	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	return host != f.siteHost && !strings.HasSuffix(host, "."+f.siteHost)
}

// Gmpize rewrites the href of every anchor in the HTML fragment with
// [Filters.GmpizeURL]. The fragment is returned unchanged if it cannot be
// parsed.
func (f *Filters) Gmpize(fragment string) string {
	context := &nethtml.Node{Type: nethtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := nethtml.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return fragment
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		f.rewriteAnchors(n)
		if err = nethtml.Render(&buf, n); err != nil {
			return fragment
		}
	}
	return buf.String()
}

func (f *Filters) rewriteAnchors(n *nethtml.Node) {
	if n.Type == nethtml.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key == "href" {
				n.Attr[i].Val = f.GmpizeURL(attr.Val)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		f.rewriteAnchors(c)
	}
}

// Sanitize strips everything but user-generated-content markup from s.
func (f *Filters) Sanitize(s string) string {
	return f.policy.Sanitize(s)
}

// Twitterize links every @mention in text to the Twitter profile of the
// mentioned user.
func Twitterize(text string) string {
	return mentionRe.ReplaceAllString(text, `@<a href="`+twitterProfileURL+`$1">$1</a>`)
}

// Likeable reports whether the viewer may like entry: anonymous entries
// always, otherwise only entries posted by someone else.
func Likeable(entry models.Entry, nickname string) bool {
	if entry.Anonymous {
		return true
	}
	return entry.User.Nickname != nickname
}

// Liked reports whether nickname is among the users that liked entry.
func Liked(nickname string, entry models.Entry) bool {
	return entry.LikedBy(nickname)
}

// Present builds the views of entries for viewer. An empty viewer is an
// anonymous reader who can neither like nor has liked anything.
func (f *Filters) Present(entries []models.Entry, viewer string, settings models.Settings) []models.EntryView {
	views := make([]models.EntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, f.present(entry, viewer, settings))
	}
	return views
}

func (f *Filters) present(entry models.Entry, viewer string, settings models.Settings) models.EntryView {
	view := models.EntryView{
		TitleHTML:   f.renderText(entry.Title, settings),
		DisplayLink: entry.Link,
		Comments:    make([]models.CommentView, 0, len(entry.Comments)),
	}
	if viewer != "" {
		view.Likeable = Likeable(entry, viewer)
		view.Liked = Liked(viewer, entry)
	}
	if settings.GoogleMobileProxy && entry.Link != "" {
		view.DisplayLink = f.GmpizeURL(entry.Link)
	}
	if settings.NewWindow {
		view.Target = "_blank"
	}

	for _, comment := range entry.Comments {
		view.Comments = append(view.Comments, models.CommentView{
			Comment:  comment,
			BodyHTML: f.renderText(comment.Body, settings),
		})
	}

	if !settings.Media {
		entry.Media = nil
	}
	entry.Comments = nil
	view.Entry = entry

	return view
}

// renderText turns plain remote text into safe HTML.
func (f *Filters) renderText(text string, settings models.Settings) string {
	out := f.Sanitize(Twitterize(html.EscapeString(text)))
	if settings.GoogleMobileProxy {
		out = f.Gmpize(out)
	}
	return out
}
