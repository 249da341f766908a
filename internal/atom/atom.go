// Package atom renders feed pages as Atom 1.0 documents.
package atom

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/ff-to-go/models"
	"github.com/gorilla/feeds"
)

// Title is the title and description of every generated document.
const Title = "FF To Go"

// Language is the xml:lang of every generated document.
const Language = "en"

// document is the Atom root element with its language attribute.
type document struct {
	*feeds.AtomFeed
	Lang string `xml:"xml:lang,attr"`
}

// Writer renders [models.FeedPage] values as Atom.
type Writer struct {
	siteURL   string
	remoteURL string
	now       func() time.Time
}

// NewWriter returns a Writer linking the document to siteURL and every entry
// to its page under remoteURL.
func NewWriter(siteURL, remoteURL string) *Writer {
	return &Writer{
		siteURL:   siteURL,
		remoteURL: strings.TrimRight(remoteURL, "/"),
		now:       time.Now,
	}
}

// Write renders page to w.
func (a *Writer) Write(w io.Writer, page models.FeedPage) error {
	doc := document{
		AtomFeed: (&feeds.Atom{Feed: a.feed(page)}).AtomFeed(),
		Lang:     Language,
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write atom: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write atom: %w", err)
	}
	return nil
}

func (a *Writer) feed(page models.FeedPage) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       Title,
		Link:        &feeds.Link{Href: a.siteURL},
		Description: Title,
		Created:     a.now().UTC(),
		Items:       make([]*feeds.Item, 0, len(page.Entries)),
	}

	for _, entry := range page.Entries {
		if entry.Updated.After(feed.Updated) {
			feed.Updated = entry.Updated.Time
		}
		feed.Items = append(feed.Items, a.item(entry, feed.Created))
	}

	return feed
}

// item converts entry. A missing updated date falls back to the published
// date, then to fallback.
func (a *Writer) item(entry models.Entry, fallback time.Time) *feeds.Item {
	permalink := a.remoteURL + "/e/" + url.PathEscape(entry.ID)

	link := entry.Link
	if link == "" {
		link = permalink
	}

	created := entry.Published.Time
	if created.IsZero() {
		created = fallback
	}
	updated := entry.Updated.Time
	if updated.IsZero() {
		updated = created
	}

	return &feeds.Item{
		Id:          permalink,
		Title:       entry.Title,
		Link:        &feeds.Link{Href: link},
		Description: fmt.Sprintf(`<a href="%s">View in FriendFeed</a>`, permalink),
		Author:      &feeds.Author{Name: entry.User.Name},
		Created:     created,
		Updated:     updated,
	}
}
