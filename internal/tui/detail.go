package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/ff-to-go/models"
)

type detailModel struct {
	entry  models.Entry
	viewer string
	status string
	now    func() time.Time
}

func (m detailModel) View() string {
	var b strings.Builder

	e := m.entry
	fmt.Fprintf(&b, "%s\n", e.Title)
	fmt.Fprintf(&b, "%s\n", metaStyle.Render(m.byline()))
	if e.Link != "" {
		fmt.Fprintf(&b, "Link:  %s\n", e.Link)
	}
	if e.Room != nil {
		fmt.Fprintf(&b, "Room:  %s\n", e.Room.Name)
	}
	if n := len(e.Media); n > 0 {
		fmt.Fprintf(&b, "Media: %s\n", plural(n, "attachment"))
	}

	if len(e.Likes) > 0 {
		names := make([]string, 0, len(e.Likes))
		for _, like := range e.Likes {
			names = append(names, like.User.Name)
		}
		fmt.Fprintf(&b, "\nLiked by %s\n", strings.Join(names, ", "))
	}

	if len(e.Comments) > 0 {
		b.WriteString("\n")
		for _, c := range e.Comments {
			fmt.Fprintf(&b, "%s: %s\n", titleStyle.Render(c.User.Name), c.Body)
			if when := ago(c.Date.Time, m.now()); when != "" {
				fmt.Fprintf(&b, "  %s\n", metaStyle.Render(when))
			}
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	likeLabel := "l like"
	if m.viewer != "" && e.LikedBy(m.viewer) {
		likeLabel = "l unlike"
	}

	return renderPage("Entry", b.String(), likeLabel+"  h hide  c copy link  esc back  q quit")
}

func (m detailModel) byline() string {
	line := authorName(m.entry)
	if m.entry.Service.Name != "" {
		line += " via " + m.entry.Service.Name
	}
	if when := ago(m.entry.Published.Time, m.now()); when != "" {
		line += ", " + when
	}
	return line
}

func authorName(e models.Entry) string {
	if e.User.Name != "" {
		return e.User.Name
	}
	return e.User.Nickname
}
