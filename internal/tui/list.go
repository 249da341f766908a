package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/ff-to-go/models"
	"github.com/charmbracelet/bubbles/spinner"
)

const listTitleWidth = 72

type listModel struct {
	kind    models.FeedKind
	page    models.FeedPage
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	viewer  string
	now     func() time.Time
}

func newListModel(kind models.FeedKind, viewer string) listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{
		kind:    kind,
		loading: true,
		spinner: s,
		viewer:  viewer,
		now:     time.Now,
	}
}

func (m listModel) current() (models.Entry, bool) {
	if m.idx < 0 || m.idx >= len(m.page.Entries) {
		return models.Entry{}, false
	}
	return m.page.Entries[m.idx], true
}

func (m *listModel) move(delta int) {
	n := len(m.page.Entries)
	if n == 0 {
		m.idx = 0
		return
	}
	m.idx = min(max(m.idx+delta, 0), n-1)
}

func feedTitle(kind models.FeedKind) string {
	switch kind {
	case models.FeedKindHome:
		return "Home"
	case models.FeedKindPublic:
		return "Everyone"
	default:
		return string(kind)
	}
}

func (m listModel) View() string {
	header := "FF To Go / " + feedTitle(m.kind)
	if m.viewer != "" {
		header += " (" + m.viewer + ")"
	}
	if m.loading {
		header += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.page.Entries) == 0:
		b.WriteString("Loading...\n")
	case len(m.page.Entries) == 0:
		b.WriteString("No entries\n")
	default:
		for i, entry := range m.page.Entries {
			b.WriteString(m.renderRow(i, entry))
		}
	}

	if len(m.page.Hidden) > 0 {
		fmt.Fprintf(&b, "\n%s\n", metaStyle.Render(plural(len(m.page.Hidden), "hidden entry")))
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "enter open  l like  h hide  c copy link  "
	if m.page.HasPrevious {
		hotKeys += "p prev  "
	}
	if len(m.page.Entries) > 0 {
		hotKeys += "n next  "
	}
	hotKeys += "tab home/everyone  r reload  i info  q quit"

	return renderPage(header, b.String(), hotKeys)
}

func (m listModel) renderRow(i int, entry models.Entry) string {
	cursor := "  "
	title := fitText(entry.Title, listTitleWidth)
	if i == m.idx {
		cursor = "> "
		title = selectedStyle.Render(title)
	}

	marks := ""
	if m.viewer != "" && entry.LikedBy(m.viewer) {
		marks = " *"
	}

	meta := authorName(entry)
	if entry.Service.Name != "" {
		meta += " via " + entry.Service.Name
	}
	if when := ago(entry.Published.Time, m.now()); when != "" {
		meta += ", " + when
	}
	if n := len(entry.Comments); n > 0 {
		meta += ", " + plural(n, "comment")
	}
	if n := len(entry.Likes); n > 0 {
		meta += ", " + plural(n, "like")
	}

	return fmt.Sprintf("%s%s%s\n    %s\n", cursor, title, marks, metaStyle.Render(meta))
}
