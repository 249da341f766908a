package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ff-to-go/internal/service"
	"github.com/MKhiriev/ff-to-go/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenInfo
)

const defaultStatusTTL = 2 * time.Second

type appModel struct {
	ctx       context.Context
	feeds     service.FeedService
	entries   service.EntryService
	session   *models.Session
	buildInfo models.AppBuildInfo

	copyText  func(string) error
	statusTTL time.Duration

	currentScreen screen
	list          listModel
	detail        detailModel

	showError    bool
	errorOverlay errorOverlayModel
}

func newAppModel(ctx context.Context, feeds service.FeedService, entries service.EntryService,
	session *models.Session, start models.FeedKind, info models.AppBuildInfo) appModel {
	return appModel{
		ctx:       ctx,
		feeds:     feeds,
		entries:   entries,
		session:   session,
		buildInfo: info,
		copyText:  clipboard.WriteAll,
		statusTTL: defaultStatusTTL,
		list:      newListModel(start, session.Nickname()),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadPage(m.list.kind, 0))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		switch m.currentScreen {
		case screenDetail:
			return m.updateDetail(msg)
		case screenInfo:
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.currentScreen = screenList
			}
			if key.Matches(msg, keys.quit) {
				return m, tea.Quit
			}
			return m, nil
		default:
			return m.updateList(msg)
		}

	case pageLoadedMsg:
		if msg.kind != m.list.kind {
			return m, nil
		}
		m.list.loading = false
		if msg.err != nil {
			m.showErrorText(humanizeError(msg.err))
			return m, nil
		}
		if msg.start != m.list.page.Start {
			m.list.idx = 0
		}
		m.list.page = msg.page
		m.list.move(0)
		m.refreshDetail()
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.showErrorText(humanizeError(msg.err))
			return m, nil
		}
		m.setStatus(msg.result.Message)
		return m, tea.Batch(m.reload(m.list.page.Start), m.cmdClearStatus())

	case copiedMsg:
		if msg.err != nil {
			m.setStatus(errorStyle.Render(humanizeError(msg.err)))
		} else {
			m.setStatus("link copied")
		}
		return m, m.cmdClearStatus()

	case clearStatusMsg:
		m.setStatus("")
		return m, nil

	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.move(-1)
	case key.Matches(msg, keys.down):
		m.list.move(1)
	case key.Matches(msg, keys.enter):
		if entry, ok := m.list.current(); ok {
			m.detail = detailModel{entry: entry, viewer: m.list.viewer, now: m.list.now}
			m.currentScreen = screenDetail
		}
	case key.Matches(msg, keys.next):
		if len(m.list.page.Entries) > 0 && !m.list.loading {
			return m, m.reload(m.list.page.Next)
		}
	case key.Matches(msg, keys.previous):
		if m.list.page.HasPrevious && !m.list.loading {
			return m, m.reload(m.list.page.Previous)
		}
	case key.Matches(msg, keys.reload):
		return m, m.reload(m.list.page.Start)
	case key.Matches(msg, keys.tab):
		return m.toggleFeed()
	case key.Matches(msg, keys.info):
		m.currentScreen = screenInfo
	case key.Matches(msg, keys.like), key.Matches(msg, keys.hide), key.Matches(msg, keys.copy):
		if entry, ok := m.list.current(); ok {
			return m.entryKey(msg, entry)
		}
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenList
		m.detail.status = ""
	case key.Matches(msg, keys.like), key.Matches(msg, keys.hide), key.Matches(msg, keys.copy):
		return m.entryKey(msg, m.detail.entry)
	}
	return m, nil
}

func (m appModel) entryKey(msg tea.KeyMsg, entry models.Entry) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.copy) {
		if entry.Link == "" {
			return m, func() tea.Msg { return copiedMsg{err: errNoLink} }
		}
		return m, m.cmdCopy(entry.Link)
	}

	if !m.session.Authenticated() {
		m.showErrorText(humanizeError(service.ErrCredentialsRequired))
		return m, nil
	}

	action := models.ActionHide
	if key.Matches(msg, keys.like) {
		action = models.ActionLike
		if entry.LikedBy(m.session.Nickname()) {
			action = models.ActionUnlike
		}
	}
	return m, m.cmdAct(entry.ID, action)
}

func (m appModel) toggleFeed() (tea.Model, tea.Cmd) {
	next := models.FeedKindHome
	if m.list.kind == models.FeedKindHome {
		next = models.FeedKindPublic
	}
	if next == models.FeedKindHome && !m.session.Authenticated() {
		m.showErrorText(humanizeError(service.ErrCredentialsRequired))
		return m, nil
	}

	m.list.kind = next
	m.list.page = models.FeedPage{}
	m.list.idx = 0
	return m, m.reload(0)
}

// refreshDetail points the open detail screen at the reloaded copy of its
// entry, or closes it when the entry left the page.
func (m *appModel) refreshDetail() {
	if m.currentScreen != screenDetail {
		return
	}
	for _, entry := range m.list.page.Entries {
		if entry.ID == m.detail.entry.ID {
			m.detail.entry = entry
			return
		}
	}
	m.currentScreen = screenList
}

func (m *appModel) reload(start int) tea.Cmd {
	m.list.loading = true
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadPage(m.list.kind, start))
}

func (m *appModel) setStatus(status string) {
	m.list.status = status
	m.detail.status = status
}

func (m *appModel) showErrorText(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenDetail:
		body = m.detail.View()
	case screenInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	default:
		body = m.list.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) cmdLoadPage(kind models.FeedKind, start int) tea.Cmd {
	ctx, feeds, session := m.ctx, m.feeds, m.session
	return func() tea.Msg {
		req := models.PageRequest{Start: start}

		var (
			page models.FeedPage
			err  error
		)
		switch kind {
		case models.FeedKindHome:
			page, err = feeds.Home(ctx, session, req)
		default:
			page, err = feeds.Public(ctx, session, req)
		}
		return pageLoadedMsg{kind: kind, start: start, page: page, err: err}
	}
}

func (m appModel) cmdAct(entryID string, action models.EntryAction) tea.Cmd {
	ctx, entries, session := m.ctx, m.entries, m.session
	return func() tea.Msg {
		result, err := entries.Act(ctx, session, entryID, action, "")
		return actionDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m appModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
