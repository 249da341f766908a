package tui

import (
	"github.com/MKhiriev/ff-to-go/models"
)

type pageLoadedMsg struct {
	kind  models.FeedKind
	start int
	page  models.FeedPage
	err   error
}

type actionDoneMsg struct {
	result models.ActionResult
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
