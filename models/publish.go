package models

// PublishRequest describes a new entry to share.
type PublishRequest struct {
	Title   string
	Link    string
	Comment string
	Via     string
	Room    string

	// ImageURLs are image URLs without a separate click-through link.
	ImageURLs []string
	Images    []Image

	// AudioURLs are audio URLs without a separate title.
	AudioURLs []string
	Audio     []Audio
}

// Image is an image attachment with an optional click-through link.
type Image struct {
	URL  string
	Link string
}

// Audio is an audio attachment with an optional title.
type Audio struct {
	URL   string
	Title string
}

// ShareRequest is the share form submitted by API clients.
type ShareRequest struct {
	Title string `json:"title"`
	Room  string `json:"room,omitempty"`
	Next  string `json:"next,omitempty"`
}

// CommentRequest is the comment form submitted by API clients. CommentID is
// set when an existing comment is edited.
type CommentRequest struct {
	EntryID   string `json:"-"`
	CommentID string `json:"comment,omitempty"`
	Body      string `json:"body"`
	Next      string `json:"next,omitempty"`
}

// EntryAction is an action applied to an entry by its viewer.
type EntryAction string

const (
	ActionHide     EntryAction = "hide"
	ActionUnhide   EntryAction = "unhide"
	ActionLike     EntryAction = "like"
	ActionUnlike   EntryAction = "unlike"
	ActionDelete   EntryAction = "delete"
	ActionUndelete EntryAction = "undelete"
)

// ActionResult is returned by every entry mutation. Next is the local URL
// the client should navigate to, carrying the message, entry and comment as
// query arguments.
type ActionResult struct {
	Message   string `json:"message,omitempty"`
	EntryID   string `json:"entry,omitempty"`
	CommentID string `json:"comment,omitempty"`
	Next      string `json:"next"`
}
