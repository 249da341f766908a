package models

// EntryView is an [Entry] prepared for a given viewer and display settings.
//
// The embedded Entry keeps every field of the remote entry. Media is emptied
// when the viewer turned media off, and Comments are replaced by their views.
type EntryView struct {
	Entry

	// TitleHTML is the escaped title with @mentions linked.
	TitleHTML string `json:"title_html"`
	// DisplayLink is the entry link, routed through the mobile proxy when
	// the viewer asked for it.
	DisplayLink string `json:"display_link,omitempty"`
	// Target is "_blank" when links open in a new window.
	Target string `json:"target,omitempty"`
	// Likeable reports whether the viewer may like the entry.
	Likeable bool `json:"likeable"`
	// Liked reports whether the viewer already likes the entry.
	Liked bool `json:"liked"`

	Comments []CommentView `json:"comments"`
}

// CommentView is a [Comment] with its body rendered as HTML.
type CommentView struct {
	Comment

	BodyHTML string `json:"body_html"`
}
