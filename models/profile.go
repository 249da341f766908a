package models

// Profile is the body of the user, room and list profile endpoints. Fields
// that do not apply to a given kind of profile are left empty.
type Profile struct {
	ID            string        `json:"id,omitempty"`
	Nickname      string        `json:"nickname,omitempty"`
	Name          string        `json:"name"`
	Status        string        `json:"status,omitempty"`
	ProfileURL    string        `json:"profileUrl,omitempty"`
	Description   string        `json:"description,omitempty"`
	URL           string        `json:"url,omitempty"`
	Services      []Service     `json:"services,omitempty"`
	Subscriptions []Subscriber  `json:"subscriptions,omitempty"`
	Members       []Subscriber  `json:"members,omitempty"`
	Rooms         []RoomSummary `json:"rooms,omitempty"`
	Lists         []ListSummary `json:"lists,omitempty"`
}

// Service is a third-party service imported into a user's feed.
type Service struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IconURL    string `json:"iconUrl,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

// Subscriber is a user referenced from a profile.
type Subscriber struct {
	ID         string `json:"id,omitempty"`
	Nickname   string `json:"nickname"`
	Name       string `json:"name"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

// RoomSummary is a room the profile owner belongs to.
type RoomSummary struct {
	ID       string `json:"id,omitempty"`
	Nickname string `json:"nickname"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
}

// ListSummary is a friend list owned by the profile owner.
type ListSummary struct {
	ID       string `json:"id,omitempty"`
	Nickname string `json:"nickname"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
}
