package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// RemoteTimeLayout is the layout the feed API uses for every date it returns.
const RemoteTimeLayout = "2006-01-02T15:04:05Z"

// Timestamp is a UTC point in time decoded from the feed API.
//
// The API formats dates as "YYYY-MM-DDTHH:MM:SSZ". Full RFC 3339 values are
// accepted as well. Null or empty values decode to the zero time.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, converted to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// ParseTimestamp parses value using [RemoteTimeLayout], falling back to
// RFC 3339.
func ParseTimestamp(value string) (Timestamp, error) {
	t, err := time.Parse(RemoteTimeLayout, value)
	if err == nil {
		return NewTimestamp(t), nil
	}

	t, rfcErr := time.Parse(time.RFC3339Nano, value)
	if rfcErr != nil {
		return Timestamp{}, fmt.Errorf("invalid remote date %q: %w", value, err)
	}

	return NewTimestamp(t), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var value string
	if err := json.Unmarshal(b, &value); err != nil {
		return err
	}
	if value == "" {
		*t = Timestamp{}
		return nil
	}

	parsed, err := ParseTimestamp(value)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(RemoteTimeLayout))
}
