package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNickname  = errors.New("nickname is required")
	ErrEmptyRemoteKey = errors.New("remote key is required")
	ErrInvalidNum     = errors.New("number of entries must be between 1 and 30")
	ErrInvalidFont    = errors.New("font size must be at least 1")
	ErrEmptyBody      = errors.New("comment body is required")
	ErrEmptyEntry     = errors.New("entry is required")
	ErrEmptyTitle     = errors.New("title is required")
	ErrEmptyFirstName = errors.New("first name is required")
	ErrEmptyLastName  = errors.New("last name is required")
	ErrInvalidEmail   = errors.New("you must enter a valid email address")
	ErrEmptyPassword  = errors.New("password is required")
	ErrTooLong        = errors.New("value is too long")
	ErrEmptyQuery     = errors.New("search query is required")
)
