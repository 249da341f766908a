package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrCredentialsRequired = errors.New("login required")
	ErrBadCredentials      = errors.New("bad username and password")
	ErrUnknownAction       = errors.New("unknown action")
	ErrNoAccount           = errors.New("no account attached to session")

	ErrSessionNotFound         = errors.New("session not found")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
