package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/ff-to-go/models"
)

const (
	FieldNickname  = "nickname"
	FieldRemoteKey = "key"
	FieldNum       = "num"
	FieldFontSize  = "fontsize"
	FieldBody      = "body"
	FieldEntry     = "entry"
	FieldTitle     = "title"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPassword  = "password"

	// MaxNum is the largest page size the remote API serves.
	MaxNum = 30

	maxNameLength     = 30
	maxEmailLength    = 100
	maxPasswordLength = 100
)

var emailRe = regexp.MustCompile(`^[\w\d.\-+]+@[\w\d.\-+]+\.[\w\d.\-+]+$`)

// FormValidator validates the forms submitted by API clients:
// [models.Credentials], [models.Settings], [models.CommentRequest],
// [models.ShareRequest], [models.RegisterRequest] and [models.LoginRequest].
type FormValidator struct {
}

func NewFormValidator() Validator {
	return &FormValidator{}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Settings:
		return v.validateSettings(value, fields...)
	case *models.Settings:
		return v.validateSettings(*value, fields...)

	case models.CommentRequest:
		return v.validateComment(value, fields...)
	case *models.CommentRequest:
		return v.validateComment(*value, fields...)

	case models.ShareRequest:
		return v.validateShare(value, fields...)
	case *models.ShareRequest:
		return v.validateShare(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNickname, FieldRemoteKey}
	}

	for _, f := range fields {
		switch f {
		case FieldNickname:
			if strings.TrimSpace(creds.Nickname) == "" {
				return ErrEmptyNickname
			}
		case FieldRemoteKey:
			if strings.TrimSpace(creds.RemoteKey) == "" {
				return ErrEmptyRemoteKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateSettings(settings models.Settings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNum, FieldFontSize}
	}

	for _, f := range fields {
		switch f {
		case FieldNum:
			if settings.Num < 1 || settings.Num > MaxNum {
				return ErrInvalidNum
			}
		case FieldFontSize:
			if settings.FontSize < 1 {
				return ErrInvalidFont
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateComment(comment models.CommentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntry, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldEntry:
			if strings.TrimSpace(comment.EntryID) == "" {
				return ErrEmptyEntry
			}
		case FieldBody:
			if strings.TrimSpace(comment.Body) == "" {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateShare(share models.ShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(share.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if err := required(req.FirstName, maxNameLength, ErrEmptyFirstName); err != nil {
				return err
			}
		case FieldLastName:
			if err := required(req.LastName, maxNameLength, ErrEmptyLastName); err != nil {
				return err
			}
		case FieldEmail:
			if err := validEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := required(req.Password, maxPasswordLength, ErrEmptyPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := required(req.Password, maxPasswordLength, ErrEmptyPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func required(value string, maxLength int, empty error) error {
	if strings.TrimSpace(value) == "" {
		return empty
	}
	if len(value) > maxLength {
		return ErrTooLong
	}
	return nil
}

func validEmail(email string) error {
	if len(email) > maxEmailLength {
		return ErrTooLong
	}
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
