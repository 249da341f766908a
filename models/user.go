package models

import "time"

// User is a locally registered account.
//
// Password holds the stored representation "algorithm|hash|salt" and is
// never exposed via JSON.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is unique across all accounts and is used as the login.
	Email string `json:"email"`

	// Password is the salted hash of the user's password.
	Password string `json:"-"`

	// LastLogin is set on every successful login. Nil until the first one.
	LastLogin *time.Time `json:"last_login,omitempty"`

	CreatedAt  time.Time `json:"created"`
	ModifiedAt time.Time `json:"modified"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FullName joins the first and last name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// RegisterRequest is the registration form.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Next      string `json:"next_url,omitempty"`
}

// LoginRequest is the email/password login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Next     string `json:"next_url,omitempty"`
}
