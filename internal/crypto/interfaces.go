package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and checks the stored form of local account
// passwords.
//
// Stored values have the layout "algorithm|hash|salt":
//
//	argon2id|<hex argon2id(password, salt)>|<salt>
//	sha1|<hex sha1(password + salt)>|<salt>
//
// New passwords are always hashed with argon2id. sha1 values are accepted
// for verification only, so accounts imported from the legacy store keep
// working until their password is reset.
type PasswordHasher interface {
	// Hash returns the stored form of password with a freshly generated salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored value. Unknown
	// algorithms and malformed values never match.
	Verify(password, stored string) bool
}
