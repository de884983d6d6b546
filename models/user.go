package models

// User represents an account entity used for authentication.
// The password is only ever held as a bcrypt hash.
type User struct {
	// Username is the unique login of the user.
	Username string `json:"username"`

	// PasswordHash is the salted one-way hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`
}

// Credentials is the username/password pair supplied by a client on
// registration and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
