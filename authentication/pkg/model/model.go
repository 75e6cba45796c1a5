package model

import "strings"

// MaxPasswordLength is the longest password bcrypt accepts, in bytes.
const MaxPasswordLength = 72

// Credentials pair a user pseudo with its clear text password.
type Credentials struct {
	Pseudo   string `json:"pseudo"`
	Password string `json:"password"`
}

// Valid reports whether both fields are set and the password fits bcrypt.
func (c Credentials) Valid() bool {
	return strings.TrimSpace(c.Pseudo) != "" &&
		strings.TrimSpace(c.Password) != "" &&
		len(c.Password) <= MaxPasswordLength
}
