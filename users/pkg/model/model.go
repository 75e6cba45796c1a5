package model

import (
	"strings"

	authmodel "github.com/abhishek622/catflix/authentication/pkg/model"
)

// User is a catflix member. Pseudo is its immutable identifier.
type User struct {
	Pseudo    string `json:"pseudo"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Valid reports whether every field is set.
func (u User) Valid() bool {
	return strings.TrimSpace(u.Pseudo) != "" &&
		strings.TrimSpace(u.Firstname) != "" &&
		strings.TrimSpace(u.Lastname) != ""
}

// UserWithCredentials is the payload of user creation and update. The
// password is forwarded to the authentication service and never stored here.
type UserWithCredentials struct {
	Pseudo    string `json:"pseudo"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Password  string `json:"password"`
}

// User returns the profile part.
func (u UserWithCredentials) User() User {
	return User{Pseudo: u.Pseudo, Firstname: u.Firstname, Lastname: u.Lastname}
}

// Credentials returns the authentication part.
func (u UserWithCredentials) Credentials() authmodel.Credentials {
	return authmodel.Credentials{Pseudo: u.Pseudo, Password: u.Password}
}

// Valid reports whether the profile and the credentials are both valid.
func (u UserWithCredentials) Valid() bool {
	return u.User().Valid() && u.Credentials().Valid()
}
