package domain

import "errors"

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingToken = errors.New("token not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrAlreadyOwned = errors.New("guitar already owned")

// User models a registered actor in the system. PasswordHash is a bcrypt
// digest and must never leave the service boundary.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email,omitempty"`
	PasswordHash string   `json:"-"`
	Role         string   `json:"role"`
	MyGuitars    []Guitar `json:"myGuitars"`
}

// Owns reports whether the guitar with the given id is already in the user's
// collection.
func (u *User) Owns(guitarID string) bool {
	for _, g := range u.MyGuitars {
		if g.ID == guitarID {
			return true
		}
	}
	return false
}
