package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("Username atau password salah!")

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Admin is the identity established by a successful login.
type Admin struct {
	Username string `json:"username"`
}

// Authenticator checks credentials against an identity source.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (Admin, error)
}

// StaticAuthenticator accepts exactly one username and bcrypt password hash.
type StaticAuthenticator struct {
	Username     string
	PasswordHash string
}

// NewStaticAuthenticator hashes password when it is not already a bcrypt hash.
func NewStaticAuthenticator(username, password string) (*StaticAuthenticator, error) {
	hash := password
	if !looksLikeBcrypt(password) {
		h, err := HashPassword(password)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	return &StaticAuthenticator{Username: username, PasswordHash: hash}, nil
}

func (a *StaticAuthenticator) Authenticate(_ context.Context, creds Credentials) (Admin, error) {
	if creds.Username != a.Username {
		return Admin{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(creds.Password)) != nil {
		return Admin{}, ErrInvalidCredentials
	}
	return Admin{Username: a.Username}, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func looksLikeBcrypt(value string) bool {
	return len(value) > 4 && value[0:2] == "$2"
}
