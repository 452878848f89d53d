package services

import (
	"errors"
	"net/mail"
	"strings"
)

var ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")

// NormalizeUsername trims surrounding whitespace only. Usernames are
// case-sensitive as stored, so no case folding happens here.
func NormalizeUsername(raw string) string {
	return strings.TrimSpace(raw)
}

func NormalizeCredentialsInput(usernameRaw string, passwordRaw string) (string, string, error) {
	username := NormalizeUsername(usernameRaw)
	password := strings.TrimSpace(passwordRaw)
	if username == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return username, password, nil
}

// NormalizeEmail returns nil for an absent email and an error for a present
// but unparseable one.
func NormalizeEmail(raw string) (*string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return nil, nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrAuthCredentialsInvalid
	}
	return &email, nil
}
