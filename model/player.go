package model

import (
	"strings"
	"time"
)

// Player is a league member who submits picks. Emails are stored in
// normalized form and are unique across the league.
type Player struct {
	ID      int64
	Name    string
	Email   string
	Created time.Time
}

// NormalizeEmail lower-cases an email address and strips periods from the
// local part, so "Jane.Doe@Gmail.com" and "janedoe@gmail.com" are the same
// registration.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.IndexByte(email, '@')
	if at < 0 {
		return strings.ToLower(email)
	}
	local := strings.ReplaceAll(email[:at], ".", "")
	return strings.ToLower(local + email[at:])
}
