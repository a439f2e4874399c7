package domain

import (
	"strings"
	"time"
)

type User struct {
	ID        int64
	Email     string
	Nom       string
	Prenom    string
	Role      string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func (u User) FullName() string {
	return strings.TrimSpace(u.Prenom + " " + u.Nom)
}

// DisplayName falls back to the email when no name is known.
func (u User) DisplayName() string {
	if name := u.FullName(); name != "" {
		return name
	}
	return u.Email
}

func (u User) Initials() string {
	return Initials(u.FullName(), "US")
}
