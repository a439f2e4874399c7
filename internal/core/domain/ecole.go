package domain

import "time"

type Ecole struct {
	ID         int64
	Nom        string
	Adresse    string
	CodePostal string
	Ville      string
	Email      string
	Telephone  string
	ContactNom string
	Notes      string
	CreatedAt  *time.Time
	UpdatedAt  *time.Time
}

func (e Ecole) Initials() string {
	return Initials(e.Nom, "EC")
}

func (e Ecole) DisplayCity() string {
	return DisplayCity(e.Ville)
}

func (e Ecole) FullAddress() *string {
	return FullAddress(e.Adresse, e.CodePostal, e.Ville)
}
