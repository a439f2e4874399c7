package domain

import (
	"strings"
	"time"
)

// Category separates in-house trainers from subcontractors.
type Category string

const (
	CategoryAll     Category = ""
	CategoryInterne Category = "interne"
	CategoryExterne Category = "externe"
)

// ParseCategory accepts "", "all", "interne" and "externe".
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "tous":
		return CategoryAll, true
	case "interne":
		return CategoryInterne, true
	case "externe":
		return CategoryExterne, true
	}
	return CategoryAll, false
}

type Formateur struct {
	ID              int64
	Nom             string
	Prenom          string
	Email           string
	Telephone       string
	Specialite      string
	TarifJournalier *float64
	Adresse         string
	CodePostal      string
	Ville           string
	Notes           string
	CreatedAt       *time.Time
	UpdatedAt       *time.Time

	// From the extras store
	IsExternal bool
	SocieteNom string
	NumeroTVA  string
}

// FormateurExtras holds trainer fields the backend does not persist.
type FormateurExtras struct {
	IsExternal bool   `db:"is_external" json:"is_external,omitempty"`
	SocieteNom string `db:"societe_nom" json:"societe_nom,omitempty"`
	NumeroTVA  string `db:"numero_tva" json:"numero_tva,omitempty"`
}

func (f Formateur) FullName() string {
	return strings.TrimSpace(f.Prenom + " " + f.Nom)
}

func (f Formateur) Initials() string {
	return Initials(f.FullName(), "FO")
}

func (f Formateur) DisplayCity() string {
	return DisplayCity(f.Ville)
}

func (f Formateur) FullAddress() *string {
	return FullAddress(f.Adresse, f.CodePostal, f.Ville)
}

func (f Formateur) Category() Category {
	if f.IsExternal {
		return CategoryExterne
	}
	return CategoryInterne
}

// TarifLabel renders the daily rate, "" when unknown.
func (f Formateur) TarifLabel() string {
	if f.TarifJournalier == nil {
		return ""
	}
	return formatEuro(*f.TarifJournalier) + " / jour"
}

func (f Formateur) Extras() FormateurExtras {
	return FormateurExtras{IsExternal: f.IsExternal, SocieteNom: f.SocieteNom, NumeroTVA: f.NumeroTVA}
}
