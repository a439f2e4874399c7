package dto

import "time"

// Formateur is a trainer who runs sessions.
type Formateur struct {
	ID              int64      `json:"id"`
	Nom             string     `json:"nom"`
	Prenom          *string    `json:"prenom,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Telephone       *string    `json:"telephone,omitempty"`
	Specialite      *string    `json:"specialite,omitempty"`
	TarifJournalier *float64   `json:"tarif_journalier,omitempty"`
	Adresse         *string    `json:"adresse,omitempty"`
	CodePostal      *string    `json:"code_postal,omitempty"`
	Ville           *string    `json:"ville,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type FormateurCreate struct {
	Nom             string   `json:"nom"`
	Prenom          *string  `json:"prenom,omitempty"`
	Email           *string  `json:"email,omitempty"`
	Telephone       *string  `json:"telephone,omitempty"`
	Specialite      *string  `json:"specialite,omitempty"`
	TarifJournalier *float64 `json:"tarif_journalier,omitempty"`
	Adresse         *string  `json:"adresse,omitempty"`
	CodePostal      *string  `json:"code_postal,omitempty"`
	Ville           *string  `json:"ville,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

func (c FormateurCreate) Fields() map[string]any {
	m := map[string]any{"nom": c.Nom}
	putPtr(m, "prenom", c.Prenom)
	putPtr(m, "email", c.Email)
	putPtr(m, "telephone", c.Telephone)
	putPtr(m, "specialite", c.Specialite)
	putPtr(m, "tarif_journalier", c.TarifJournalier)
	putPtr(m, "adresse", c.Adresse)
	putPtr(m, "code_postal", c.CodePostal)
	putPtr(m, "ville", c.Ville)
	putPtr(m, "notes", c.Notes)
	return m
}

type FormateurUpdate struct {
	Nom             Field[string]  `json:"nom"`
	Prenom          Field[string]  `json:"prenom"`
	Email           Field[string]  `json:"email"`
	Telephone       Field[string]  `json:"telephone"`
	Specialite      Field[string]  `json:"specialite"`
	TarifJournalier Field[float64] `json:"tarif_journalier"`
	Adresse         Field[string]  `json:"adresse"`
	CodePostal      Field[string]  `json:"code_postal"`
	Ville           Field[string]  `json:"ville"`
	Notes           Field[string]  `json:"notes"`
}

func (u FormateurUpdate) Fields() map[string]any {
	m := map[string]any{}
	u.Nom.put(m, "nom")
	u.Prenom.put(m, "prenom")
	u.Email.put(m, "email")
	u.Telephone.put(m, "telephone")
	u.Specialite.put(m, "specialite")
	u.TarifJournalier.put(m, "tarif_journalier")
	u.Adresse.put(m, "adresse")
	u.CodePostal.put(m, "code_postal")
	u.Ville.put(m, "ville")
	u.Notes.put(m, "notes")
	return m
}
