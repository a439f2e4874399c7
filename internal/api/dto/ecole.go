package dto

import "time"

// Ecole is a partner school hosting sessions.
type Ecole struct {
	ID         int64      `json:"id"`
	Nom        string     `json:"nom"`
	Adresse    *string    `json:"adresse,omitempty"`
	CodePostal *string    `json:"code_postal,omitempty"`
	Ville      *string    `json:"ville,omitempty"`
	Email      *string    `json:"email,omitempty"`
	Telephone  *string    `json:"telephone,omitempty"`
	ContactNom *string    `json:"contact_nom,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type EcoleCreate struct {
	Nom        string  `json:"nom"`
	Adresse    *string `json:"adresse,omitempty"`
	CodePostal *string `json:"code_postal,omitempty"`
	Ville      *string `json:"ville,omitempty"`
	Email      *string `json:"email,omitempty"`
	Telephone  *string `json:"telephone,omitempty"`
	ContactNom *string `json:"contact_nom,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (c EcoleCreate) Fields() map[string]any {
	m := map[string]any{"nom": c.Nom}
	putPtr(m, "adresse", c.Adresse)
	putPtr(m, "code_postal", c.CodePostal)
	putPtr(m, "ville", c.Ville)
	putPtr(m, "email", c.Email)
	putPtr(m, "telephone", c.Telephone)
	putPtr(m, "contact_nom", c.ContactNom)
	putPtr(m, "notes", c.Notes)
	return m
}

type EcoleUpdate struct {
	Nom        Field[string] `json:"nom"`
	Adresse    Field[string] `json:"adresse"`
	CodePostal Field[string] `json:"code_postal"`
	Ville      Field[string] `json:"ville"`
	Email      Field[string] `json:"email"`
	Telephone  Field[string] `json:"telephone"`
	ContactNom Field[string] `json:"contact_nom"`
	Notes      Field[string] `json:"notes"`
}

func (u EcoleUpdate) Fields() map[string]any {
	m := map[string]any{}
	u.Nom.put(m, "nom")
	u.Adresse.put(m, "adresse")
	u.CodePostal.put(m, "code_postal")
	u.Ville.put(m, "ville")
	u.Email.put(m, "email")
	u.Telephone.put(m, "telephone")
	u.ContactNom.put(m, "contact_nom")
	u.Notes.put(m, "notes")
	return m
}
