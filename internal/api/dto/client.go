package dto

import "time"

// Client is the backend representation of a customer company.
type Client struct {
	ID               int64      `json:"id"`
	Nom              string     `json:"nom"`
	Email            *string    `json:"email,omitempty"`
	Telephone        *string    `json:"telephone,omitempty"`
	Adresse          *string    `json:"adresse,omitempty"`
	CodePostal       *string    `json:"code_postal,omitempty"`
	Ville            *string    `json:"ville,omitempty"`
	ContactNom       *string    `json:"contact_nom,omitempty"`
	ContactEmail     *string    `json:"contact_email,omitempty"`
	ContactTelephone *string    `json:"contact_telephone,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// ClientCreate represents the client creation request
type ClientCreate struct {
	Nom              string  `json:"nom"`
	Email            *string `json:"email,omitempty"`
	Telephone        *string `json:"telephone,omitempty"`
	Adresse          *string `json:"adresse,omitempty"`
	CodePostal       *string `json:"code_postal,omitempty"`
	Ville            *string `json:"ville,omitempty"`
	ContactNom       *string `json:"contact_nom,omitempty"`
	ContactEmail     *string `json:"contact_email,omitempty"`
	ContactTelephone *string `json:"contact_telephone,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

func (c ClientCreate) Fields() map[string]any {
	m := map[string]any{"nom": c.Nom}
	putPtr(m, "email", c.Email)
	putPtr(m, "telephone", c.Telephone)
	putPtr(m, "adresse", c.Adresse)
	putPtr(m, "code_postal", c.CodePostal)
	putPtr(m, "ville", c.Ville)
	putPtr(m, "contact_nom", c.ContactNom)
	putPtr(m, "contact_email", c.ContactEmail)
	putPtr(m, "contact_telephone", c.ContactTelephone)
	putPtr(m, "notes", c.Notes)
	return m
}

// ClientUpdate represents a partial client update; only set fields are sent.
type ClientUpdate struct {
	Nom              Field[string] `json:"nom"`
	Email            Field[string] `json:"email"`
	Telephone        Field[string] `json:"telephone"`
	Adresse          Field[string] `json:"adresse"`
	CodePostal       Field[string] `json:"code_postal"`
	Ville            Field[string] `json:"ville"`
	ContactNom       Field[string] `json:"contact_nom"`
	ContactEmail     Field[string] `json:"contact_email"`
	ContactTelephone Field[string] `json:"contact_telephone"`
	Notes            Field[string] `json:"notes"`
}

func (u ClientUpdate) Fields() map[string]any {
	m := map[string]any{}
	u.Nom.put(m, "nom")
	u.Email.put(m, "email")
	u.Telephone.put(m, "telephone")
	u.Adresse.put(m, "adresse")
	u.CodePostal.put(m, "code_postal")
	u.Ville.put(m, "ville")
	u.ContactNom.put(m, "contact_nom")
	u.ContactEmail.put(m, "contact_email")
	u.ContactTelephone.put(m, "contact_telephone")
	u.Notes.put(m, "notes")
	return m
}
