package domain

import "time"

// Client is a customer company as shown to the user.
type Client struct {
	ID               int64
	Nom              string
	Email            string
	Telephone        string
	Adresse          string
	CodePostal       string
	Ville            string
	ContactNom       string
	ContactEmail     string
	ContactTelephone string
	Notes            string
	CreatedAt        *time.Time
	UpdatedAt        *time.Time

	// From the extras store
	NumeroTVA     string
	RaisonSociale string
}

// ClientExtras holds client fields the backend does not persist.
type ClientExtras struct {
	NumeroTVA     string `db:"numero_tva" json:"numero_tva,omitempty"`
	RaisonSociale string `db:"raison_sociale" json:"raison_sociale,omitempty"`
}

func (c Client) Initials() string {
	return Initials(c.Nom, "CL")
}

func (c Client) DisplayCity() string {
	return DisplayCity(c.Ville)
}

func (c Client) FullAddress() *string {
	return FullAddress(c.Adresse, c.CodePostal, c.Ville)
}

// DisplayName prefers the registered company name when one is known.
func (c Client) DisplayName() string {
	if c.RaisonSociale != "" {
		return c.RaisonSociale
	}
	return c.Nom
}

func (c Client) Extras() ClientExtras {
	return ClientExtras{NumeroTVA: c.NumeroTVA, RaisonSociale: c.RaisonSociale}
}
