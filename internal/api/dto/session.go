package dto

import "time"

// Session is a scheduled training. Dates are YYYY-MM-DD, hours HH:MM.
type Session struct {
	ID                int64      `json:"id"`
	Titre             string     `json:"titre"`
	DateDebut         string     `json:"date_debut"`
	DateFin           string     `json:"date_fin"`
	HeureDebut        *string    `json:"heure_debut,omitempty"`
	HeureFin          *string    `json:"heure_fin,omitempty"`
	Lieu              *string    `json:"lieu,omitempty"`
	ClientID          *int64     `json:"client_id,omitempty"`
	EcoleID           *int64     `json:"ecole_id,omitempty"`
	FormateurID       *int64     `json:"formateur_id,omitempty"`
	TarifClient       *float64   `json:"tarif_client,omitempty"`
	TarifSousTraitant *float64   `json:"tarif_sous_traitant,omitempty"`
	FraisRembourser   *float64   `json:"frais_rembourser,omitempty"`
	Statut            *string    `json:"statut,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

type SessionCreate struct {
	Titre             string   `json:"titre"`
	DateDebut         string   `json:"date_debut"`
	DateFin           string   `json:"date_fin"`
	HeureDebut        *string  `json:"heure_debut,omitempty"`
	HeureFin          *string  `json:"heure_fin,omitempty"`
	Lieu              *string  `json:"lieu,omitempty"`
	ClientID          *int64   `json:"client_id,omitempty"`
	EcoleID           *int64   `json:"ecole_id,omitempty"`
	FormateurID       *int64   `json:"formateur_id,omitempty"`
	TarifClient       *float64 `json:"tarif_client,omitempty"`
	TarifSousTraitant *float64 `json:"tarif_sous_traitant,omitempty"`
	FraisRembourser   *float64 `json:"frais_rembourser,omitempty"`
	Statut            *string  `json:"statut,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

func (c SessionCreate) Fields() map[string]any {
	m := map[string]any{
		"titre":      c.Titre,
		"date_debut": c.DateDebut,
		"date_fin":   c.DateFin,
	}
	putPtr(m, "heure_debut", c.HeureDebut)
	putPtr(m, "heure_fin", c.HeureFin)
	putPtr(m, "lieu", c.Lieu)
	putPtr(m, "client_id", c.ClientID)
	putPtr(m, "ecole_id", c.EcoleID)
	putPtr(m, "formateur_id", c.FormateurID)
	putPtr(m, "tarif_client", c.TarifClient)
	putPtr(m, "tarif_sous_traitant", c.TarifSousTraitant)
	putPtr(m, "frais_rembourser", c.FraisRembourser)
	putPtr(m, "statut", c.Statut)
	putPtr(m, "notes", c.Notes)
	return m
}

type SessionUpdate struct {
	Titre             Field[string]  `json:"titre"`
	DateDebut         Field[string]  `json:"date_debut"`
	DateFin           Field[string]  `json:"date_fin"`
	HeureDebut        Field[string]  `json:"heure_debut"`
	HeureFin          Field[string]  `json:"heure_fin"`
	Lieu              Field[string]  `json:"lieu"`
	ClientID          Field[int64]   `json:"client_id"`
	EcoleID           Field[int64]   `json:"ecole_id"`
	FormateurID       Field[int64]   `json:"formateur_id"`
	TarifClient       Field[float64] `json:"tarif_client"`
	TarifSousTraitant Field[float64] `json:"tarif_sous_traitant"`
	FraisRembourser   Field[float64] `json:"frais_rembourser"`
	Statut            Field[string]  `json:"statut"`
	Notes             Field[string]  `json:"notes"`
}

func (u SessionUpdate) Fields() map[string]any {
	m := map[string]any{}
	u.Titre.put(m, "titre")
	u.DateDebut.put(m, "date_debut")
	u.DateFin.put(m, "date_fin")
	u.HeureDebut.put(m, "heure_debut")
	u.HeureFin.put(m, "heure_fin")
	u.Lieu.put(m, "lieu")
	u.ClientID.put(m, "client_id")
	u.EcoleID.put(m, "ecole_id")
	u.FormateurID.put(m, "formateur_id")
	u.TarifClient.put(m, "tarif_client")
	u.TarifSousTraitant.put(m, "tarif_sous_traitant")
	u.FraisRembourser.put(m, "frais_rembourser")
	u.Statut.put(m, "statut")
	u.Notes.put(m, "notes")
	return m
}
