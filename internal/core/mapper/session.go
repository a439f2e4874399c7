package mapper

import (
	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/domain"
)

// SessionToDomain parses the wire dates; an unparsable date becomes the
// zero time.
func SessionToDomain(w dto.Session) domain.Session {
	return domain.Session{
		ID:                w.ID,
		Titre:             w.Titre,
		DateDebut:         parseDate(w.DateDebut),
		DateFin:           parseDate(w.DateFin),
		HeureDebut:        str(w.HeureDebut),
		HeureFin:          str(w.HeureFin),
		Lieu:              str(w.Lieu),
		ClientID:          w.ClientID,
		EcoleID:           w.EcoleID,
		FormateurID:       w.FormateurID,
		TarifClient:       w.TarifClient,
		TarifSousTraitant: w.TarifSousTraitant,
		FraisRembourser:   w.FraisRembourser,
		Statut:            str(w.Statut),
		Notes:             str(w.Notes),
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
}

func SessionCreate(s domain.Session) dto.SessionCreate {
	return dto.SessionCreate{
		Titre:             s.Titre,
		DateDebut:         formatDate(s.DateDebut),
		DateFin:           formatDate(s.DateFin),
		HeureDebut:        optStr(s.HeureDebut),
		HeureFin:          optStr(s.HeureFin),
		Lieu:              optStr(s.Lieu),
		ClientID:          s.ClientID,
		EcoleID:           s.EcoleID,
		FormateurID:       s.FormateurID,
		TarifClient:       s.TarifClient,
		TarifSousTraitant: s.TarifSousTraitant,
		FraisRembourser:   s.FraisRembourser,
		Statut:            optStr(s.Statut),
		Notes:             optStr(s.Notes),
	}
}

func SessionUpdate(before, after domain.Session) dto.SessionUpdate {
	u := dto.SessionUpdate{
		HeureDebut:        diffString(before.HeureDebut, after.HeureDebut),
		HeureFin:          diffString(before.HeureFin, after.HeureFin),
		Lieu:              diffString(before.Lieu, after.Lieu),
		ClientID:          diffPtr(before.ClientID, after.ClientID),
		EcoleID:           diffPtr(before.EcoleID, after.EcoleID),
		FormateurID:       diffPtr(before.FormateurID, after.FormateurID),
		TarifClient:       diffPtr(before.TarifClient, after.TarifClient),
		TarifSousTraitant: diffPtr(before.TarifSousTraitant, after.TarifSousTraitant),
		FraisRembourser:   diffPtr(before.FraisRembourser, after.FraisRembourser),
		Statut:            diffString(before.Statut, after.Statut),
		Notes:             diffString(before.Notes, after.Notes),
	}
	// Required fields are only ever replaced
	if after.Titre != before.Titre && after.Titre != "" {
		u.Titre = dto.Set(after.Titre)
	}
	if !after.DateDebut.IsZero() && !after.DateDebut.Equal(before.DateDebut) {
		u.DateDebut = dto.Set(formatDate(after.DateDebut))
	}
	if !after.DateFin.IsZero() && !after.DateFin.Equal(before.DateFin) {
		u.DateFin = dto.Set(formatDate(after.DateFin))
	}
	return u
}
