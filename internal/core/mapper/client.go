package mapper

import (
	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/domain"
)

func ClientToDomain(w dto.Client, extras domain.ClientExtras) domain.Client {
	return domain.Client{
		ID:               w.ID,
		Nom:              w.Nom,
		Email:            str(w.Email),
		Telephone:        str(w.Telephone),
		Adresse:          str(w.Adresse),
		CodePostal:       str(w.CodePostal),
		Ville:            str(w.Ville),
		ContactNom:       str(w.ContactNom),
		ContactEmail:     str(w.ContactEmail),
		ContactTelephone: str(w.ContactTelephone),
		Notes:            str(w.Notes),
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
		NumeroTVA:        extras.NumeroTVA,
		RaisonSociale:    extras.RaisonSociale,
	}
}

// ClientCreate builds the creation payload; empty strings are omitted.
func ClientCreate(c domain.Client) dto.ClientCreate {
	return dto.ClientCreate{
		Nom:              c.Nom,
		Email:            optStr(c.Email),
		Telephone:        optStr(c.Telephone),
		Adresse:          optStr(c.Adresse),
		CodePostal:       optStr(c.CodePostal),
		Ville:            optStr(c.Ville),
		ContactNom:       optStr(c.ContactNom),
		ContactEmail:     optStr(c.ContactEmail),
		ContactTelephone: optStr(c.ContactTelephone),
		Notes:            optStr(c.Notes),
	}
}

// ClientUpdate carries only the fields that differ between before and after.
func ClientUpdate(before, after domain.Client) dto.ClientUpdate {
	u := dto.ClientUpdate{
		Email:            diffString(before.Email, after.Email),
		Telephone:        diffString(before.Telephone, after.Telephone),
		Adresse:          diffString(before.Adresse, after.Adresse),
		CodePostal:       diffString(before.CodePostal, after.CodePostal),
		Ville:            diffString(before.Ville, after.Ville),
		ContactNom:       diffString(before.ContactNom, after.ContactNom),
		ContactEmail:     diffString(before.ContactEmail, after.ContactEmail),
		ContactTelephone: diffString(before.ContactTelephone, after.ContactTelephone),
		Notes:            diffString(before.Notes, after.Notes),
	}
	// nom is required and cannot be cleared
	if after.Nom != before.Nom && after.Nom != "" {
		u.Nom = dto.Set(after.Nom)
	}
	return u
}
