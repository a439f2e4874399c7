package mapper

import (
	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/domain"
)

func EcoleToDomain(w dto.Ecole) domain.Ecole {
	return domain.Ecole{
		ID:         w.ID,
		Nom:        w.Nom,
		Adresse:    str(w.Adresse),
		CodePostal: str(w.CodePostal),
		Ville:      str(w.Ville),
		Email:      str(w.Email),
		Telephone:  str(w.Telephone),
		ContactNom: str(w.ContactNom),
		Notes:      str(w.Notes),
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func EcoleCreate(e domain.Ecole) dto.EcoleCreate {
	return dto.EcoleCreate{
		Nom:        e.Nom,
		Adresse:    optStr(e.Adresse),
		CodePostal: optStr(e.CodePostal),
		Ville:      optStr(e.Ville),
		Email:      optStr(e.Email),
		Telephone:  optStr(e.Telephone),
		ContactNom: optStr(e.ContactNom),
		Notes:      optStr(e.Notes),
	}
}

func EcoleUpdate(before, after domain.Ecole) dto.EcoleUpdate {
	u := dto.EcoleUpdate{
		Adresse:    diffString(before.Adresse, after.Adresse),
		CodePostal: diffString(before.CodePostal, after.CodePostal),
		Ville:      diffString(before.Ville, after.Ville),
		Email:      diffString(before.Email, after.Email),
		Telephone:  diffString(before.Telephone, after.Telephone),
		ContactNom: diffString(before.ContactNom, after.ContactNom),
		Notes:      diffString(before.Notes, after.Notes),
	}
	if after.Nom != before.Nom && after.Nom != "" {
		u.Nom = dto.Set(after.Nom)
	}
	return u
}
