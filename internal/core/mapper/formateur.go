package mapper

import (
	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/domain"
)

func FormateurToDomain(w dto.Formateur, extras domain.FormateurExtras) domain.Formateur {
	return domain.Formateur{
		ID:              w.ID,
		Nom:             w.Nom,
		Prenom:          str(w.Prenom),
		Email:           str(w.Email),
		Telephone:       str(w.Telephone),
		Specialite:      str(w.Specialite),
		TarifJournalier: w.TarifJournalier,
		Adresse:         str(w.Adresse),
		CodePostal:      str(w.CodePostal),
		Ville:           str(w.Ville),
		Notes:           str(w.Notes),
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
		IsExternal:      extras.IsExternal,
		SocieteNom:      extras.SocieteNom,
		NumeroTVA:       extras.NumeroTVA,
	}
}

func FormateurCreate(f domain.Formateur) dto.FormateurCreate {
	return dto.FormateurCreate{
		Nom:             f.Nom,
		Prenom:          optStr(f.Prenom),
		Email:           optStr(f.Email),
		Telephone:       optStr(f.Telephone),
		Specialite:      optStr(f.Specialite),
		TarifJournalier: f.TarifJournalier,
		Adresse:         optStr(f.Adresse),
		CodePostal:      optStr(f.CodePostal),
		Ville:           optStr(f.Ville),
		Notes:           optStr(f.Notes),
	}
}

func FormateurUpdate(before, after domain.Formateur) dto.FormateurUpdate {
	u := dto.FormateurUpdate{
		Prenom:          diffString(before.Prenom, after.Prenom),
		Email:           diffString(before.Email, after.Email),
		Telephone:       diffString(before.Telephone, after.Telephone),
		Specialite:      diffString(before.Specialite, after.Specialite),
		TarifJournalier: diffPtr(before.TarifJournalier, after.TarifJournalier),
		Adresse:         diffString(before.Adresse, after.Adresse),
		CodePostal:      diffString(before.CodePostal, after.CodePostal),
		Ville:           diffString(before.Ville, after.Ville),
		Notes:           diffString(before.Notes, after.Notes),
	}
	if after.Nom != before.Nom && after.Nom != "" {
		u.Nom = dto.Set(after.Nom)
	}
	return u
}
