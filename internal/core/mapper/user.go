package mapper

import (
	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/domain"
)

func UserToDomain(w dto.User) domain.User {
	return domain.User{
		ID:        w.ID,
		Email:     w.Email,
		Nom:       str(w.Nom),
		Prenom:    str(w.Prenom),
		Role:      str(w.Role),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// UserUpdate never touches the password.
func UserUpdate(before, after domain.User) dto.UserUpdate {
	u := dto.UserUpdate{
		Nom:    diffString(before.Nom, after.Nom),
		Prenom: diffString(before.Prenom, after.Prenom),
		Role:   diffString(before.Role, after.Role),
	}
	if after.Email != before.Email && after.Email != "" {
		u.Email = dto.Set(after.Email)
	}
	return u
}
