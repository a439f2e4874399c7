package dto

import "time"

// User is an application account.
type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Nom       *string    `json:"nom,omitempty"`
	Prenom    *string    `json:"prenom,omitempty"`
	Role      *string    `json:"role,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type UserCreate struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Nom      *string `json:"nom,omitempty"`
	Prenom   *string `json:"prenom,omitempty"`
	Role     *string `json:"role,omitempty"`
}

func (c UserCreate) Fields() map[string]any {
	m := map[string]any{
		"email":    c.Email,
		"password": c.Password,
	}
	putPtr(m, "nom", c.Nom)
	putPtr(m, "prenom", c.Prenom)
	putPtr(m, "role", c.Role)
	return m
}

type UserUpdate struct {
	Email    Field[string] `json:"email"`
	Password Field[string] `json:"password"`
	Nom      Field[string] `json:"nom"`
	Prenom   Field[string] `json:"prenom"`
	Role     Field[string] `json:"role"`
}

func (u UserUpdate) Fields() map[string]any {
	m := map[string]any{}
	u.Email.put(m, "email")
	u.Password.put(m, "password")
	u.Nom.put(m, "nom")
	u.Prenom.put(m, "prenom")
	u.Role.put(m, "role")
	return m
}
