package service

import (
	"fmt"
	"math"
	"net/mail"
	"strings"
	"time"

	"github.com/martijn/trainhub/internal/core/domain"
	"github.com/martijn/trainhub/internal/core/repository"
)

// Resource names served by the sandbox.
const (
	ResourceClients    = "clients"
	ResourceEcoles     = "ecoles"
	ResourceFormateurs = "formateurs"
	ResourceSessions   = "sessions"
	ResourceUsers      = "users"
)

type FieldKind int

const (
	KindString FieldKind = iota
	KindEmail
	KindInt
	KindNumber
	KindDate
	KindHour
	// KindPassword is write-only: stored hashed under password_hash.
	KindPassword
)

type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Required bool
	// Ref names the resource a KindInt field points to.
	Ref string
}

type Schema struct {
	Name   string
	Fields []FieldSpec
}

// FieldNames lists the fields usable in list queries.
func (s *Schema) FieldNames() []string {
	names := []string{"id", "created_at", "updated_at"}
	for _, f := range s.Fields {
		if f.Kind != KindPassword {
			names = append(names, f.Name)
		}
	}
	return names
}

func (s *Schema) field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

func optional(name string, kind FieldKind) FieldSpec {
	return FieldSpec{Name: name, Kind: kind}
}

func required(name string, kind FieldKind) FieldSpec {
	return FieldSpec{Name: name, Kind: kind, Required: true}
}

func ref(name, resource string) FieldSpec {
	return FieldSpec{Name: name, Kind: KindInt, Ref: resource}
}

// Schemas returns the field definitions of every sandbox resource.
func Schemas() map[string]*Schema {
	return map[string]*Schema{
		ResourceClients: {Name: ResourceClients, Fields: []FieldSpec{
			required("nom", KindString),
			optional("email", KindEmail),
			optional("telephone", KindString),
			optional("adresse", KindString),
			optional("code_postal", KindString),
			optional("ville", KindString),
			optional("contact_nom", KindString),
			optional("contact_email", KindEmail),
			optional("contact_telephone", KindString),
			optional("notes", KindString),
		}},
		ResourceEcoles: {Name: ResourceEcoles, Fields: []FieldSpec{
			required("nom", KindString),
			optional("adresse", KindString),
			optional("code_postal", KindString),
			optional("ville", KindString),
			optional("email", KindEmail),
			optional("telephone", KindString),
			optional("contact_nom", KindString),
			optional("notes", KindString),
		}},
		ResourceFormateurs: {Name: ResourceFormateurs, Fields: []FieldSpec{
			required("nom", KindString),
			optional("prenom", KindString),
			optional("email", KindEmail),
			optional("telephone", KindString),
			optional("specialite", KindString),
			optional("tarif_journalier", KindNumber),
			optional("adresse", KindString),
			optional("code_postal", KindString),
			optional("ville", KindString),
			optional("notes", KindString),
		}},
		ResourceSessions: {Name: ResourceSessions, Fields: []FieldSpec{
			required("titre", KindString),
			required("date_debut", KindDate),
			required("date_fin", KindDate),
			optional("heure_debut", KindHour),
			optional("heure_fin", KindHour),
			optional("lieu", KindString),
			ref("client_id", ResourceClients),
			ref("ecole_id", ResourceEcoles),
			ref("formateur_id", ResourceFormateurs),
			optional("tarif_client", KindNumber),
			optional("tarif_sous_traitant", KindNumber),
			optional("frais_rembourser", KindNumber),
			optional("statut", KindString),
			optional("notes", KindString),
		}},
		ResourceUsers: {Name: ResourceUsers, Fields: []FieldSpec{
			required("email", KindEmail),
			required("password", KindPassword),
			optional("nom", KindString),
			optional("prenom", KindString),
			optional("role", KindString),
		}},
	}
}

// normalize converts a decoded JSON value to the stored representation.
func normalize(f FieldSpec, v any) (any, error) {
	switch f.Kind {
	case KindInt:
		n, ok := v.(float64)
		if !ok || n != math.Trunc(n) {
			return nil, fmt.Errorf("must be an integer")
		}
		return int64(n), nil
	case KindNumber:
		n, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("must be a number")
		}
		return n, nil
	}

	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("must be a string")
	}
	s = strings.TrimSpace(s)

	switch f.Kind {
	case KindEmail:
		if s != "" {
			if _, err := mail.ParseAddress(s); err != nil {
				return nil, fmt.Errorf("must be a valid email address")
			}
		}
	case KindDate:
		if _, err := time.Parse(domain.DateLayout, s); err != nil {
			return nil, fmt.Errorf("must be a date (YYYY-MM-DD)")
		}
	case KindHour:
		if s != "" {
			if _, err := time.Parse(domain.HourLayout, s); err != nil {
				return nil, fmt.Errorf("must be a time (HH:MM)")
			}
		}
	case KindPassword:
		if len(s) < 6 {
			return nil, fmt.Errorf("must be at least 6 characters")
		}
	}
	return s, nil
}

// validate checks body against the schema and returns the fields to store.
// On create every required field must be present; on update absent fields
// are skipped and null clears optional fields.
func (s *Schema) validate(body repository.Record, create bool) (repository.Record, map[string]string) {
	out := repository.Record{}
	problems := map[string]string{}

	for _, f := range s.Fields {
		v, present := body[f.Name]
		switch {
		case !present && create && f.Required:
			problems[f.Name] = "is required"
			continue
		case !present:
			continue
		case v == nil && f.Required:
			problems[f.Name] = "cannot be null"
			continue
		case v == nil:
			if !create {
				out[f.Name] = nil
			}
			continue
		}

		clean, err := normalize(f, v)
		if err != nil {
			problems[f.Name] = err.Error()
			continue
		}
		if str, ok := clean.(string); ok && str == "" {
			if f.Required {
				problems[f.Name] = "cannot be empty"
				continue
			}
			// An empty optional string clears the field
			if !create {
				out[f.Name] = nil
			}
			continue
		}
		out[f.Name] = clean
	}

	if len(problems) > 0 {
		return nil, problems
	}
	return out, nil
}
