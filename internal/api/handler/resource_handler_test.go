package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/martijn/trainhub/internal/api/dto"
)

func TestCreateAndGet(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/clients", map[string]any{
		"nom":         "Acme Corporation",
		"ville":       "Paris",
		"code_postal": "75001",
		"unknown":     "dropped",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	created := decode[dto.Client](t, w)
	if created.ID != 1 || created.Nom != "Acme Corporation" || created.CreatedAt == nil {
		t.Errorf("unexpected created client %+v", created)
	}

	w = env.do(t, http.MethodGet, "/clients/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	raw := decode[map[string]any](t, w)
	if _, ok := raw["unknown"]; ok {
		t.Error("unknown keys must not be stored")
	}
	if raw["ville"] != "Paris" {
		t.Errorf("unexpected ville %v", raw["ville"])
	}
}

func TestCreateValidation(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name     string
		resource string
		body     any
		wantCode int
		wantKey  string
	}{
		{"missing required", "clients", map[string]any{"ville": "Paris"}, http.StatusUnprocessableEntity, "nom"},
		{"empty required", "ecoles", map[string]any{"nom": "  "}, http.StatusUnprocessableEntity, "nom"},
		{"null required", "formateurs", map[string]any{"nom": nil}, http.StatusUnprocessableEntity, "nom"},
		{"wrong type", "formateurs", map[string]any{"nom": "Curie", "tarif_journalier": "cher"}, http.StatusUnprocessableEntity, "tarif_journalier"},
		{"bad email", "clients", map[string]any{"nom": "Acme", "email": "nope"}, http.StatusUnprocessableEntity, "email"},
		{"bad date", "sessions", map[string]any{"titre": "Go", "date_debut": "15/03/2025", "date_fin": "2025-03-17"}, http.StatusUnprocessableEntity, "date_debut"},
		{"reversed dates", "sessions", map[string]any{"titre": "Go", "date_debut": "2025-03-17", "date_fin": "2025-03-15"}, http.StatusUnprocessableEntity, "date_fin"},
		{"bad hour", "sessions", map[string]any{"titre": "Go", "date_debut": "2025-03-15", "date_fin": "2025-03-15", "heure_debut": "9h"}, http.StatusUnprocessableEntity, "heure_debut"},
		{"unknown reference", "sessions", map[string]any{"titre": "Go", "date_debut": "2025-03-15", "date_fin": "2025-03-15", "client_id": 99}, http.StatusUnprocessableEntity, "client_id"},
		{"fractional reference", "sessions", map[string]any{"titre": "Go", "date_debut": "2025-03-15", "date_fin": "2025-03-15", "ecole_id": 1.5}, http.StatusUnprocessableEntity, "ecole_id"},
		{"short password", "users", map[string]any{"email": "a@example.com", "password": "123"}, http.StatusUnprocessableEntity, "password"},
		{"malformed json", "clients", `{"nom":`, http.StatusBadRequest, ""},
		{"json array", "clients", `[{"nom":"Acme"}]`, http.StatusBadRequest, ""},
		{"json null", "clients", `null`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/"+tt.resource, tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
			if tt.wantKey == "" {
				return
			}
			resp := decode[dto.ErrorResponse](t, w)
			if _, ok := resp.Fields[tt.wantKey]; !ok {
				t.Errorf("expected a problem on %q, got %v", tt.wantKey, resp.Fields)
			}
		})
	}
}

func TestSparseUpdate(t *testing.T) {
	env := setupTestEnv(t)
	id := env.seed(t, "formateurs", map[string]any{
		"nom":              "Curie",
		"prenom":           "Marie",
		"specialite":       "Chimie",
		"tarif_journalier": 450.5,
	})
	path := fmt.Sprintf("/formateurs/%d", id)

	w := env.do(t, http.MethodPut, path, `{"ville":"Paris","specialite":null}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	f := decode[dto.Formateur](t, env.do(t, http.MethodGet, path, nil))
	if f.Ville == nil || *f.Ville != "Paris" {
		t.Errorf("expected ville set, got %v", f.Ville)
	}
	if f.Specialite != nil {
		t.Errorf("expected specialite cleared, got %q", *f.Specialite)
	}
	if f.Prenom == nil || *f.Prenom != "Marie" || f.TarifJournalier == nil || *f.TarifJournalier != 450.5 {
		t.Errorf("absent fields must be untouched, got %+v", f)
	}

	// Empty update is accepted and changes nothing
	if w := env.do(t, http.MethodPut, path, `{}`); w.Code != http.StatusOK {
		t.Errorf("expected 200 for empty update, got %d", w.Code)
	}

	if w := env.do(t, http.MethodPut, path, `{"nom":null}`); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("clearing a required field must fail, got %d", w.Code)
	}
	if w := env.do(t, http.MethodPut, "/formateurs/999", `{"ville":"Lyon"}`); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}
	if w := env.do(t, http.MethodPut, "/formateurs/abc", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad id, got %d", w.Code)
	}
}

func TestDelete(t *testing.T) {
	env := setupTestEnv(t)
	clientID := env.seed(t, "clients", map[string]any{"nom": "Acme"})
	sessionID := env.seed(t, "sessions", map[string]any{
		"titre": "Go", "date_debut": "2025-03-15", "date_fin": "2025-03-15", "client_id": clientID,
	})

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/clients/%d", clientID), nil)
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("expected empty 204, got %d %q", w.Code, w.Body.String())
	}
	if w := env.do(t, http.MethodGet, fmt.Sprintf("/clients/%d", clientID), nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
	if w := env.do(t, http.MethodDelete, fmt.Sprintf("/clients/%d", clientID), nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}

	s := decode[dto.Session](t, env.do(t, http.MethodGet, fmt.Sprintf("/sessions/%d", sessionID), nil))
	if s.ClientID != nil {
		t.Errorf("expected session detached from deleted client, got %d", *s.ClientID)
	}
}

func TestSessionsForParent(t *testing.T) {
	env := setupTestEnv(t)
	a := env.seed(t, "formateurs", map[string]any{"nom": "Curie"})
	b := env.seed(t, "formateurs", map[string]any{"nom": "Turing"})
	for i, f := range []int64{a, b, a} {
		env.seed(t, "sessions", map[string]any{
			"titre":        fmt.Sprintf("Session %d", i),
			"date_debut":   "2025-03-15",
			"date_fin":     "2025-03-16",
			"formateur_id": f,
		})
	}

	sessions := decode[[]dto.Session](t, env.do(t, http.MethodGet, fmt.Sprintf("/formateurs/%d/sessions", a), nil))
	if len(sessions) != 2 || sessions[0].Titre != "Session 0" || sessions[1].Titre != "Session 2" {
		t.Errorf("unexpected sessions %+v", sessions)
	}

	if w := env.do(t, http.MethodGet, "/formateurs/42/sessions", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown parent, got %d", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/users/1/sessions", nil); w.Code != http.StatusNotFound {
		t.Errorf("users have no sessions, got %d", w.Code)
	}
}

func TestListQueryAndOrder(t *testing.T) {
	env := setupTestEnv(t)
	for _, c := range []map[string]any{
		{"nom": "Globex", "ville": "Lyon"},
		{"nom": "Acme", "ville": "Paris"},
		{"nom": "Initech", "ville": "Paris"},
		{"nom": "Hooli"},
	} {
		env.seed(t, "clients", c)
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"insertion order", "", []string{"Globex", "Acme", "Initech", "Hooli"}},
		{"equality", "?query=ville|Paris", []string{"Acme", "Initech"}},
		{"ordered", "?order=nom|asc", []string{"Acme", "Globex", "Hooli", "Initech"}},
		{"descending", "?query=ville|Paris&order=nom|desc", []string{"Initech", "Acme"}},
		{"null check", "?query=ville|isnull", []string{"Hooli"}},
		{"in list", "?query=nom|in|Acme,Hooli", []string{"Acme", "Hooli"}},
		{"like", "?query=nom|like|EX", []string{"Globex"}},
		{"paginated", "?order=nom|asc&page=2&per_page=3", []string{"Initech"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, "/clients"+tt.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			clients := decode[[]dto.Client](t, w)
			got := make([]string, len(clients))
			for i, c := range clients {
				got[i] = c.Nom
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if w := env.do(t, http.MethodGet, "/clients?order=nom|asc&per_page=2", nil); w.Header().Get("X-Total-Count") != "4" {
		t.Errorf("expected total count 4, got %q", w.Header().Get("X-Total-Count"))
	}
	if w := env.do(t, http.MethodGet, "/clients?query=secret|x", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown field, got %d", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/clients?query=nom|between|a", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown operator, got %d", w.Code)
	}
}

func TestUsersHidePassword(t *testing.T) {
	env := setupTestEnv(t)
	id := env.seed(t, "users", map[string]any{"email": "ada@example.com", "password": "s3cret!", "role": "admin"})

	raw := decode[map[string]any](t, env.do(t, http.MethodGet, fmt.Sprintf("/users/%d", id), nil))
	if _, ok := raw["password"]; ok {
		t.Error("password must not be returned")
	}
	if _, ok := raw["password_hash"]; ok {
		t.Error("password hash must not be returned")
	}

	if w := env.do(t, http.MethodPost, "/users", map[string]any{"email": "ADA@example.com", "password": "another"}); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected duplicate email to be rejected, got %d", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/users?query=password_hash|isnotnull", nil); w.Code != http.StatusBadRequest {
		t.Errorf("hidden fields must not be queryable, got %d", w.Code)
	}
}
