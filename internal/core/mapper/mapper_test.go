package mapper

import (
	"reflect"
	"testing"
	"time"

	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func TestClientToDomain(t *testing.T) {
	created := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	w := dto.Client{
		ID:         3,
		Nom:        "Acme Corporation",
		Ville:      ptr("Paris"),
		CodePostal: ptr("75001"),
		CreatedAt:  &created,
	}

	got := ClientToDomain(w, domain.ClientExtras{NumeroTVA: "FR1", RaisonSociale: "Acme SAS"})

	if got.ID != 3 || got.Nom != "Acme Corporation" || got.Ville != "Paris" || got.CodePostal != "75001" {
		t.Errorf("unexpected mapping %+v", got)
	}
	if got.Email != "" || got.Adresse != "" || got.Notes != "" {
		t.Errorf("absent optionals must map to empty strings, got %+v", got)
	}
	if got.CreatedAt == nil || !got.CreatedAt.Equal(created) {
		t.Errorf("expected created_at carried over")
	}
	if got.NumeroTVA != "FR1" || got.RaisonSociale != "Acme SAS" {
		t.Errorf("expected extras merged, got %+v", got)
	}
	if got.Initials() != "AC" || got.DisplayName() != "Acme SAS" {
		t.Errorf("unexpected computed values %q %q", got.Initials(), got.DisplayName())
	}
}

func TestMappingIsTotal(t *testing.T) {
	// Zero-valued wire entities must map without panicking
	_ = ClientToDomain(dto.Client{}, domain.ClientExtras{})
	_ = EcoleToDomain(dto.Ecole{})
	_ = FormateurToDomain(dto.Formateur{}, domain.FormateurExtras{})
	_ = UserToDomain(dto.User{})

	s := SessionToDomain(dto.Session{})
	if !s.DateDebut.IsZero() || !s.DateFin.IsZero() {
		t.Errorf("expected zero dates for empty session, got %v %v", s.DateDebut, s.DateFin)
	}
	if s.ClientID != nil || s.EcoleID != nil || s.FormateurID != nil {
		t.Error("expected nil relations")
	}
}

func TestSessionToDomainDates(t *testing.T) {
	tests := []struct {
		name      string
		debut     string
		fin       string
		wantDebut time.Time
		wantFin   time.Time
	}{
		{
			name:      "valid",
			debut:     "2025-03-15",
			fin:       "2025-03-17",
			wantDebut: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			wantFin:   time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "unparsable end",
			debut:     "2025-03-15",
			fin:       "17/03/2025",
			wantDebut: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "both garbage",
			debut: "soon",
			fin:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SessionToDomain(dto.Session{Titre: "Go", DateDebut: tt.debut, DateFin: tt.fin})
			if !s.DateDebut.Equal(tt.wantDebut) {
				t.Errorf("date_debut: got %v, want %v", s.DateDebut, tt.wantDebut)
			}
			if !s.DateFin.Equal(tt.wantFin) {
				t.Errorf("date_fin: got %v, want %v", s.DateFin, tt.wantFin)
			}
		})
	}
}

func TestSessionMarginAfterMapping(t *testing.T) {
	s := SessionToDomain(dto.Session{
		TarifClient:       ptr(1000.0),
		TarifSousTraitant: ptr(800.0),
		FraisRembourser:   ptr(50.0),
		Statut:            ptr("confirmee"),
		ClientID:          ptr(int64(4)),
	})
	if s.Margin() != 150 {
		t.Errorf("expected margin 150, got %v", s.Margin())
	}
	if s.Statut != "confirmee" || s.ClientID == nil || *s.ClientID != 4 {
		t.Errorf("unexpected mapping %+v", s)
	}
}

func TestFormateurToDomainExtras(t *testing.T) {
	f := FormateurToDomain(
		dto.Formateur{ID: 1, Nom: "Curie", Prenom: ptr("Marie"), TarifJournalier: ptr(450.5)},
		domain.FormateurExtras{IsExternal: true, SocieteNom: "Curie Conseil"},
	)
	if f.FullName() != "Marie Curie" || f.Category() != domain.CategoryExterne {
		t.Errorf("unexpected formateur %+v", f)
	}
	if f.TarifJournalier == nil || *f.TarifJournalier != 450.5 {
		t.Errorf("expected tarif carried over")
	}
}

func TestUserToDomain(t *testing.T) {
	u := UserToDomain(dto.User{ID: 2, Email: "admin@example.com", Role: ptr("admin")})
	if u.DisplayName() != "admin@example.com" || u.Role != "admin" || u.Initials() != "US" {
		t.Errorf("unexpected user %+v", u)
	}
}

func TestClientCreateOmitsEmpty(t *testing.T) {
	got := ClientCreate(domain.Client{Nom: "Acme", Ville: "Lyon"}).Fields()
	want := map[string]any{"nom": "Acme", "ville": "Lyon"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClientUpdateDiff(t *testing.T) {
	before := domain.Client{ID: 1, Nom: "Acme", Ville: "Paris", Email: "a@acme.fr", Notes: "vip"}

	tests := []struct {
		name  string
		after func(c domain.Client) domain.Client
		want  map[string]any
	}{
		{
			name:  "unchanged",
			after: func(c domain.Client) domain.Client { return c },
			want:  map[string]any{},
		},
		{
			name:  "changed city",
			after: func(c domain.Client) domain.Client { c.Ville = "Lyon"; return c },
			want:  map[string]any{"ville": "Lyon"},
		},
		{
			name:  "cleared notes",
			after: func(c domain.Client) domain.Client { c.Notes = ""; return c },
			want:  map[string]any{"notes": nil},
		},
		{
			name:  "renamed",
			after: func(c domain.Client) domain.Client { c.Nom = "Acme Corp"; c.Telephone = "0102"; return c },
			want:  map[string]any{"nom": "Acme Corp", "telephone": "0102"},
		},
		{
			name:  "empty name is ignored",
			after: func(c domain.Client) domain.Client { c.Nom = ""; return c },
			want:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClientUpdate(before, tt.after(before)).Fields()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionUpdateDiff(t *testing.T) {
	before := SessionToDomain(dto.Session{
		Titre:       "Go",
		DateDebut:   "2025-03-15",
		DateFin:     "2025-03-17",
		TarifClient: ptr(1000.0),
		FormateurID: ptr(int64(2)),
	})

	after := before
	after.DateFin = time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)
	after.TarifClient = ptr(1000.0)
	after.FormateurID = nil
	after.EcoleID = ptr(int64(9))

	got := SessionUpdate(before, after).Fields()
	want := map[string]any{
		"date_fin":     "2025-03-18",
		"formateur_id": nil,
		"ecole_id":     int64(9),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSessionCreateFormatsDates(t *testing.T) {
	s := domain.Session{
		Titre:     "Go",
		DateDebut: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		DateFin:   time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
	}
	c := SessionCreate(s)
	if c.DateDebut != "2025-03-15" || c.DateFin != "2025-03-17" {
		t.Errorf("unexpected dates %q %q", c.DateDebut, c.DateFin)
	}
	if c.Lieu != nil || c.Statut != nil {
		t.Error("expected empty optionals omitted")
	}
}

func TestFormateurUpdateTarif(t *testing.T) {
	before := domain.Formateur{Nom: "Curie", TarifJournalier: ptr(400.0)}

	after := before
	after.TarifJournalier = nil
	if got := FormateurUpdate(before, after).Fields(); !reflect.DeepEqual(got, map[string]any{"tarif_journalier": nil}) {
		t.Errorf("expected cleared tarif, got %v", got)
	}

	after.TarifJournalier = ptr(450.0)
	if got := FormateurUpdate(before, after).Fields(); !reflect.DeepEqual(got, map[string]any{"tarif_journalier": 450.0}) {
		t.Errorf("expected new tarif, got %v", got)
	}
}

func TestUserUpdateDiff(t *testing.T) {
	before := domain.User{Email: "a@example.com", Role: "user"}
	after := before
	after.Role = "admin"
	after.Prenom = "Ada"

	got := UserUpdate(before, after).Fields()
	want := map[string]any{"role": "admin", "prenom": "Ada"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEcoleRoundTrip(t *testing.T) {
	w := dto.Ecole{ID: 5, Nom: "École Centrale", Ville: ptr("Lille")}
	e := EcoleToDomain(w)
	if e.Initials() != "ÉC" || e.DisplayCity() != "Lille" {
		t.Errorf("unexpected ecole %+v", e)
	}
	c := EcoleCreate(e).Fields()
	if !reflect.DeepEqual(c, map[string]any{"nom": "École Centrale", "ville": "Lille"}) {
		t.Errorf("unexpected create payload %v", c)
	}
	if got := EcoleUpdate(e, e).Fields(); len(got) != 0 {
		t.Errorf("expected no changes, got %v", got)
	}
}
