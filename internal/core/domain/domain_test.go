package domain

import (
	"testing"
	"time"
)

func ptr[T any](v T) *T {
	return &v
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name     string
		fallback string
		want     string
	}{
		{"Acme Corporation", "CL", "AC"},
		{"Polytechnique", "EC", "PO"},
		{"", "EC", "EC"},
		{"   ", "CL", "CL"},
		{"école normale supérieure", "EC", "ÉN"},
		{"a", "FO", "A"},
		{"  jean   dupont ", "FO", "JD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Initials(tt.name, tt.fallback); got != tt.want {
				t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestResourceInitialsFallbacks(t *testing.T) {
	if got := (Client{}).Initials(); got != "CL" {
		t.Errorf("client fallback = %q", got)
	}
	if got := (Ecole{}).Initials(); got != "EC" {
		t.Errorf("ecole fallback = %q", got)
	}
	if got := (Formateur{}).Initials(); got != "FO" {
		t.Errorf("formateur fallback = %q", got)
	}
	if got := (User{}).Initials(); got != "US" {
		t.Errorf("user fallback = %q", got)
	}
	if got := (Formateur{Prenom: "Marie", Nom: "Curie"}).Initials(); got != "MC" {
		t.Errorf("formateur initials = %q", got)
	}
}

func TestFullAddress(t *testing.T) {
	tests := []struct {
		name   string
		street string
		postal string
		city   string
		want   *string
	}{
		{"complete", "123 rue de la Paix", "75001", "Paris", ptr("123 rue de la Paix, 75001 Paris")},
		{"missing street", "", "75001", "Paris", nil},
		{"missing postal", "123 rue de la Paix", "", "Paris", nil},
		{"missing city", "123 rue de la Paix", "75001", "", nil},
		{"blank city", "123 rue de la Paix", "75001", "  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FullAddress(tt.street, tt.postal, tt.city)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("expected nil, got %q", *got)
			case tt.want != nil && got == nil:
				t.Errorf("expected %q, got nil", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("expected %q, got %q", *tt.want, *got)
			}
		})
	}

	c := Client{Adresse: "123 rue de la Paix", CodePostal: "75001", Ville: "Paris"}
	if got := c.FullAddress(); got == nil || *got != "123 rue de la Paix, 75001 Paris" {
		t.Errorf("client full address = %v", got)
	}
}

func TestDisplayCity(t *testing.T) {
	if got := (Ecole{Ville: "Lyon"}).DisplayCity(); got != "Lyon" {
		t.Errorf("got %q", got)
	}
	if got := (Ecole{}).DisplayCity(); got != NoCity {
		t.Errorf("got %q", got)
	}
}

func TestSessionMargin(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    float64
	}{
		{"positive", Session{TarifClient: ptr(500.0), TarifSousTraitant: ptr(300.0), FraisRembourser: ptr(50.0)}, 150},
		{"negative is not clamped", Session{TarifClient: ptr(300.0), TarifSousTraitant: ptr(400.0), FraisRembourser: ptr(50.0)}, -150},
		{"missing amounts count as zero", Session{TarifClient: ptr(800.0)}, 800},
		{"nothing known", Session{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.Margin(); got != tt.want {
				t.Errorf("Margin() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := (Session{TarifClient: ptr(500.0), TarifSousTraitant: ptr(300.0), FraisRembourser: ptr(50.0)}).MarginLabel(); got != "150,00 €" {
		t.Errorf("MarginLabel() = %q", got)
	}
}

func TestSessionLabels(t *testing.T) {
	tests := []struct {
		name      string
		session   Session
		wantDate  string
		wantTime  string
		wantDays  int
		wantMonth string
	}{
		{
			name:      "single day",
			session:   Session{DateDebut: date(2025, 3, 15), DateFin: date(2025, 3, 15), HeureDebut: "09:00", HeureFin: "17:00"},
			wantDate:  "15 mars 2025",
			wantTime:  "09:00 – 17:00",
			wantDays:  1,
			wantMonth: "2025-03",
		},
		{
			name:      "range within a month",
			session:   Session{DateDebut: date(2025, 3, 15), DateFin: date(2025, 3, 17)},
			wantDate:  "15 – 17 mars 2025",
			wantDays:  3,
			wantMonth: "2025-03",
		},
		{
			name:      "range across months",
			session:   Session{DateDebut: date(2025, 1, 30), DateFin: date(2025, 2, 2), HeureDebut: "09:30"},
			wantDate:  "30 janvier 2025 – 2 février 2025",
			wantTime:  "09:30",
			wantDays:  4,
			wantMonth: "2025-01",
		},
		{
			name:    "unknown dates",
			session: Session{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.DateLabel(); got != tt.wantDate {
				t.Errorf("DateLabel() = %q, want %q", got, tt.wantDate)
			}
			if got := tt.session.TimeLabel(); got != tt.wantTime {
				t.Errorf("TimeLabel() = %q, want %q", got, tt.wantTime)
			}
			if got := tt.session.Days(); got != tt.wantDays {
				t.Errorf("Days() = %d, want %d", got, tt.wantDays)
			}
			if got := tt.session.Month().String(); got != tt.wantMonth {
				t.Errorf("Month() = %q, want %q", got, tt.wantMonth)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-03")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}
	if m.Year != 2025 || m.Month != time.March {
		t.Errorf("got %+v", m)
	}
	if m.Label() != "mars 2025" {
		t.Errorf("Label() = %q", m.Label())
	}
	if _, err := ParseMonth("03/2025"); err == nil {
		t.Error("expected error for malformed month")
	}
}

func TestParseCategory(t *testing.T) {
	tests := map[string]struct {
		want Category
		ok   bool
	}{
		"":        {CategoryAll, true},
		"all":     {CategoryAll, true},
		"Interne": {CategoryInterne, true},
		"externe": {CategoryExterne, true},
		"other":   {CategoryAll, false},
	}
	for in, tt := range tests {
		got, ok := ParseCategory(in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCategory(%q) = %q, %v", in, got, ok)
		}
	}

	if (Formateur{IsExternal: true}).Category() != CategoryExterne {
		t.Error("external trainer must be externe")
	}
	if (Formateur{}).Category() != CategoryInterne {
		t.Error("trainer without extras must be interne")
	}
}

func TestDisplayNames(t *testing.T) {
	if got := (Client{Nom: "Acme", RaisonSociale: "Acme SAS"}).DisplayName(); got != "Acme SAS" {
		t.Errorf("client display name = %q", got)
	}
	if got := (Client{Nom: "Acme"}).DisplayName(); got != "Acme" {
		t.Errorf("client display name = %q", got)
	}
	if got := (User{Email: "a@b.fr"}).DisplayName(); got != "a@b.fr" {
		t.Errorf("user display name = %q", got)
	}
	if got := (Formateur{TarifJournalier: ptr(450.5)}).TarifLabel(); got != "450,50 € / jour" {
		t.Errorf("tarif label = %q", got)
	}
}
