package domain

import (
	"fmt"
	"time"
)

type Session struct {
	ID                int64
	Titre             string
	DateDebut         time.Time
	DateFin           time.Time
	HeureDebut        string
	HeureFin          string
	Lieu              string
	ClientID          *int64
	EcoleID           *int64
	FormateurID       *int64
	TarifClient       *float64
	TarifSousTraitant *float64
	FraisRembourser   *float64
	Statut            string
	Notes             string
	CreatedAt         *time.Time
	UpdatedAt         *time.Time
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Margin is client rate minus subcontractor rate minus reimbursable
// expenses. Missing amounts count as zero; the result may be negative.
func (s Session) Margin() float64 {
	return value(s.TarifClient) - value(s.TarifSousTraitant) - value(s.FraisRembourser)
}

func (s Session) MarginLabel() string {
	return formatEuro(s.Margin())
}

// Month is the calendar month the session starts in.
func (s Session) Month() Month {
	if s.DateDebut.IsZero() {
		return Month{}
	}
	return MonthOf(s.DateDebut)
}

// DateLabel renders "15 mars 2025" or "15 – 17 mars 2025" for a range.
func (s Session) DateLabel() string {
	start, end := s.DateDebut, s.DateFin
	switch {
	case start.IsZero():
		return ""
	case end.IsZero() || end.Equal(start):
		return FormatDateFR(start)
	case start.Year() == end.Year() && start.Month() == end.Month():
		return fmt.Sprintf("%d – %s", start.Day(), FormatDateFR(end))
	default:
		return FormatDateFR(start) + " – " + FormatDateFR(end)
	}
}

// TimeLabel renders "09:00 – 17:00", or the single known bound.
func (s Session) TimeLabel() string {
	switch {
	case s.HeureDebut != "" && s.HeureFin != "":
		return s.HeureDebut + " – " + s.HeureFin
	case s.HeureDebut != "":
		return s.HeureDebut
	case s.HeureFin != "":
		return s.HeureFin
	}
	return ""
}

// Days counts calendar days from start to end inclusive, 0 when unknown.
func (s Session) Days() int {
	if s.DateDebut.IsZero() || s.DateFin.IsZero() || s.DateFin.Before(s.DateDebut) {
		return 0
	}
	return int(s.DateFin.Sub(s.DateDebut).Hours()/24) + 1
}
