package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	DateLayout = "2006-01-02"
	HourLayout = "15:04"

	// NoCity is displayed when an entity has no city.
	NoCity = "Ville non renseignée"
)

var moisFR = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// Initials takes the first letter of the first two words of name. A single
// word yields its first two letters. An empty name yields fallback.
func Initials(name, fallback string) string {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return fallback
	case 1:
		runes := []rune(words[0])
		if len(runes) > 2 {
			runes = runes[:2]
		}
		return strings.ToUpper(string(runes))
	default:
		first, _ := utf8.DecodeRuneInString(words[0])
		second, _ := utf8.DecodeRuneInString(words[1])
		return string(unicode.ToUpper(first)) + string(unicode.ToUpper(second))
	}
}

// FullAddress formats "{street}, {postal} {city}" when all three parts are
// present, nil otherwise.
func FullAddress(street, postal, city string) *string {
	street, postal, city = strings.TrimSpace(street), strings.TrimSpace(postal), strings.TrimSpace(city)
	if street == "" || postal == "" || city == "" {
		return nil
	}
	s := fmt.Sprintf("%s, %s %s", street, postal, city)
	return &s
}

// DisplayCity returns city or NoCity.
func DisplayCity(city string) string {
	if strings.TrimSpace(city) == "" {
		return NoCity
	}
	return city
}

// FormatDateFR renders t as "15 mars 2025". The zero time renders as "".
func FormatDateFR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), moisFR[t.Month()-1], t.Year())
}

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", s, err)
	}
	return MonthOf(t), nil
}

func (m Month) IsZero() bool { return m.Year == 0 && m.Month == 0 }

func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label renders "mars 2025".
func (m Month) Label() string {
	if m.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d", moisFR[m.Month-1], m.Year)
}

func formatEuro(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f €", v), ".", ",", 1)
}
