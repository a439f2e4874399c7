// Package mapper converts wire entities into display-ready domain entities
// and builds request payloads from edited domain values.
package mapper

import (
	"time"

	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/domain"
)

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseDate(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}

// diffString is unset when unchanged, null when cleared.
func diffString(before, after string) dto.Field[string] {
	switch {
	case before == after:
		return dto.Field[string]{}
	case after == "":
		return dto.Null[string]()
	}
	return dto.Set(after)
}

func diffPtr[T comparable](before, after *T) dto.Field[T] {
	switch {
	case before == nil && after == nil:
		return dto.Field[T]{}
	case before != nil && after != nil && *before == *after:
		return dto.Field[T]{}
	}
	return dto.FromPtr(after)
}
