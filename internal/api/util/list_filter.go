package util

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ListFilter contains common filtering/pagination options for list endpoints.
// PerPage 0 disables pagination.
type ListFilter struct {
	Filters []QueryFilter
	Order   []OrderClause
	Page    int
	PerPage int
}

// Match reports whether a record satisfies every filter.
func (lf ListFilter) Match(record map[string]any) bool {
	for _, f := range lf.Filters {
		if !f.Match(record[f.Field]) {
			return false
		}
	}
	return true
}

// Match evaluates the condition against a field value. Values compare
// numerically when both sides are numbers, as text otherwise.
func (f QueryFilter) Match(v any) bool {
	switch f.Operator {
	case OpIsNull:
		return v == nil
	case OpIsNotNull:
		return v != nil
	}
	if v == nil {
		return f.Operator == OpNe || f.Operator == OpNin
	}

	switch f.Operator {
	case OpIn, OpNin:
		values, _ := f.Value.([]string)
		found := slices.ContainsFunc(values, func(s string) bool { return compare(v, s) == 0 })
		return found == (f.Operator == OpIn)
	case OpLike:
		want, _ := f.Value.(string)
		return strings.Contains(strings.ToLower(text(v)), strings.ToLower(want))
	}

	want, _ := f.Value.(string)
	c := compare(v, want)
	switch f.Operator {
	case OpEq:
		return c == 0
	case OpNe:
		return c != 0
	case OpGt:
		return c > 0
	case OpGte:
		return c >= 0
	case OpLt:
		return c < 0
	case OpLte:
		return c <= 0
	}
	return false
}

// Sort orders records in place by the order clauses; nulls sort first.
func (lf ListFilter) Sort(records []map[string]any) {
	if len(lf.Order) == 0 {
		return
	}
	slices.SortStableFunc(records, func(a, b map[string]any) int {
		for _, o := range lf.Order {
			c := compareValues(a[o.Field], b[o.Field])
			if o.Direction == OrderDesc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}

// Paginate returns the requested page of records. Page is 1-based.
func (lf ListFilter) Paginate(records []map[string]any) []map[string]any {
	if lf.PerPage <= 0 {
		return records
	}
	page := max(lf.Page, 1)
	start := (page - 1) * lf.PerPage
	if start >= len(records) {
		return []map[string]any{}
	}
	return records[start:min(start+lf.PerPage, len(records))]
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

func number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	}
	return 0, false
}

func compare(v any, want string) int {
	if _, isText := v.(string); !isText {
		if a, ok := number(v); ok {
			if b, ok := number(want); ok {
				return cmp.Compare(a, b)
			}
		}
	}
	return strings.Compare(text(v), want)
}

func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	_, aText := a.(string)
	_, bText := b.(string)
	if !aText && !bText {
		x, okA := number(a)
		y, okB := number(b)
		if okA && okB {
			return cmp.Compare(x, y)
		}
	}
	return strings.Compare(strings.ToLower(text(a)), strings.ToLower(text(b)))
}
