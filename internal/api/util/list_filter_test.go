package util

import "testing"

func TestQueryFilterMatch(t *testing.T) {
	tests := []struct {
		name   string
		filter QueryFilter
		value  any
		want   bool
	}{
		{"eq text", QueryFilter{Operator: OpEq, Value: "Paris"}, "Paris", true},
		{"eq is case sensitive", QueryFilter{Operator: OpEq, Value: "paris"}, "Paris", false},
		{"eq int", QueryFilter{Operator: OpEq, Value: "3"}, int64(3), true},
		{"gt numeric", QueryFilter{Operator: OpGt, Value: "9"}, float64(10), true},
		{"gt text", QueryFilter{Operator: OpGt, Value: "9"}, "10", false},
		{"lte date", QueryFilter{Operator: OpLte, Value: "2025-03-15"}, "2025-03-01", true},
		{"ne on null", QueryFilter{Operator: OpNe, Value: "x"}, nil, true},
		{"eq on null", QueryFilter{Operator: OpEq, Value: "x"}, nil, false},
		{"in", QueryFilter{Operator: OpIn, Value: []string{"1", "2"}}, int64(2), true},
		{"nin", QueryFilter{Operator: OpNin, Value: []string{"1", "2"}}, int64(2), false},
		{"nin on null", QueryFilter{Operator: OpNin, Value: []string{"1"}}, nil, true},
		{"like", QueryFilter{Operator: OpLike, Value: "CORP"}, "Acme Corporation", true},
		{"isnull", QueryFilter{Operator: OpIsNull}, nil, true},
		{"isnotnull", QueryFilter{Operator: OpIsNotNull}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(tt.value); got != tt.want {
				t.Errorf("Match(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestSortAndPaginate(t *testing.T) {
	records := []map[string]any{
		{"nom": "b", "tarif": float64(10)},
		{"nom": "A", "tarif": float64(2)},
		{"nom": "c"},
	}

	ListFilter{Order: []OrderClause{{Field: "tarif", Direction: OrderAsc}}}.Sort(records)
	if records[0]["nom"] != "c" || records[1]["nom"] != "A" || records[2]["nom"] != "b" {
		t.Errorf("expected nulls first then numeric order, got %v", records)
	}

	ListFilter{Order: []OrderClause{{Field: "nom", Direction: OrderDesc}}}.Sort(records)
	if records[0]["nom"] != "c" || records[2]["nom"] != "A" {
		t.Errorf("expected case-insensitive descending order, got %v", records)
	}

	lf := ListFilter{Page: 2, PerPage: 2}
	if page := lf.Paginate(records); len(page) != 1 || page[0]["nom"] != "A" {
		t.Errorf("unexpected page %v", page)
	}
	lf.Page = 5
	if page := lf.Paginate(records); page == nil || len(page) != 0 {
		t.Errorf("expected empty page, got %v", page)
	}
	if all := (ListFilter{}).Paginate(records); len(all) != 3 {
		t.Errorf("expected no pagination, got %d", len(all))
	}
}
