package util

import (
	"fmt"
	"strings"
)

// QueryOperator represents a filter operator
type QueryOperator string

const (
	OpEq        QueryOperator = "eq"
	OpNe        QueryOperator = "ne"
	OpGt        QueryOperator = "gt"
	OpGte       QueryOperator = "gte"
	OpLt        QueryOperator = "lt"
	OpLte       QueryOperator = "lte"
	OpIn        QueryOperator = "in"
	OpNin       QueryOperator = "nin"
	OpLike      QueryOperator = "like"
	OpIsNull    QueryOperator = "isnull"
	OpIsNotNull QueryOperator = "isnotnull"
)

// QueryFilter is one condition on a record field. Value is a string, or
// []string for in/nin, or nil for the null checks.
type QueryFilter struct {
	Field    string
	Operator QueryOperator
	Value    any
}

// OrderDirection represents sort direction
type OrderDirection string

const (
	OrderAsc  OrderDirection = "asc"
	OrderDesc OrderDirection = "desc"
)

type OrderClause struct {
	Field     string
	Direction OrderDirection
}

var validOperators = map[string]QueryOperator{
	"eq":        OpEq,
	"ne":        OpNe,
	"gt":        OpGt,
	"gte":       OpGte,
	"lt":        OpLt,
	"lte":       OpLte,
	"in":        OpIn,
	"nin":       OpNin,
	"like":      OpLike,
	"isnull":    OpIsNull,
	"isnotnull": OpIsNotNull,
}

// ParseQueryString parses the query parameter of list endpoints.
// Conditions are separated by ";" and take one of the forms
//
//	field|value            equality
//	field|isnull           null check (also isnotnull)
//	field|operator|value   explicit operator; in/nin take a comma list
//
// e.g. "ville|Paris;tarif_client|gte|500;statut|in|planifiee,confirmee".
func ParseQueryString(queryStr string) ([]QueryFilter, error) {
	if strings.TrimSpace(queryStr) == "" {
		return nil, nil
	}

	var filters []QueryFilter
	for _, cond := range strings.Split(queryStr, ";") {
		cond = strings.TrimSpace(cond)
		if cond == "" {
			continue
		}

		parts := strings.SplitN(cond, "|", 3)
		if parts[0] == "" {
			return nil, fmt.Errorf("invalid query condition: %s (missing field)", cond)
		}

		switch len(parts) {
		case 2:
			switch op := QueryOperator(strings.ToLower(parts[1])); op {
			case OpIsNull, OpIsNotNull:
				filters = append(filters, QueryFilter{Field: parts[0], Operator: op})
			default:
				filters = append(filters, QueryFilter{Field: parts[0], Operator: OpEq, Value: parts[1]})
			}

		case 3:
			op, ok := validOperators[strings.ToLower(parts[1])]
			if !ok {
				return nil, fmt.Errorf("invalid operator: %s", parts[1])
			}
			var value any = parts[2]
			if op == OpIn || op == OpNin {
				value = strings.Split(parts[2], ",")
			}
			filters = append(filters, QueryFilter{Field: parts[0], Operator: op, Value: value})

		default:
			return nil, fmt.Errorf("invalid query condition: %s (expected field|value or field|operator|value)", cond)
		}
	}

	return filters, nil
}

// ParseOrderString parses "field|asc,other|desc". The direction defaults
// to asc when omitted.
func ParseOrderString(orderStr string) ([]OrderClause, error) {
	if strings.TrimSpace(orderStr) == "" {
		return nil, nil
	}

	var orders []OrderClause
	for _, pair := range strings.Split(orderStr, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		field, dir, _ := strings.Cut(pair, "|")
		direction := OrderDirection(strings.ToLower(dir))
		if direction == "" {
			direction = OrderAsc
		}
		if field == "" || (direction != OrderAsc && direction != OrderDesc) {
			return nil, fmt.Errorf("invalid order clause: %s (expected field|asc or field|desc)", pair)
		}
		orders = append(orders, OrderClause{Field: field, Direction: direction})
	}

	return orders, nil
}

// ValidateFields checks that every filter and order field is allowed.
func ValidateFields(filters []QueryFilter, orders []OrderClause, allowedFields []string) error {
	allowed := make(map[string]bool, len(allowedFields))
	for _, f := range allowedFields {
		allowed[f] = true
	}

	for _, f := range filters {
		if !allowed[f.Field] {
			return fmt.Errorf("invalid query field: %s", f.Field)
		}
	}
	for _, o := range orders {
		if !allowed[o.Field] {
			return fmt.Errorf("invalid order field: %s", o.Field)
		}
	}
	return nil
}
