// Package filter composes pure predicates over in-memory collections.
package filter

import "strings"

// Predicate reports whether an item is kept.
type Predicate[T any] func(T) bool

// All keeps items matching every predicate. No predicates keeps everything.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if p != nil && !p(item) {
				return false
			}
		}
		return true
	}
}

// Any keeps items matching at least one predicate.
func Any[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if p != nil && p(item) {
				return true
			}
		}
		return false
	}
}

func Not[T any](p Predicate[T]) Predicate[T] {
	return func(item T) bool { return !p(item) }
}

// ContainsFold keeps items where any field contains query, ignoring case.
// Accents are significant. An empty or blank query keeps everything.
func ContainsFold[T any](query string, fields ...func(T) string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return func(T) bool { return true }
	}
	return func(item T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), q) {
				return true
			}
		}
		return false
	}
}

// Equal keeps items whose field equals want.
func Equal[T any, V comparable](want V, field func(T) V) Predicate[T] {
	return func(item T) bool { return field(item) == want }
}

// Apply returns the items kept by every predicate, in their original order.
// The input slice is not modified.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	keep := All(preds...)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
