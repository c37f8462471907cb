/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package enummeta

import (
	"fmt"

	"github.com/suparena/enummeta/errors"
)

// Meta is the capability contract shared by both attachment mechanisms.
// V is the variant type (a closed set of named constants), R is the metadata
// type. Eager stores implement Meta[V, R]; lazy stores implement Meta[V, *R]
// because every lookup returns a reference into the process-wide cache.
type Meta[V comparable, R any] interface {
	// Meta returns the metadata attached to variant v.
	Meta(v V) R
	// All returns every variant in table declaration order.
	All() []V
}

// Entry is one row of a metadata table: a variant paired with the expression
// that produces its metadata value.
type Entry[V comparable, R any] struct {
	variant V
	expr    func() R
}

// Pair builds a table row attaching a fixed value to a variant.
func Pair[V comparable, R any](v V, value R) Entry[V, R] {
	return Entry[V, R]{variant: v, expr: func() R { return value }}
}

// Expr builds a table row attaching a computed expression to a variant.
// Eager stores re-evaluate fn on every lookup; lazy stores evaluate it
// exactly once during cache population.
func Expr[V comparable, R any](v V, fn func() R) Entry[V, R] {
	return Entry[V, R]{variant: v, expr: fn}
}

// variantName renders a variant for error messages. Types generated with
// stringer (or hand-written String methods) print their constant names.
func variantName[V comparable](v V) string {
	return fmt.Sprintf("%v", v)
}

// typeName renders the variant type's name for error messages.
func typeName[V comparable]() string {
	var zero V
	return fmt.Sprintf("%T", zero)
}

// validateTable checks that entries cover the variant universe exactly:
// every variant appears in the table, no variant appears twice, and no table
// row names a variant outside the universe. Both mechanisms run this check at
// construction, before any lookup can happen.
func validateTable[V comparable, R any](variants []V, entries []Entry[V, R]) (map[V]int, error) {
	universe := make(map[V]struct{}, len(variants))
	for _, v := range variants {
		if _, dup := universe[v]; dup {
			return nil, errors.NewDuplicateEntryError(typeName[V](), variantName(v))
		}
		universe[v] = struct{}{}
	}

	index := make(map[V]int, len(entries))
	for i, e := range entries {
		if _, known := universe[e.variant]; !known {
			return nil, errors.NewUnknownVariantError(typeName[V](), variantName(e.variant))
		}
		if _, dup := index[e.variant]; dup {
			return nil, errors.NewDuplicateEntryError(typeName[V](), variantName(e.variant))
		}
		index[e.variant] = i
	}

	if len(index) < len(universe) {
		var missing []string
		for _, v := range variants {
			if _, ok := index[v]; !ok {
				missing = append(missing, variantName(v))
			}
		}
		return nil, errors.NewIncompleteTableError(typeName[V](), missing)
	}

	return index, nil
}

// tableOrder returns the variants in entry declaration order.
func tableOrder[V comparable, R any](entries []Entry[V, R]) []V {
	order := make([]V, len(entries))
	for i, e := range entries {
		order[i] = e.variant
	}
	return order
}
