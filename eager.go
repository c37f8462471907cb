/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package enummeta

import "github.com/suparena/enummeta/errors"

// EagerStore attaches metadata to a variant type by dispatching to the
// table's expressions directly. Every Meta call re-evaluates the variant's
// expression, so rows built with Pair behave like constants while rows built
// with Expr produce a fresh value per call.
type EagerStore[V comparable, R any] struct {
	order []V
	exprs map[V]func() R
}

// NewEager builds an eager store from a metadata table. The table must cover
// every variant in variants exactly once; an incomplete, duplicated, or
// out-of-universe table is rejected before the store can be used.
func NewEager[V comparable, R any](variants []V, entries ...Entry[V, R]) (*EagerStore[V, R], error) {
	if _, err := validateTable(variants, entries); err != nil {
		return nil, err
	}

	exprs := make(map[V]func() R, len(entries))
	for _, e := range entries {
		exprs[e.variant] = e.expr
	}
	return &EagerStore[V, R]{
		order: tableOrder(entries),
		exprs: exprs,
	}, nil
}

// MustEager is like NewEager but panics on an invalid table. Intended for
// package-level store declarations, where a bad table should stop the
// program before it serves a single lookup.
func MustEager[V comparable, R any](variants []V, entries ...Entry[V, R]) *EagerStore[V, R] {
	s, err := NewEager(variants, entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// Meta returns the metadata attached to v, evaluated fresh on every call.
// Looking up a variant outside the store's universe panics; the table was
// verified exhaustive at construction, so this is caller error.
func (s *EagerStore[V, R]) Meta(v V) R {
	expr, ok := s.exprs[v]
	if !ok {
		panic(errors.NewUnknownVariantError(typeName[V](), variantName(v)))
	}
	return expr()
}

// All returns every variant in table declaration order.
func (s *EagerStore[V, R]) All() []V {
	out := make([]V, len(s.order))
	copy(out, s.order)
	return out
}
