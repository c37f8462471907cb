/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package enummeta

import (
	"reflect"
	"sync"

	"github.com/suparena/enummeta/errors"
	"github.com/suparena/enummeta/registry"
)

// LazyStore attaches metadata to a variant type through a process-wide cache
// populated exactly once, on first lookup. It implements Meta[V, *R]: every
// lookup returns a pointer into the cache, so callers observe the same
// underlying value for the lifetime of the process.
type LazyStore[V comparable, R any] struct {
	name  string
	order []V
	index map[V]int
	exprs []func() R

	once    sync.Once
	values  []R
	ready   bool
	failure any
}

// NewLazy builds a lazy store from a metadata table. name identifies the
// store in the process-wide registry and must be unique. The coverage check
// runs here, at construction, so an incomplete table is rejected even if no
// variant is ever looked up.
func NewLazy[V comparable, R any](name string, variants []V, entries ...Entry[V, R]) (*LazyStore[V, R], error) {
	index, err := validateTable(variants, entries)
	if err != nil {
		return nil, err
	}

	exprs := make([]func() R, len(entries))
	for i, e := range entries {
		exprs[i] = e.expr
	}

	var zeroV V
	var zeroR R
	if err := registry.Register(name, registry.StoreInfo{
		VariantType: reflect.TypeOf(zeroV),
		MetaType:    reflect.TypeOf(zeroR),
		Variants:    len(entries),
	}); err != nil {
		return nil, err
	}

	return &LazyStore[V, R]{
		name:  name,
		order: tableOrder(entries),
		index: index,
		exprs: exprs,
	}, nil
}

// MustLazy is like NewLazy but panics on an invalid table or duplicate store
// name. Intended for package-level store declarations and generated code.
func MustLazy[V comparable, R any](name string, variants []V, entries ...Entry[V, R]) *LazyStore[V, R] {
	s, err := NewLazy(name, variants, entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// populate evaluates every table expression exactly once and installs the
// cache. A panicking expression leaves the store permanently broken: the
// panic propagates to the first caller and the ready flag never flips, so
// later lookups fail with a population error instead of reading a partially
// built cache.
func (s *LazyStore[V, R]) populate() {
	defer func() {
		if r := recover(); r != nil {
			s.failure = r
			panic(r)
		}
	}()

	values := make([]R, len(s.exprs))
	for i, expr := range s.exprs {
		values[i] = expr()
	}
	s.values = values
	s.ready = true
}

// Meta returns a pointer to the cached metadata for v. The first call from
// any goroutine populates the cache; sync.Once orders the population before
// every subsequent read, so no locking is needed afterwards.
func (s *LazyStore[V, R]) Meta(v V) *R {
	s.once.Do(s.populate)
	if !s.ready {
		panic(errors.NewPopulationFailedError(s.name, s.failure))
	}
	i, ok := s.index[v]
	if !ok {
		panic(errors.NewUnknownVariantError(typeName[V](), variantName(v)))
	}
	return &s.values[i]
}

// All returns every variant in table declaration order. It does not trigger
// cache population.
func (s *LazyStore[V, R]) All() []V {
	out := make([]V, len(s.order))
	copy(out, s.order)
	return out
}

// Name returns the store's registry name.
func (s *LazyStore[V, R]) Name() string {
	return s.name
}
