/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package enummeta

import (
	stderrors "errors"
	"testing"

	"github.com/suparena/enummeta/errors"
)

// Both stores satisfy the capability contract; the lazy store hands out
// references into its cache.
var (
	_ Meta[Colour, string]  = (*EagerStore[Colour, string])(nil)
	_ Meta[Colour, *string] = (*LazyStore[Colour, string])(nil)
)

func TestValidateTableReportsAllMissing(t *testing.T) {
	_, err := NewEager(allColours(), Pair(Orange, "Orange"))
	if err == nil {
		t.Fatal("Expected error for incomplete table")
	}

	var incomplete *errors.IncompleteTableError
	if !stderrors.As(err, &incomplete) {
		t.Fatalf("Expected IncompleteTableError, got %T", err)
	}
	if len(incomplete.Missing) != 2 {
		t.Errorf("Missing = %v, want two variants", incomplete.Missing)
	}
}

func TestDuplicateUniverseRejected(t *testing.T) {
	_, err := NewEager([]Colour{Red, Red, Orange},
		Pair(Red, "Red"),
		Pair(Orange, "Orange"),
	)
	if err == nil {
		t.Fatal("Expected error for duplicate universe variant")
	}
	if !errors.IsDuplicateEntry(err) {
		t.Errorf("Expected duplicate entry error, got %v", err)
	}
}
