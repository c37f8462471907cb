/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codegen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/enummeta/errors"
)

func TestLoadTable(t *testing.T) {
	tbl, err := LoadTable(filepath.Join("testdata", "colour_meta.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "colour", tbl.Package)
	assert.Equal(t, "Colour", tbl.Type)
	assert.Equal(t, "string", tbl.Meta)
	assert.Equal(t, ModeEager, tbl.Mode)
	require.Len(t, tbl.Entries, 3)
	assert.Equal(t, "Red", tbl.Entries[0].Variant)
	assert.Equal(t, `"Red"`, tbl.Entries[0].Value)
}

func TestLoadTableLazy(t *testing.T) {
	tbl, err := LoadTable(filepath.Join("testdata", "colour_lazy.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ModeLazy, tbl.Mode)
	assert.Equal(t, "colourMeta", tbl.Store)
	assert.Equal(t, []string{"fmt"}, tbl.Imports)
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
}

func TestTableValidate(t *testing.T) {
	valid := func() *Table {
		return &Table{
			Package: "colour",
			Type:    "Colour",
			Meta:    "string",
			Entries: []TableEntry{{Variant: "Red", Value: `"Red"`}},
		}
	}

	t.Run("DefaultsToEager", func(t *testing.T) {
		tbl := valid()
		require.NoError(t, tbl.Validate())
		assert.Equal(t, ModeEager, tbl.Mode)
	})

	t.Run("UnknownMode", func(t *testing.T) {
		tbl := valid()
		tbl.Mode = "cached"
		assert.Error(t, tbl.Validate())
	})

	t.Run("LazyRequiresStore", func(t *testing.T) {
		tbl := valid()
		tbl.Mode = ModeLazy
		assert.Error(t, tbl.Validate())

		tbl.Store = "colourMeta"
		assert.NoError(t, tbl.Validate())
	})

	t.Run("MissingFields", func(t *testing.T) {
		for _, strip := range []func(*Table){
			func(tbl *Table) { tbl.Package = "" },
			func(tbl *Table) { tbl.Type = "" },
			func(tbl *Table) { tbl.Meta = "" },
			func(tbl *Table) { tbl.Entries = nil },
		} {
			tbl := valid()
			strip(tbl)
			assert.Error(t, tbl.Validate())
		}
	})

	t.Run("DuplicateVariant", func(t *testing.T) {
		tbl := valid()
		tbl.Entries = append(tbl.Entries, TableEntry{Variant: "Red", Value: `"Crimson"`})
		err := tbl.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsDuplicateEntry(err))
	})
}

func TestCheckCoverage(t *testing.T) {
	tbl := &Table{
		Type: "Colour",
		Entries: []TableEntry{
			{Variant: "Red", Value: `"Red"`},
			{Variant: "Orange", Value: `"Orange"`},
		},
	}

	t.Run("Missing", func(t *testing.T) {
		err := tbl.CheckCoverage([]string{"Red", "Orange", "Green"})
		require.Error(t, err)
		assert.True(t, errors.IsIncompleteTable(err))
		assert.Contains(t, err.Error(), "Green")
	})

	t.Run("Unknown", func(t *testing.T) {
		err := tbl.CheckCoverage([]string{"Red"})
		require.Error(t, err)
		assert.True(t, errors.IsUnknownVariant(err))
	})

	t.Run("Exact", func(t *testing.T) {
		assert.NoError(t, tbl.CheckCoverage([]string{"Red", "Orange"}))
	})
}
