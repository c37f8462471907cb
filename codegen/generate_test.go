/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/enummeta/errors"
)

func TestVariants(t *testing.T) {
	variants, err := Variants(filepath.Join("testdata", "colour"), "Colour")
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "Orange", "Green"}, variants)
}

func TestVariantsOtherType(t *testing.T) {
	variants, err := Variants(filepath.Join("testdata", "colour"), "Shape")
	require.NoError(t, err)
	assert.Equal(t, []string{"Circle", "Square"}, variants)
}

func TestVariantsUnknownType(t *testing.T) {
	_, err := Variants(filepath.Join("testdata", "colour"), "Flavour")
	require.Error(t, err)
}

func TestGenerateEager(t *testing.T) {
	tbl, err := LoadTable(filepath.Join("testdata", "colour_meta.yaml"))
	require.NoError(t, err)

	src, err := Generate(tbl, []string{"Red", "Orange", "Green"})
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by metagen; DO NOT EDIT.")
	assert.Contains(t, out, "package colour")
	assert.Contains(t, out, "func (v Colour) Meta() string {")
	assert.Contains(t, out, "case Red:")
	assert.Contains(t, out, `return "Red"`)
	assert.Contains(t, out, "func AllColour() []Colour {")
	// The fallthrough panic needs fmt even when the table imports nothing.
	assert.Contains(t, out, `"fmt"`)
}

func TestGenerateLazy(t *testing.T) {
	tbl, err := LoadTable(filepath.Join("testdata", "colour_lazy.yaml"))
	require.NoError(t, err)

	src, err := Generate(tbl, []string{"Red", "Orange", "Green"})
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, `"github.com/suparena/enummeta"`)
	assert.Contains(t, out, `var colourMeta = enummeta.MustLazy("colourMeta", AllColour(),`)
	assert.Contains(t, out, "enummeta.Expr(Red, func() string {")
	assert.Contains(t, out, "func (v Colour) Meta() *string {")
	assert.Contains(t, out, "return colourMeta.Meta(v)")
}

func TestGenerateIncompleteTable(t *testing.T) {
	tbl, err := LoadTable(filepath.Join("testdata", "colour_missing.yaml"))
	require.NoError(t, err)

	_, err = Generate(tbl, []string{"Red", "Orange", "Green"})
	require.Error(t, err)
	assert.True(t, errors.IsIncompleteTable(err))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	fixture, err := os.ReadFile(filepath.Join("testdata", "colour", "colour.go"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "colour.go"), fixture, 0o644))

	out, err := Run(filepath.Join("testdata", "colour_meta.yaml"), dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "colour_meta_gen.go"), out)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "func (v Colour) Meta() string {")
}

func TestRunCoverageFailure(t *testing.T) {
	_, err := Run(
		filepath.Join("testdata", "colour_missing.yaml"),
		filepath.Join("testdata", "colour"),
		filepath.Join(t.TempDir(), "out.go"),
	)
	require.Error(t, err)
	assert.True(t, errors.IsIncompleteTable(err))
}

func TestDefaultFilename(t *testing.T) {
	assert.Equal(t, "colour_meta_gen.go", DefaultFilename("Colour"))
}
