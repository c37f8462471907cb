/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codegen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/enummeta/errors"
)

// Attachment modes.
const (
	ModeEager = "eager"
	ModeLazy  = "lazy"
)

// Table is the declarative metadata table consumed by the generator.
type Table struct {
	// Package is the Go package the generated file belongs to.
	Package string `yaml:"package"`
	// Type is the variant type the table covers.
	Type string `yaml:"type"`
	// Meta is the Go type of the metadata values.
	Meta string `yaml:"meta"`
	// Mode selects the attachment mechanism, "eager" (default) or "lazy".
	Mode string `yaml:"mode,omitempty"`
	// Store names the process-wide cache. Required in lazy mode.
	Store string `yaml:"store,omitempty"`
	// Imports lists extra import paths the value expressions need.
	Imports []string `yaml:"imports,omitempty"`
	// Entries are the (variant, expression) rows in declaration order.
	Entries []TableEntry `yaml:"entries"`
}

// TableEntry is one table row. Value is a Go expression of the table's
// metadata type.
type TableEntry struct {
	Variant string `yaml:"variant"`
	Value   string `yaml:"value"`
}

// LoadTable reads and validates a YAML table file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table file: %w", err)
	}

	var tbl Table
	if err := yaml.Unmarshal(data, &tbl); err != nil {
		return nil, fmt.Errorf("parsing table file %s: %w", path, err)
	}
	if err := tbl.Validate(); err != nil {
		return nil, err
	}
	return &tbl, nil
}

// Validate checks the table's structure. Coverage against the declared enum
// is checked separately, once the target package has been inspected.
func (t *Table) Validate() error {
	if t.Package == "" {
		return fmt.Errorf("table missing package name")
	}
	if t.Type == "" {
		return fmt.Errorf("table missing variant type name")
	}
	if t.Meta == "" {
		return fmt.Errorf("table missing metadata type")
	}
	if t.Mode == "" {
		t.Mode = ModeEager
	}
	if t.Mode != ModeEager && t.Mode != ModeLazy {
		return fmt.Errorf("table mode must be %q or %q, got %q", ModeEager, ModeLazy, t.Mode)
	}
	if t.Mode == ModeLazy && t.Store == "" {
		return fmt.Errorf("lazy table missing store name")
	}
	if len(t.Entries) == 0 {
		return fmt.Errorf("table for %s has no entries", t.Type)
	}

	seen := make(map[string]struct{}, len(t.Entries))
	for _, e := range t.Entries {
		if e.Variant == "" {
			return fmt.Errorf("table for %s has an entry without a variant", t.Type)
		}
		if e.Value == "" {
			return fmt.Errorf("table for %s has no value for variant %s", t.Type, e.Variant)
		}
		if _, dup := seen[e.Variant]; dup {
			return errors.NewDuplicateEntryError(t.Type, e.Variant)
		}
		seen[e.Variant] = struct{}{}
	}
	return nil
}

// CheckCoverage verifies the table covers the declared variants exactly.
// declared is the constant list discovered from the target package, in
// declaration order. A missing or unknown variant is a generation-time
// failure, so an incomplete table can never reach the compiler.
func (t *Table) CheckCoverage(declared []string) error {
	universe := make(map[string]struct{}, len(declared))
	for _, v := range declared {
		universe[v] = struct{}{}
	}
	covered := make(map[string]struct{}, len(t.Entries))
	for _, e := range t.Entries {
		if _, ok := universe[e.Variant]; !ok {
			return errors.NewUnknownVariantError(t.Type, e.Variant)
		}
		covered[e.Variant] = struct{}{}
	}

	var missing []string
	for _, v := range declared {
		if _, ok := covered[v]; !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return errors.NewIncompleteTableError(t.Type, missing)
	}
	return nil
}
