/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors
var (
	// ErrIncompleteTable is returned when a metadata table omits one or more variants
	ErrIncompleteTable = errors.New("metadata table incomplete")

	// ErrDuplicateEntry is returned when a variant appears more than once in a table
	ErrDuplicateEntry = errors.New("duplicate table entry")

	// ErrUnknownVariant is returned when a lookup or table row names a variant outside the universe
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrStoreExists is returned when a lazy store name is already registered
	ErrStoreExists = errors.New("store already registered")

	// ErrPopulationFailed is returned when lazy cache population aborted
	ErrPopulationFailed = errors.New("cache population failed")
)

// IncompleteTableError reports the variants a metadata table failed to cover
type IncompleteTableError struct {
	Type    string
	Missing []string
}

func (e *IncompleteTableError) Error() string {
	return fmt.Sprintf("metadata table for %s missing variants: %s", e.Type, strings.Join(e.Missing, ", "))
}

func (e *IncompleteTableError) Is(target error) bool {
	return target == ErrIncompleteTable
}

// DuplicateEntryError reports a variant listed more than once
type DuplicateEntryError struct {
	Type    string
	Variant string
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("metadata table for %s lists variant %q more than once", e.Type, e.Variant)
}

func (e *DuplicateEntryError) Is(target error) bool {
	return target == ErrDuplicateEntry
}

// UnknownVariantError reports a variant outside the declared universe
type UnknownVariantError struct {
	Type    string
	Variant string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("variant %q is not part of %s", e.Variant, e.Type)
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// StoreExistsError reports a duplicate lazy store name
type StoreExistsError struct {
	Name string
}

func (e *StoreExistsError) Error() string {
	return fmt.Sprintf("metadata store %q already registered", e.Name)
}

func (e *StoreExistsError) Is(target error) bool {
	return target == ErrStoreExists
}

// PopulationFailedError reports a cache whose one-time population aborted.
// The store can never become valid afterwards, so every later lookup fails
// with this error.
type PopulationFailedError struct {
	Name  string
	Cause any
}

func (e *PopulationFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("metadata store %q population failed: %v", e.Name, e.Cause)
	}
	return fmt.Sprintf("metadata store %q population failed", e.Name)
}

func (e *PopulationFailedError) Is(target error) bool {
	return target == ErrPopulationFailed
}

// Helper functions for creating errors

// NewIncompleteTableError creates a new IncompleteTableError
func NewIncompleteTableError(variantType string, missing []string) error {
	return &IncompleteTableError{Type: variantType, Missing: missing}
}

// NewDuplicateEntryError creates a new DuplicateEntryError
func NewDuplicateEntryError(variantType, variant string) error {
	return &DuplicateEntryError{Type: variantType, Variant: variant}
}

// NewUnknownVariantError creates a new UnknownVariantError
func NewUnknownVariantError(variantType, variant string) error {
	return &UnknownVariantError{Type: variantType, Variant: variant}
}

// NewStoreExistsError creates a new StoreExistsError
func NewStoreExistsError(name string) error {
	return &StoreExistsError{Name: name}
}

// NewPopulationFailedError creates a new PopulationFailedError
func NewPopulationFailedError(name string, cause any) error {
	return &PopulationFailedError{Name: name, Cause: cause}
}

// IsIncompleteTable checks if an error is a coverage error
func IsIncompleteTable(err error) bool {
	return errors.Is(err, ErrIncompleteTable)
}

// IsDuplicateEntry checks if an error is a duplicate entry error
func IsDuplicateEntry(err error) bool {
	return errors.Is(err, ErrDuplicateEntry)
}

// IsUnknownVariant checks if an error is an unknown variant error
func IsUnknownVariant(err error) bool {
	return errors.Is(err, ErrUnknownVariant)
}

// IsStoreExists checks if an error is a duplicate store error
func IsStoreExists(err error) bool {
	return errors.Is(err, ErrStoreExists)
}

// IsPopulationFailed checks if an error is a population failure
func IsPopulationFailed(err error) bool {
	return errors.Is(err, ErrPopulationFailed)
}
