/*
Package errors provides semantic error types for the enummeta library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrIncompleteTable  = errors.New("metadata table incomplete")
	    ErrDuplicateEntry   = errors.New("duplicate table entry")
	    ErrUnknownVariant   = errors.New("unknown variant")
	    ErrStoreExists      = errors.New("store already registered")
	    ErrPopulationFailed = errors.New("cache population failed")
	)

Usage:

	// Check error type
	store, err := enummeta.NewEager(AllColour(), entries...)
	if err != nil {
	    if errors.IsIncompleteTable(err) {
	        // The table left one or more variants without metadata
	        return err
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewIncompleteTableError("Colour", []string{"Green"})
	err := errors.NewStoreExistsError("colourMeta")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
