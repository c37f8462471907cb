/*
Package enummeta attaches metadata to the variants of a closed enumerated
type. The metadata can be of an arbitrary type, but must be of the same type
for all variants although it can be a different value per variant.

This fills the use case where the variants are flags for something else --
for example, HTTP error codes, or parts of a syntax tree associated with an
explicit string rendering.

Two attachment mechanisms are provided:

  - Eager: the table's expressions are dispatched directly, evaluated fresh
    on every lookup.
  - Lazy: the table's expressions are evaluated exactly once, on first
    lookup, into a process-wide cache; lookups return references into it.

Both produce the same capability, described by the Meta interface: a total
lookup from variant to metadata plus an enumeration of all variants in table
order.

Basic Usage:

	type Colour int

	const (
	    Red Colour = iota
	    Orange
	    Green
	)

	var colourNames = enummeta.MustEager(
	    []Colour{Red, Orange, Green},
	    enummeta.Pair(Red, "Red"),
	    enummeta.Pair(Orange, "Orange"),
	    enummeta.Pair(Green, "Green"),
	)

	colourNames.Meta(Orange) // "Orange"
	colourNames.All()        // [Red, Orange, Green]

For expensive values, declare a lazy store instead; the expressions run once
and every lookup returns a pointer to the single cached value:

	var colourMeta = enummeta.MustLazy("colourMeta",
	    []Colour{Red, Orange, Green},
	    enummeta.Expr(Red, func() string { return fmt.Sprintf("%d:%s", 1, "Red") }),
	    enummeta.Expr(Orange, func() string { return fmt.Sprintf("%d:%s", 2, "Orange") }),
	    enummeta.Expr(Green, func() string { return fmt.Sprintf("%d:%s", 3, "Green") }),
	)

	colourMeta.Meta(Red) // &"1:Red"

Reverse lookup is deliberately not supported directly, because the metadata
type carries no general equality guarantee. All() enumerates the variants so
callers whose metadata type does support equality can build their own.

Tables can also be written declaratively in YAML and turned into generated
code with the metagen command; see the codegen package.

For more information, see the documentation at https://github.com/suparena/enummeta
*/
package enummeta
