/*
Package codegen turns declarative YAML metadata tables into Go source.

A table names a variant type, a metadata type, and one (variant, expression)
row per variant:

	package: colour
	type: Colour
	meta: string
	mode: eager
	entries:
	  - variant: Red
	    value: '"Red"'
	  - variant: Orange
	    value: '"Orange"'
	  - variant: Green
	    value: '"Green"'

The generator parses the target package, discovers the constants declared
with the variant type, and refuses to generate when the table does not cover
them exactly. Coverage is therefore a build-time property: a variant added to
the enum without a table row fails the next generation run, before the
program can ever look it up.

Eager mode emits a Meta method dispatching through an exhaustive switch, with
every expression evaluated fresh per call. Lazy mode emits a package-level
store wired to enummeta.MustLazy, so the expressions run exactly once into
the process-wide cache. Both modes emit an All<Type> function returning the
variants in table order.

The metagen command wraps this package for use with go:generate:

	//go:generate metagen -f colour_meta.yaml
*/
package codegen
