package colour

// Colour is the variant type used by the generator tests.
type Colour int

const (
	Red Colour = iota
	Orange
	Green
)

// Shape shares the package but must not leak into Colour's variant list.
type Shape int

const (
	Circle Shape = iota
	Square
)

const maxRetries = 3
