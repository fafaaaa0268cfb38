package gf

import "errors"

// Error kinds surfaced by the engine. They are sentinels so protocol layers
// can branch on errors.Is; every failure path wraps one of these with the
// offending context.
var (
	// ErrDivisionByZero reports a field division with divisor congruent to zero.
	ErrDivisionByZero = errors.New("gf: division by zero")

	// ErrNotInvertible reports an inversion of an element congruent to zero.
	ErrNotInvertible = errors.New("gf: element has no inverse")

	// ErrDimensionMismatch reports vector or matrix operands of incompatible shape.
	ErrDimensionMismatch = errors.New("gf: dimension mismatch")

	// ErrInvalidOrder reports a root-of-unity order that does not divide p-1.
	ErrInvalidOrder = errors.New("gf: invalid root-of-unity order")

	// ErrInvalidDomain reports an evaluation or interpolation domain whose size
	// the field does not support.
	ErrInvalidDomain = errors.New("gf: invalid evaluation domain")

	// ErrDuplicateXCoordinate reports repeated x-coordinates passed to Lagrange
	// interpolation.
	ErrDuplicateXCoordinate = errors.New("gf: duplicate x coordinate")

	// ErrInvalidDegree reports a quartic-batch row whose width is not 4.
	ErrInvalidDegree = errors.New("gf: invalid row degree")

	// ErrNotDivisible reports an exact polynomial division with nonzero remainder.
	ErrNotDivisible = errors.New("gf: polynomials not exactly divisible")
)
