package zkproof

import "errors"

var (
	// ErrInvalidProof the proof does not attest to the public input. A
	// rejection is definitive: the same proof keeps failing for the same
	// instance.
	ErrInvalidProof = errors.New("proof does not attest to the public input")

	// ErrComputation an arithmetic primitive was given out-of-domain input
	// (a coordinate outside the base field, a point off the curve, a zero
	// denominator). Unreachable under correct usage.
	ErrComputation = errors.New("arithmetic input out of domain")
)
