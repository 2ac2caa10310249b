// Package zkproof implements the pairing-based verifier for the aggregated
// batch proofs accepted by the rollup state machine.
//
// The verifier is a PLONK/KZG-family argument over bn254 with a keccak
// Fiat-Shamir transcript. The verifying key tables, the transcript absorption
// order and the accumulation formulas are protocol constants; they are tied
// to a specific proving-system compilation and must not be re-derived.
//
// Verify is a pure function: it owns no state and derives its outputs from
// its inputs only.
package zkproof
