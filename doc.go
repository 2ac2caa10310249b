// Package scroll implements the settlement side of a zk-rollup: a batch
// commitment state machine over canonically encoded L2 blocks, and a
// pairing-based verifier for the aggregate validity proofs that finalize
// committed batches.
//
// The rollup package owns the commit / finalize / revert lifecycle and the
// public input encoding; the zkproof package checks aggregate proofs against
// their six-word instances on BN254.
package scroll

import (
	"github.com/blang/semver/v4"
)

// Version of the module.
var Version = semver.MustParse("0.1.0")
