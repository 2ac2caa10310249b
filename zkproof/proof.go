package zkproof

import (
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const (
	// NbWires number of wire columns of the aggregation circuit
	NbWires = 3

	// NbFixed number of fixed columns committed in the verifying key
	NbFixed = 72

	// NbQuotientPieces number of quotient commitment pieces
	NbQuotientPieces = 3

	// NbInstanceWords number of 256-bit words in an Instance
	NbInstanceWords = 6

	// NbInstanceLimbs number of field elements an Instance unpacks to
	NbInstanceLimbs = 6
)

// Proof is the ordered list of curve points and field elements emitted by the
// prover. The order of the fields is the order they enter the transcript.
type Proof struct {
	// commitments, one transcript round each
	Wire [NbWires]curve.G1Affine
	Z    curve.G1Affine
	H    [NbQuotientPieces]curve.G1Affine

	// claimed evaluations at the challenge point
	WireEvals  [NbWires]fr.Element
	FixedEvals [NbFixed]fr.Element
	PermEvals  [NbWires]fr.Element
	ZEval      fr.Element
	ZOmegaEval fr.Element

	// opening proofs at the challenge point and its omega shift
	W      curve.G1Affine
	WOmega curve.G1Affine
}
