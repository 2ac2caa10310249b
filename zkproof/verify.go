package zkproof

import (
	"fmt"
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/amirf4/scroll/logger"
)

// challenges is the table of transcript challenges and the values derived
// from them. Everything downstream of the transcript is a deterministic
// function of this table and the proof.
type challenges struct {
	theta fr.Element // gate aggregation
	beta  fr.Element // permutation
	gamma fr.Element // permutation
	y     fr.Element // identity aggregation
	x     fr.Element // evaluation point
	v     fr.Element // opening folding
	u     fr.Element // multi-point folding

	xN          fr.Element // xⁿ
	zhX         fr.Element // xⁿ-1
	lagrangeOne fr.Element // L₁(x)
	xOmega      fr.Element // ωx
	pi          fr.Element // Σ Lᵢ(x)·sᵢ over the instance limbs
}

// Verify checks proof against the six-word instance. It returns nil when the
// proof attests to the instance, ErrInvalidProof on a definitive rejection,
// and ErrComputation when an input is outside the arithmetic domain.
//
// The absorption order, the identity below and the folding order over the
// verifying key tables reproduce the proving-system compilation bit for bit.
func Verify(vk *VerifyingKey, proof *Proof, instance *Instance) error {
	log := logger.Logger().With().Str("curve", "bn254").Str("backend", "aggregator").Logger()
	start := time.Now()

	pair, limbs, err := instance.unpack()
	if err != nil {
		return err
	}

	// commitment to the instance column
	var instCommit curve.G1Affine
	if _, err := instCommit.MultiExp(vk.Lagrange[:NbInstanceLimbs], limbs[:], ecc.MultiExpConfig{}); err != nil {
		return fmt.Errorf("%w: %v", ErrComputation, err)
	}

	ch, err := deriveChallenges(vk, proof, &instCommit, limbs)
	if err != nil {
		return err
	}

	hEval, err := quotientEval(vk, proof, ch)
	if err != nil {
		return err
	}

	t0, t1, err := foldOpenings(vk, proof, ch, &hEval)
	if err != nil {
		return err
	}

	// opening check: e(t0, τ·G2)·e(-t1, G2) == 1
	var t1Neg curve.G1Affine
	t1Neg.Neg(&t1)
	ok, err := curve.PairingCheck([]curve.G1Affine{t0, t1Neg}, vk.InnerG2[:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrComputation, err)
	}
	if !ok {
		return fmt.Errorf("%w: opening check failed", ErrInvalidProof)
	}

	// accumulator check over the instance-derived pair
	ok, err = curve.PairingCheck(pair[:], vk.OuterG2[:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrComputation, err)
	}
	if !ok {
		return fmt.Errorf("%w: accumulator check failed", ErrInvalidProof)
	}

	log.Debug().Dur("took", time.Since(start)).Msg("verifier done")
	return nil
}

// deriveChallenges replays the transcript over the proof material. The
// absorption order is the order the prover emitted the values; one squeeze
// closes each proof round.
func deriveChallenges(vk *VerifyingKey, proof *Proof, instCommit *curve.G1Affine, limbs [NbInstanceLimbs]fr.Element) (*challenges, error) {
	fs := newTranscript()
	var ch challenges

	fs.absorbScalar(&vk.InitScalar)
	fs.absorbPoint(&vk.InitPoint)
	for i := range limbs {
		fs.absorbScalar(&limbs[i])
	}
	fs.absorbPoint(instCommit)

	// round 1: wire commitments
	for i := range proof.Wire {
		fs.absorbPoint(&proof.Wire[i])
	}
	ch.theta = fs.squeezeChallenge()

	// round 2: permutation grand product
	fs.absorbPoint(&proof.Z)
	ch.beta = fs.squeezeChallenge()
	ch.gamma = fs.squeezeChallenge()
	ch.y = fs.squeezeChallenge()

	// round 3: quotient pieces
	for i := range proof.H {
		fs.absorbPoint(&proof.H[i])
	}
	ch.x = fs.squeezeChallenge()

	// round 4: evaluations
	for i := range proof.WireEvals {
		fs.absorbScalar(&proof.WireEvals[i])
	}
	for i := range proof.FixedEvals {
		fs.absorbScalar(&proof.FixedEvals[i])
	}
	for i := range proof.PermEvals {
		fs.absorbScalar(&proof.PermEvals[i])
	}
	fs.absorbScalar(&proof.ZEval)
	fs.absorbScalar(&proof.ZOmegaEval)
	ch.v = fs.squeezeChallenge()

	// round 5: opening proofs
	fs.absorbPoint(&proof.W)
	fs.absorbPoint(&proof.WOmega)
	ch.u = fs.squeezeChallenge()

	// derived domain quantities
	one := fr.One()
	var bExpo big.Int
	bExpo.SetUint64(vk.Size)
	ch.xN.Exp(ch.x, &bExpo)
	ch.zhX.Sub(&ch.xN, &one)
	if ch.zhX.IsZero() {
		// x landed inside the evaluation domain
		return nil, fmt.Errorf("%w: evaluation point in domain", ErrComputation)
	}
	var den fr.Element
	den.Sub(&ch.x, &one)
	ch.lagrangeOne.Inverse(&den).
		Mul(&ch.lagrangeOne, &ch.zhX).
		Mul(&ch.lagrangeOne, &vk.SizeInv)
	ch.xOmega.Mul(&ch.x, &vk.Omega)

	// pi = Σ sᵢ·Lᵢ(x), Lᵢ(x) = (ωⁱ/n)·(xⁿ-1)/(x-ωⁱ)
	dens := make([]fr.Element, len(limbs))
	accw := fr.One()
	for i := range limbs {
		dens[i].Sub(&ch.x, &accw)
		accw.Mul(&accw, &vk.Omega)
	}
	invDens := fr.BatchInvert(dens)
	accw.SetOne()
	var xiLi fr.Element
	for i := range limbs {
		xiLi.Mul(&ch.zhX, &invDens[i]).
			Mul(&xiLi, &vk.SizeInv).
			Mul(&xiLi, &accw).
			Mul(&xiLi, &limbs[i])
		accw.Mul(&accw, &vk.Omega)
		ch.pi.Add(&ch.pi, &xiLi)
	}

	return &ch, nil
}

// quotientEval reconstructs the claimed quotient evaluation from the gate and
// permutation identity:
//
//	h(x)·(xⁿ-1) = pi + gate + y·perm + y²·L₁(x)·(z(x)-1)
func quotientEval(vk *VerifyingKey, proof *Proof, ch *challenges) (fr.Element, error) {
	one := fr.One()

	// aggregated gate Σ θʲ·qⱼ(x)·wⱼ(x); the wire term cycles through
	// a·b, a, b, c, 1 with the column position
	var gate, term, thetaJ, ab fr.Element
	thetaJ.SetOne()
	ab.Mul(&proof.WireEvals[0], &proof.WireEvals[1])
	for j := range proof.FixedEvals {
		switch j % 5 {
		case 0:
			term.Set(&ab)
		case 1:
			term.Set(&proof.WireEvals[0])
		case 2:
			term.Set(&proof.WireEvals[1])
		case 3:
			term.Set(&proof.WireEvals[2])
		case 4:
			term.SetOne()
		}
		term.Mul(&term, &proof.FixedEvals[j]).Mul(&term, &thetaJ)
		gate.Add(&gate, &term)
		thetaJ.Mul(&thetaJ, &ch.theta)
	}

	// permutation: z(x)·Π(wᵢ+β·kᵢ·x+γ) - z(ωx)·Π(wᵢ+β·σᵢ(x)+γ)
	shifts := [NbWires]fr.Element{one, vk.K1, vk.K2}
	var lhs, rhs, f fr.Element
	lhs.Set(&proof.ZEval)
	rhs.Set(&proof.ZOmegaEval)
	for i := 0; i < NbWires; i++ {
		f.Mul(&ch.beta, &shifts[i]).
			Mul(&f, &ch.x).
			Add(&f, &proof.WireEvals[i]).
			Add(&f, &ch.gamma)
		lhs.Mul(&lhs, &f)

		f.Mul(&ch.beta, &proof.PermEvals[i]).
			Add(&f, &proof.WireEvals[i]).
			Add(&f, &ch.gamma)
		rhs.Mul(&rhs, &f)
	}
	var perm fr.Element
	perm.Sub(&lhs, &rhs)

	// y²·L₁(x)·(z(x)-1)
	var boundary fr.Element
	boundary.Sub(&proof.ZEval, &one).
		Mul(&boundary, &ch.lagrangeOne).
		Mul(&boundary, &ch.y).
		Mul(&boundary, &ch.y)

	var identity fr.Element
	identity.Mul(&ch.y, &perm).
		Add(&identity, &gate).
		Add(&identity, &ch.pi).
		Add(&identity, &boundary)

	var hEval fr.Element
	hEval.Div(&identity, &ch.zhX)
	return hEval, nil
}

// foldOpenings folds the opened commitments and their claimed evaluations
// into the (t0, t1) pair of the opening pairing check:
//
//	t0 = W + u·Wω
//	t1 = x·W + F - E·[1] + u·(ωx·Wω + Z - z(ωx)·[1])
func foldOpenings(vk *VerifyingKey, proof *Proof, ch *challenges, hEval *fr.Element) (curve.G1Affine, curve.G1Affine, error) {
	var t0, t1, p curve.G1Affine

	// fold the quotient pieces, Horner over x^{n+2}
	var xNPlus2 fr.Element
	var bExpo big.Int
	bExpo.SetUint64(vk.Size + 2)
	xNPlus2.Exp(ch.x, &bExpo)
	var s big.Int
	xNPlus2.BigInt(&s)
	var hFold curve.G1Affine
	hFold.ScalarMultiplication(&proof.H[NbQuotientPieces-1], &s)
	for i := NbQuotientPieces - 2; i >= 0; i-- {
		hFold.Add(&hFold, &proof.H[i])
		if i > 0 {
			hFold.ScalarMultiplication(&hFold, &s)
		}
	}

	// commitments opened at x, in protocol order, with their evaluations
	nbOpened := 2 + NbWires + NbFixed + NbWires
	digests := make([]curve.G1Affine, 0, nbOpened)
	evals := make([]fr.Element, 0, nbOpened)
	digests = append(digests, hFold)
	evals = append(evals, *hEval)
	digests = append(digests, proof.Wire[:]...)
	evals = append(evals, proof.WireEvals[:]...)
	digests = append(digests, proof.Z)
	evals = append(evals, proof.ZEval)
	digests = append(digests, vk.Fixed[:]...)
	evals = append(evals, proof.FixedEvals[:]...)
	digests = append(digests, vk.Permutation[:]...)
	evals = append(evals, proof.PermEvals[:]...)

	// powers of v
	vPowers := make([]fr.Element, len(digests))
	vPowers[0].SetOne()
	for i := 1; i < len(vPowers); i++ {
		vPowers[i].Mul(&vPowers[i-1], &ch.v)
	}

	// F = Σ vⁱ·Cᵢ, E = Σ vⁱ·eᵢ
	var foldedDigest curve.G1Affine
	if _, err := foldedDigest.MultiExp(digests, vPowers, ecc.MultiExpConfig{}); err != nil {
		return t0, t1, fmt.Errorf("%w: %v", ErrComputation, err)
	}
	var foldedEval, tmp fr.Element
	for i := range evals {
		tmp.Mul(&vPowers[i], &evals[i])
		foldedEval.Add(&foldedEval, &tmp)
	}

	// t0 = W + u·Wω
	var bu big.Int
	ch.u.BigInt(&bu)
	t0.ScalarMultiplication(&proof.WOmega, &bu)
	t0.Add(&t0, &proof.W)

	// t1 = x·W + F - E·[1] + u·(ωx·Wω + Z - z(ωx)·[1])
	var bx big.Int
	ch.x.BigInt(&bx)
	t1.ScalarMultiplication(&proof.W, &bx)
	t1.Add(&t1, &foldedDigest)

	var uxOmega fr.Element
	uxOmega.Mul(&ch.u, &ch.xOmega)
	uxOmega.BigInt(&bx)
	p.ScalarMultiplication(&proof.WOmega, &bx)
	t1.Add(&t1, &p)

	p.ScalarMultiplication(&proof.Z, &bu)
	t1.Add(&t1, &p)

	// subtract the folded evaluations: (E + u·z(ωx))·[1]
	var e fr.Element
	e.Mul(&ch.u, &proof.ZOmegaEval).Add(&e, &foldedEval)
	e.BigInt(&bx)
	p.ScalarMultiplication(&vk.One, &bx)
	t1.Sub(&t1, &p)

	return t0, t1, nil
}
