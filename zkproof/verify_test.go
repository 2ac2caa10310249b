package zkproof

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
	"github.com/stretchr/testify/require"
)

// The tests run the verifier against proofs produced by a minimal honest
// prover over an SRS with a known trapdoor. The prover commits to the
// all-zero witness of the aggregation circuit shape (zero wires, constant-one
// grand product, identity permutation), so the quotient vanishes and every
// opening is exact.

// trapdoors of the test setup
var (
	testSRSAlpha    = big.NewInt(1337)
	testOuterScalar = big.NewInt(7)
)

func bigOf(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

func newTestKey(t *testing.T) (*VerifyingKey, *kzg.SRS) {
	t.Helper()

	srs, err := kzg.NewSRS(8, testSRSAlpha)
	require.NoError(t, err)

	var vk VerifyingKey
	domain := fft.NewDomain(8)
	vk.Size = domain.Cardinality
	vk.SizeInv = domain.CardinalityInv
	vk.Omega = domain.Generator
	vk.K1.SetUint64(2)
	vk.K2.SetUint64(3)

	vk.InitScalar.SetUint64(0x53c8011)
	vk.InitPoint = srs.Pk.G1[3]
	vk.One = srs.Pk.G1[0]

	copy(vk.Lagrange[:], srs.Pk.G1[:len(vk.Lagrange)])

	// fixed columns are identically zero: commitments stay at infinity

	// identity permutation: sigma_i(X) = k_i X
	vk.Permutation[0] = srs.Pk.G1[1]
	var k big.Int
	vk.K1.BigInt(&k)
	vk.Permutation[1].ScalarMultiplication(&srs.Pk.G1[1], &k)
	vk.K2.BigInt(&k)
	vk.Permutation[2].ScalarMultiplication(&srs.Pk.G1[1], &k)

	vk.InnerG2[0] = srs.Vk.G2[1] // tau G2
	vk.InnerG2[1] = srs.Vk.G2[0] // G2

	_, _, _, g2Gen := curve.Generators()
	vk.OuterG2[0].ScalarMultiplicationBase(testOuterScalar)
	vk.OuterG2[1] = g2Gen

	return &vk, srs
}

// testInstance builds an instance whose accumulator pair satisfies the outer
// pairing check of the test key and whose commitment words are zero.
func testInstance() Instance {
	var ins Instance
	var p1, p2 curve.G1Affine
	p1.ScalarMultiplicationBase(bigOf(1))
	p2.ScalarMultiplicationBase(testOuterScalar)
	p2.Neg(&p2)

	x := p1.X.Bytes()
	y := p1.Y.Bytes()
	copy(ins.Words[0][:], x[:])
	copy(ins.Words[1][:], y[:])
	x = p2.X.Bytes()
	y = p2.Y.Bytes()
	copy(ins.Words[2][:], x[:])
	copy(ins.Words[3][:], y[:])
	return ins
}

// testPoly is a polynomial in coefficient form, low degree first.
type testPoly []fr.Element

func (p testPoly) eval(x *fr.Element) fr.Element {
	var res fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		res.Mul(&res, x).Add(&res, &p[i])
	}
	return res
}

func commitPoly(t *testing.T, srs *kzg.SRS, p testPoly) curve.G1Affine {
	t.Helper()
	var c curve.G1Affine
	if len(p) == 0 {
		return c
	}
	_, err := c.MultiExp(srs.Pk.G1[:len(p)], p, ecc.MultiExpConfig{})
	require.NoError(t, err)
	return c
}

// scaleAdd returns dst + s·p.
func scaleAdd(dst testPoly, s *fr.Element, p testPoly) testPoly {
	for len(dst) < len(p) {
		dst = append(dst, fr.Element{})
	}
	var tmp fr.Element
	for i := range p {
		tmp.Mul(s, &p[i])
		dst[i].Add(&dst[i], &tmp)
	}
	return dst
}

// divideByLinear divides p by (X - a); p must vanish at a.
func divideByLinear(p testPoly, a *fr.Element) testPoly {
	if len(p) <= 1 {
		return nil
	}
	q := make(testPoly, len(p)-1)
	q[len(q)-1] = p[len(p)-1]
	for i := len(p) - 2; i >= 1; i-- {
		q[i-1].Mul(&q[i], a).Add(&q[i-1], &p[i])
	}
	return q
}

// proveTest produces an accepting proof for instance under the test key. The
// folding order mirrors foldOpenings exactly.
func proveTest(t *testing.T, vk *VerifyingKey, srs *kzg.SRS, instance *Instance) *Proof {
	t.Helper()

	_, limbs, err := instance.unpack()
	require.NoError(t, err)
	var instCommit curve.G1Affine
	_, err = instCommit.MultiExp(vk.Lagrange[:NbInstanceLimbs], limbs[:], ecc.MultiExpConfig{})
	require.NoError(t, err)

	var proof Proof

	// commitments: zero wires and quotient stay at infinity, the grand
	// product is the constant one
	zPoly := testPoly{fr.One()}
	proof.Z = commitPoly(t, srs, zPoly)

	sigma := [NbWires]testPoly{
		{{}, fr.One()},
		{{}, vk.K1},
		{{}, vk.K2},
	}

	// first transcript pass: the evaluation point only depends on the
	// commitments and the instance
	ch, err := deriveChallenges(vk, &proof, &instCommit, limbs)
	require.NoError(t, err)

	proof.ZEval.SetOne()
	proof.ZOmegaEval.SetOne()
	for i := range sigma {
		proof.PermEvals[i] = sigma[i].eval(&ch.x)
	}

	// second pass picks up the evaluations and yields the folding challenge
	ch, err = deriveChallenges(vk, &proof, &instCommit, limbs)
	require.NoError(t, err)

	// open everything at x, in the order the verifier folds: quotient,
	// wires, grand product, fixed columns, permutation columns
	polys := make([]testPoly, 0, 2+2*NbWires+NbFixed)
	evals := make([]fr.Element, 0, 2+2*NbWires+NbFixed)
	appendCol := func(p testPoly, e fr.Element) {
		polys = append(polys, p)
		evals = append(evals, e)
	}
	appendCol(nil, fr.Element{}) // folded quotient, identically zero
	for i := 0; i < NbWires; i++ {
		appendCol(nil, proof.WireEvals[i])
	}
	appendCol(zPoly, proof.ZEval)
	for i := 0; i < NbFixed; i++ {
		appendCol(nil, proof.FixedEvals[i])
	}
	for i := 0; i < NbWires; i++ {
		appendCol(sigma[i], proof.PermEvals[i])
	}

	var folded testPoly
	var foldedEval, vPow, tmp fr.Element
	vPow.SetOne()
	for i := range polys {
		folded = scaleAdd(folded, &vPow, polys[i])
		tmp.Mul(&vPow, &evals[i])
		foldedEval.Add(&foldedEval, &tmp)
		vPow.Mul(&vPow, &ch.v)
	}
	if len(folded) == 0 {
		folded = testPoly{fr.Element{}}
	}
	folded[0].Sub(&folded[0], &foldedEval)
	proof.W = commitPoly(t, srs, divideByLinear(folded, &ch.x))

	// the omega-shift opening of the constant grand product is exact with a
	// zero quotient: WOmega stays at infinity
	return &proof
}

func TestVerifyAcceptsValidProof(t *testing.T) {
	vk, srs := newTestKey(t)
	ins := testInstance()
	proof := proveTest(t, vk, srs, &ins)

	require.NoError(t, Verify(vk, proof, &ins))
}

func TestVerifyRejectsTamperedOpening(t *testing.T) {
	vk, srs := newTestKey(t)
	ins := testInstance()
	proof := proveTest(t, vk, srs, &ins)

	proof.W.Add(&proof.W, &vk.One)
	err := Verify(vk, proof, &ins)
	require.ErrorIs(t, err, ErrInvalidProof)
}

func TestVerifyRejectsTamperedEvaluation(t *testing.T) {
	vk, srs := newTestKey(t)
	ins := testInstance()
	proof := proveTest(t, vk, srs, &ins)

	proof.FixedEvals[0].SetUint64(1)
	err := Verify(vk, proof, &ins)
	require.ErrorIs(t, err, ErrInvalidProof)
}

func TestVerifyRejectsWrongAccumulator(t *testing.T) {
	vk, srs := newTestKey(t)
	ins := testInstance()
	proof := proveTest(t, vk, srs, &ins)

	// replace the second accumulator point: the opening check still passes,
	// the accumulator check must not
	var p curve.G1Affine
	p.ScalarMultiplicationBase(bigOf(1))
	x := p.X.Bytes()
	y := p.Y.Bytes()
	copy(ins.Words[2][:], x[:])
	copy(ins.Words[3][:], y[:])

	err := Verify(vk, proof, &ins)
	require.ErrorIs(t, err, ErrInvalidProof)
	require.ErrorContains(t, err, "accumulator")
}

func TestVerifyRejectsForeignInstance(t *testing.T) {
	vk, srs := newTestKey(t)
	ins := testInstance()
	proof := proveTest(t, vk, srs, &ins)

	// a proof bound to zero commitment words must not attest to different
	// ones
	ins.Words[4][31] = 1
	err := Verify(vk, proof, &ins)
	require.ErrorIs(t, err, ErrInvalidProof)
}

func TestVerifyRejectsOffCurveAccumulator(t *testing.T) {
	vk, srs := newTestKey(t)
	ins := testInstance()
	proof := proveTest(t, vk, srs, &ins)

	ins.Words[1][31] ^= 1
	err := Verify(vk, proof, &ins)
	require.ErrorIs(t, err, ErrComputation)
}

func TestInstanceRejectsOversizedCoordinate(t *testing.T) {
	var ins Instance
	for i := range ins.Words[0] {
		ins.Words[0][i] = 0xff
	}
	_, _, err := ins.unpack()
	require.ErrorIs(t, err, ErrComputation)
}

func TestInstanceLimbSplit(t *testing.T) {
	var ins Instance
	// word 4: top bit set, high limb 5, low limb 9
	ins.Words[4][0] = 0x80
	ins.Words[4][15] = 5 // bit 128+... low byte of the high limb
	ins.Words[4][31] = 9
	_, limbs, err := ins.unpack()
	require.NoError(t, err)

	var expect fr.Element
	expect.SetUint64(9)
	require.True(t, limbs[0].Equal(&expect)) // low limb of word 4
	expect.SetUint64(5)
	require.True(t, limbs[1].Equal(&expect)) // high limb of word 4
	expect.SetUint64(1)
	require.True(t, limbs[4].Equal(&expect)) // carry of word 4
	require.True(t, limbs[2].IsZero() && limbs[3].IsZero() && limbs[5].IsZero())
}

func TestAggregatorKeyTables(t *testing.T) {
	vk := AggregatorKey()
	for i := range vk.Lagrange {
		require.True(t, vk.Lagrange[i].IsOnCurve())
	}
	for i := range vk.Fixed {
		require.True(t, vk.Fixed[i].IsOnCurve())
	}
	for i := range vk.Permutation {
		require.True(t, vk.Permutation[i].IsOnCurve())
	}
	require.True(t, vk.InitPoint.IsOnCurve())
	for i := range vk.InnerG2 {
		require.True(t, vk.InnerG2[i].IsOnCurve())
		require.True(t, vk.OuterG2[i].IsOnCurve())
	}

	// omega generates the evaluation domain
	var x fr.Element
	var n big.Int
	n.SetUint64(vk.Size)
	x.Exp(vk.Omega, &n)
	one := fr.One()
	require.True(t, x.Equal(&one))
}

// TestQuotientEval pins the gate, permutation and boundary terms on small
// hand-computed values. With zhX = 1 the returned quotient evaluation is the
// identity itself:
//
//	gate     = 6·1 + 2·10 + 3·100 + 5·1000 + 1·10000 = 15326
//	perm     = 2·10·12·15 - 1·10·12·15              = 1800
//	boundary = (2-1)·4·3²                            = 36
//	identity = 11 + 15326 + 3·1800 + 36              = 20773
func TestQuotientEval(t *testing.T) {
	var vk VerifyingKey
	vk.K1.SetUint64(2)
	vk.K2.SetUint64(3)

	var proof Proof
	proof.WireEvals[0].SetUint64(2)
	proof.WireEvals[1].SetUint64(3)
	proof.WireEvals[2].SetUint64(5)
	for j := 0; j < 5; j++ {
		proof.FixedEvals[j].SetOne()
	}
	proof.PermEvals[0].SetUint64(1)
	proof.PermEvals[1].SetUint64(2)
	proof.PermEvals[2].SetUint64(3)
	proof.ZEval.SetUint64(2)
	proof.ZOmegaEval.SetOne()

	var ch challenges
	ch.theta.SetUint64(10)
	ch.beta.SetOne()
	ch.gamma.SetUint64(7)
	ch.y.SetUint64(3)
	ch.x.SetOne()
	ch.zhX.SetOne()
	ch.lagrangeOne.SetUint64(4)
	ch.pi.SetUint64(11)

	hEval, err := quotientEval(&vk, &proof, &ch)
	require.NoError(t, err)

	var expected fr.Element
	expected.SetUint64(20773)
	require.True(t, hEval.Equal(&expected))
}

// TestFoldOpenings pins the quotient Horner fold and the (t0, t1) assembly.
// With v = 0 only the folded quotient survives the digest fold, so
//
//	t0 = (7 + 19·11)·G                 = 216·G
//	t1 = (hs + 3·7 + 19·23·11 + 19·5 - (17 + 19·13))·G = (hs + 4659)·G
//
// where hs = 1 + 2·s + 3·s² and s = x^{n+2} = 3¹⁰.
func TestFoldOpenings(t *testing.T) {
	var vk VerifyingKey
	vk.Size = 8
	_, _, g1Gen, _ := curve.Generators()
	vk.One = g1Gen

	var proof Proof
	for i := range proof.H {
		proof.H[i].ScalarMultiplicationBase(bigOf(uint64(i + 1)))
	}
	proof.Z.ScalarMultiplicationBase(bigOf(5))
	proof.W.ScalarMultiplicationBase(bigOf(7))
	proof.WOmega.ScalarMultiplicationBase(bigOf(11))
	proof.ZOmegaEval.SetUint64(13)

	var ch challenges
	ch.x.SetUint64(3)
	ch.u.SetUint64(19)
	ch.xOmega.SetUint64(23)

	var hEval fr.Element
	hEval.SetUint64(17)

	t0, t1, err := foldOpenings(&vk, &proof, &ch, &hEval)
	require.NoError(t, err)

	var s, hs, t1Scalar, tmp fr.Element
	s.Exp(ch.x, big.NewInt(10))
	hs.SetUint64(3).
		Mul(&hs, &s)
	tmp.SetUint64(2)
	hs.Add(&hs, &tmp).
		Mul(&hs, &s)
	tmp.SetOne()
	hs.Add(&hs, &tmp)

	var want curve.G1Affine
	var b big.Int
	t1Scalar.SetUint64(4659).Add(&t1Scalar, &hs)
	want.ScalarMultiplicationBase(t1Scalar.BigInt(&b))
	require.True(t, t1.Equal(&want))

	want.ScalarMultiplicationBase(bigOf(216))
	require.True(t, t0.Equal(&want))
}
