package zkproof

import (
	"fmt"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Instance is the six-word instance output of the inner proof: words 0..3
// hold the x/y pairs of the two accumulator points entering the outer pairing
// check, words 4..5 hold the inner verification key commitment.
type Instance struct {
	Words [NbInstanceWords][32]byte
}

// unpack splits the instance into the accumulator point pair and the six
// scalar limbs absorbed by the transcript. Each commitment word yields a
// 128-bit low limb and a 127-bit high limb; the top bit of each word is
// carried as its own limb (the compressed pairing output encoding).
func (ins *Instance) unpack() ([2]curve.G1Affine, [NbInstanceLimbs]fr.Element, error) {
	var pair [2]curve.G1Affine
	var limbs [NbInstanceLimbs]fr.Element

	for i := 0; i < 2; i++ {
		x, err := fpFromWord(ins.Words[2*i])
		if err != nil {
			return pair, limbs, err
		}
		y, err := fpFromWord(ins.Words[2*i+1])
		if err != nil {
			return pair, limbs, err
		}
		pair[i].X = x
		pair[i].Y = y
		if !pair[i].IsInfinity() && !pair[i].IsOnCurve() {
			return pair, limbs, fmt.Errorf("%w: accumulator point %d not on curve", ErrComputation, i)
		}
	}

	var lowMask big.Int
	lowMask.Lsh(big.NewInt(1), 128).Sub(&lowMask, big.NewInt(1))
	for i := 0; i < 2; i++ {
		var w, lo, hi big.Int
		w.SetBytes(ins.Words[4+i][:])
		carry := w.Bit(255)
		lo.And(&w, &lowMask)
		hi.Rsh(&w, 128)
		hi.SetBit(&hi, 127, 0)
		limbs[2*i].SetBigInt(&lo)
		limbs[2*i+1].SetBigInt(&hi)
		limbs[4+i].SetUint64(uint64(carry))
	}
	return pair, limbs, nil
}

// fpFromWord interprets a 32-byte word as a base field element, rejecting
// values at or above the field modulus.
func fpFromWord(word [32]byte) (fp.Element, error) {
	var v big.Int
	v.SetBytes(word[:])
	if v.Cmp(fp.Modulus()) >= 0 {
		var zero fp.Element
		return zero, fmt.Errorf("%w: coordinate exceeds base field modulus", ErrComputation)
	}
	var e fp.Element
	e.SetBigInt(&v)
	return e, nil
}
