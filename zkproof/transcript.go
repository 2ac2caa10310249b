package zkproof

import (
	"hash"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// transcript absorption tags. The tag bytes, the absorption order and the
// zero terminator are part of the protocol: changing any of them changes
// every derived challenge.
const (
	tagEnd    byte = 0x00
	tagPoint  byte = 0x01
	tagScalar byte = 0x02
)

// transcriptCap bounds the absorption buffer: the largest absorb run between
// two squeezes is the evaluation round, one tagged scalar per opened column.
const transcriptCap = 4096

// transcript derives verifier challenges from absorbed proof material, keccak
// over a tagged byte buffer. After a squeeze the buffer restarts with the raw
// digest so successive challenges chain.
type transcript struct {
	buf []byte
	h   hash.Hash
}

func newTranscript() *transcript {
	return &transcript{
		buf: make([]byte, 0, transcriptCap),
		h:   sha3.NewLegacyKeccak256(),
	}
}

func (t *transcript) absorbScalar(v *fr.Element) {
	b := v.Bytes()
	t.buf = append(t.buf, tagScalar)
	t.buf = append(t.buf, b[:]...)
}

func (t *transcript) absorbPoint(p *curve.G1Affine) {
	x := p.X.Bytes()
	y := p.Y.Bytes()
	t.buf = append(t.buf, tagPoint)
	t.buf = append(t.buf, x[:]...)
	t.buf = append(t.buf, y[:]...)
}

// squeezeChallenge terminates the absorb run, hashes the buffer and reduces
// the digest into fr. The digest is read in reversed byte order before the
// modulo reduction.
func (t *transcript) squeezeChallenge() fr.Element {
	t.buf = append(t.buf, tagEnd)
	t.h.Reset()
	t.h.Write(t.buf)
	digest := t.h.Sum(nil)

	var reversed [32]byte
	for i := range reversed {
		reversed[i] = digest[31-i]
	}
	var c fr.Element
	c.SetBytes(reversed[:])

	t.buf = t.buf[:0]
	t.buf = append(t.buf, digest...)
	return c
}
