package zkproof

import (
	"io"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
)

// WriteTo writes proof to w, curve points in compressed form, fields in the
// transcript order.
func (proof *Proof) WriteTo(w io.Writer) (int64, error) {
	enc := curve.NewEncoder(w)
	for _, v := range proof.ioList() {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom reads proof from r. Points are checked to be on the curve and in
// the correct subgroup.
func (proof *Proof) ReadFrom(r io.Reader) (int64, error) {
	dec := curve.NewDecoder(r)
	for _, v := range proof.ioList() {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}
	return dec.BytesRead(), nil
}

func (proof *Proof) ioList() []interface{} {
	list := make([]interface{}, 0, 2*NbWires+NbQuotientPieces+NbFixed+NbWires+5)
	for i := range proof.Wire {
		list = append(list, &proof.Wire[i])
	}
	list = append(list, &proof.Z)
	for i := range proof.H {
		list = append(list, &proof.H[i])
	}
	for i := range proof.WireEvals {
		list = append(list, &proof.WireEvals[i])
	}
	for i := range proof.FixedEvals {
		list = append(list, &proof.FixedEvals[i])
	}
	for i := range proof.PermEvals {
		list = append(list, &proof.PermEvals[i])
	}
	list = append(list, &proof.ZEval, &proof.ZOmegaEval, &proof.W, &proof.WOmega)
	return list
}

// WriteTo writes the six instance words to w.
func (ins *Instance) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for i := range ins.Words {
		n, err := w.Write(ins.Words[i][:])
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// ReadFrom reads the six instance words from r.
func (ins *Instance) ReadFrom(r io.Reader) (int64, error) {
	var read int64
	for i := range ins.Words {
		n, err := io.ReadFull(r, ins.Words[i][:])
		read += int64(n)
		if err != nil {
			return read, err
		}
	}
	return read, nil
}
