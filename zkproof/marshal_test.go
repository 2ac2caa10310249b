package zkproof

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	rollupio "github.com/amirf4/scroll/io"
)

func TestProofSerialization(t *testing.T) {
	vk, srs := newTestKey(t)
	ins := testInstance()
	proof := proveTest(t, vk, srs, &ins)
	proof.Wire[1].ScalarMultiplicationBase(bigOf(42))
	proof.WireEvals[2].SetUint64(11)

	err := rollupio.RoundTripCheck(proof, func() io.ReaderFrom { return new(Proof) })
	require.NoError(t, err)
}

func TestInstanceSerialization(t *testing.T) {
	ins := testInstance()
	ins.Words[5][31] = 0xab

	err := rollupio.RoundTripCheck(&ins, func() io.ReaderFrom { return new(Instance) })
	require.NoError(t, err)
}
