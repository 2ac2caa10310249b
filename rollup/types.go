package rollup

import (
	"encoding/hex"
	"math/big"
)

// Hash is a keccak digest, either of a batch public input or of an L1 message.
type Hash [32]byte

// Hex returns the 0x-prefixed hexadecimal encoding of h.
func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Address identifies a principal calling the state machine.
type Address [20]byte

// BlockContext is the fixed-size header material of one layer-2 block as it
// enters the public input encoding.
type BlockContext struct {
	BlockHash       Hash
	ParentHash      Hash
	Number          uint64
	Timestamp       uint64
	BaseFee         *big.Int
	GasLimit        uint64
	NumTransactions uint16
	NumL1Messages   uint16
}

// Batch is a contiguous run of layer-2 blocks submitted as one commitment
// unit.
//
// Transactions holds the raw encoded non-L1 transaction payloads of every
// block, in block order, each payload prefixed by a 4-byte big-endian length.
type Batch struct {
	Blocks           []BlockContext
	PrevStateRoot    Hash
	NewStateRoot     Hash
	WithdrawTrieRoot Hash
	Index            uint64
	ParentBatchHash  Hash
	Transactions     []byte
}

// CommittedBatch is the stored record of a committed batch, keyed by its
// public input hash. Finalized is the only field that mutates after commit.
type CommittedBatch struct {
	NewStateRoot       Hash
	WithdrawTrieRoot   Hash
	ParentBatchHash    Hash
	Index              uint64
	LastBlockTimestamp uint64
	NumTransactions    uint64
	TotalL1Messages    uint64
	Finalized          bool
}
