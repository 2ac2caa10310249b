package rollup

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"
)

const (
	// MaxTxPerBatch is the fixed transaction capacity of a batch. The public
	// input encoding is always padded to this many transaction digests so
	// that the digest layout is independent of the batch fill level.
	MaxTxPerBatch = 25

	// serialized size of one BlockContext
	blockContextSize = 124
)

// paddingTxDigest is the digest of the canonical zero-length padding
// transaction, keccak256 of the empty payload.
var paddingTxDigest = Hash{
	0xc5, 0xd2, 0x46, 0x01, 0x86, 0xf7, 0x23, 0x3c,
	0x92, 0x7e, 0x7d, 0xb2, 0xdc, 0xc7, 0x03, 0xc0,
	0xe5, 0x00, 0xb6, 0x53, 0xca, 0x82, 0x27, 0x3b,
	0x7b, 0xfa, 0xd8, 0x04, 0x5d, 0x85, 0xa4, 0x70,
}

func keccak256(data []byte) Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var res Hash
	copy(res[:], h.Sum(nil))
	return res
}

// deriveBatchHash canonically serializes batch and hashes it into its public
// input digest. parentTotalL1Messages is the cumulative L1 message count
// carried from the parent batch; queue resolves the digests of the L1
// messages the batch consumes, by increasing global index.
//
// It returns the digest, the number of transactions in the batch, the updated
// cumulative L1 message count and the timestamp of the last block.
func deriveBatchHash(batch *Batch, parentTotalL1Messages uint64, queue MessageQueue) (Hash, uint64, uint64, uint64, error) {
	if len(batch.Blocks) == 0 {
		return Hash{}, 0, 0, 0, ErrEmptyBatch
	}

	var numTxs uint64
	for _, blk := range batch.Blocks {
		if blk.NumL1Messages > blk.NumTransactions {
			return Hash{}, 0, 0, 0, fmt.Errorf("%w: block %d declares %d L1 messages for %d transactions",
				ErrL1MessageCount, blk.Number, blk.NumL1Messages, blk.NumTransactions)
		}
		numTxs += uint64(blk.NumTransactions)
	}
	if numTxs > MaxTxPerBatch {
		return Hash{}, 0, 0, 0, fmt.Errorf("%w: %d > %d", ErrTooManyTxs, numTxs, MaxTxPerBatch)
	}

	buf := make([]byte, 0, 96+blockContextSize*len(batch.Blocks)+32*MaxTxPerBatch)
	buf = append(buf, batch.PrevStateRoot[:]...)
	buf = append(buf, batch.NewStateRoot[:]...)
	buf = append(buf, batch.WithdrawTrieRoot[:]...)

	for i, blk := range batch.Blocks {
		if i > 0 {
			prev := &batch.Blocks[i-1]
			if blk.ParentHash != prev.BlockHash || blk.Number != prev.Number+1 {
				return Hash{}, 0, 0, 0, fmt.Errorf("%w: block %d does not extend block %d",
					ErrBlockChainBroken, blk.Number, prev.Number)
			}
		}
		buf = append(buf, blk.BlockHash[:]...)
		buf = append(buf, blk.ParentHash[:]...)
		buf = binary.BigEndian.AppendUint64(buf, blk.Number)
		buf = binary.BigEndian.AppendUint64(buf, blk.Timestamp)
		var baseFee [32]byte
		if blk.BaseFee != nil {
			blk.BaseFee.FillBytes(baseFee[:])
		}
		buf = append(buf, baseFee[:]...)
		buf = binary.BigEndian.AppendUint64(buf, blk.GasLimit)
		buf = binary.BigEndian.AppendUint16(buf, blk.NumTransactions)
		buf = binary.BigEndian.AppendUint16(buf, blk.NumL1Messages)
	}

	// transaction digests: L1 message digests first (by increasing global
	// index), then the keccak of each raw L2 payload, block by block
	totalL1Messages := parentTotalL1Messages
	txData := batch.Transactions
	for _, blk := range batch.Blocks {
		for j := uint16(0); j < blk.NumL1Messages; j++ {
			digest, err := queue.MessageDigest(totalL1Messages)
			if err != nil {
				return Hash{}, 0, 0, 0, err
			}
			buf = append(buf, digest[:]...)
			totalL1Messages++
		}
		for j := blk.NumL1Messages; j < blk.NumTransactions; j++ {
			if len(txData) < 4 {
				return Hash{}, 0, 0, 0, fmt.Errorf("%w: missing length prefix", ErrTxPayloadCorrupted)
			}
			size := binary.BigEndian.Uint32(txData)
			txData = txData[4:]
			if uint64(len(txData)) < uint64(size) {
				return Hash{}, 0, 0, 0, fmt.Errorf("%w: payload length %d over-runs buffer", ErrTxPayloadCorrupted, size)
			}
			digest := keccak256(txData[:size])
			txData = txData[size:]
			buf = append(buf, digest[:]...)
		}
	}
	if len(txData) != 0 {
		return Hash{}, 0, 0, 0, fmt.Errorf("%w: %d trailing bytes", ErrTxPayloadCorrupted, len(txData))
	}

	for i := numTxs; i < MaxTxPerBatch; i++ {
		buf = append(buf, paddingTxDigest[:]...)
	}

	lastTimestamp := batch.Blocks[len(batch.Blocks)-1].Timestamp
	return keccak256(buf), numTxs, totalL1Messages, lastTimestamp, nil
}
