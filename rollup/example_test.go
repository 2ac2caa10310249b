package rollup_test

import (
	"fmt"
	"math/big"

	"github.com/amirf4/scroll/rollup"
	"github.com/amirf4/scroll/zkproof"
)

type acceptAll struct{}

func (acceptAll) Verify(*zkproof.Proof, *zkproof.Instance) error { return nil }

// ExampleChain walks a batch through the commit / finalize lifecycle.
func ExampleChain() {
	queue := &rollup.MemoryQueue{}
	chain := rollup.NewChain(queue, rollup.WithVerifier(acceptAll{}))

	genesisDigest, err := chain.ImportGenesis(&rollup.Batch{
		Blocks: []rollup.BlockContext{{
			BlockHash: rollup.Hash{0x01},
			Timestamp: 1700000000,
			BaseFee:   big.NewInt(7),
			GasLimit:  10_000_000,
		}},
		NewStateRoot: rollup.Hash{0xaa},
	})
	if err != nil {
		panic(err)
	}

	var operator rollup.Address
	digest, err := chain.Commit(operator, &rollup.Batch{
		Blocks: []rollup.BlockContext{{
			BlockHash:  rollup.Hash{0x02},
			ParentHash: rollup.Hash{0x01},
			Number:     1,
			Timestamp:  1700000012,
			BaseFee:    big.NewInt(7),
			GasLimit:   10_000_000,
		}},
		PrevStateRoot:   rollup.Hash{0xaa},
		NewStateRoot:    rollup.Hash{0xbb},
		Index:           1,
		ParentBatchHash: genesisDigest,
	})
	if err != nil {
		panic(err)
	}

	fmt.Println("committed:", chain.IsFinalized(digest))
	if err := chain.FinalizeWithProof(operator, digest, &zkproof.Proof{}, &zkproof.Instance{}); err != nil {
		panic(err)
	}
	fmt.Println("finalized:", chain.IsFinalized(digest))
	// Output:
	// committed: false
	// finalized: true
}
