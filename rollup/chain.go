package rollup

import (
	"fmt"
	"sync"
	"time"

	"github.com/amirf4/scroll/logger"
	"github.com/amirf4/scroll/zkproof"
)

// Verifier checks an aggregate proof against its public instance. The
// default implementation runs the pairing verifier under the aggregation
// circuit key; embedders may swap in another key or verifier build.
type Verifier interface {
	Verify(proof *zkproof.Proof, instance *zkproof.Instance) error
}

type keyVerifier struct {
	vk *zkproof.VerifyingKey
}

func (v keyVerifier) Verify(proof *zkproof.Proof, instance *zkproof.Instance) error {
	return zkproof.Verify(v.vk, proof, instance)
}

// aggregatorVerifier is the default: it resolves the aggregation key on the
// first proof so chains with a custom verifier never pay for building it.
type aggregatorVerifier struct{}

func (aggregatorVerifier) Verify(proof *zkproof.Proof, instance *zkproof.Instance) error {
	return zkproof.Verify(zkproof.AggregatorKey(), proof, instance)
}

// Chain is the batch commitment state machine. It owns the committed-batch
// registry and the finalization pointers; batches move through
// Uncommitted → Committed → Finalized, where only un-finalized batches may be
// reverted.
//
// All operations are synchronous and atomic: a failing call leaves the state
// exactly as it was. A single mutex serializes every transition.
type Chain struct {
	mu       sync.RWMutex
	store    *batchStore
	queue    MessageQueue
	acl      AccessController
	verifier Verifier
}

// Option configures a Chain.
type Option func(*Chain)

// WithAccessController gates the mutating operations behind ac. Without it
// the chain trusts its embedder to authenticate callers.
func WithAccessController(ac AccessController) Option {
	return func(c *Chain) { c.acl = ac }
}

// WithVerifyingKey overrides the verifying key used by FinalizeWithProof.
func WithVerifyingKey(vk *zkproof.VerifyingKey) Option {
	return func(c *Chain) { c.verifier = keyVerifier{vk} }
}

// WithVerifier replaces the proof verifier used by FinalizeWithProof.
func WithVerifier(v Verifier) Option {
	return func(c *Chain) { c.verifier = v }
}

// NewChain creates a chain consuming L1 message digests from queue.
func NewChain(queue MessageQueue, opts ...Option) *Chain {
	c := &Chain{
		store:    newBatchStore(),
		queue:    queue,
		verifier: aggregatorVerifier{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Chain) authorize(principal Address) error {
	if c.acl != nil && !c.acl.IsAuthorized(principal) {
		return ErrUnauthorized
	}
	return nil
}

// ImportGenesis imports the genesis batch. It is allowed exactly once, before
// any finalization, and requires a single block with number 0, a zero parent
// hash and a zero previous state root. The genesis batch is finalized
// immediately, without proof, as batch 0.
func (c *Chain) ImportGenesis(batch *Batch) (Hash, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store.hasLatest {
		return Hash{}, ErrGenesisImported
	}
	if len(batch.Blocks) != 1 {
		return Hash{}, fmt.Errorf("%w: genesis must hold exactly one block", ErrInvalidGenesis)
	}
	blk := &batch.Blocks[0]
	if blk.Number != 0 || !blk.ParentHash.IsZero() || !batch.PrevStateRoot.IsZero() {
		return Hash{}, fmt.Errorf("%w: genesis block must have zero number, parent hash and previous state root", ErrInvalidGenesis)
	}

	digest, numTxs, totalL1, lastTimestamp, err := deriveBatchHash(batch, 0, c.queue)
	if err != nil {
		return Hash{}, err
	}

	c.store.put(digest, &CommittedBatch{
		NewStateRoot:       batch.NewStateRoot,
		WithdrawTrieRoot:   batch.WithdrawTrieRoot,
		ParentBatchHash:    batch.ParentBatchHash,
		Index:              0,
		LastBlockTimestamp: lastTimestamp,
		NumTransactions:    numTxs,
		TotalL1Messages:    totalL1,
		Finalized:          true,
	})
	c.store.markFinalized(0, digest)

	log := logger.Logger()
	log.Info().Str("digest", digest.Hex()).Msg("genesis batch imported")
	return digest, nil
}

// Commit validates batch against its committed parent and stores it keyed by
// its public input hash. The parent is looked up by batch.ParentBatchHash and
// must satisfy parent.NewStateRoot == batch.PrevStateRoot and
// parent.Index+1 == batch.Index.
func (c *Chain) Commit(operator Address, batch *Batch) (Hash, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.authorize(operator); err != nil {
		return Hash{}, err
	}
	if len(batch.Blocks) == 0 {
		return Hash{}, ErrEmptyBatch
	}

	parent, ok := c.store.get(batch.ParentBatchHash)
	if !ok {
		return Hash{}, fmt.Errorf("%w: parent batch %s not committed", ErrParentMismatch, batch.ParentBatchHash.Hex())
	}
	if parent.NewStateRoot != batch.PrevStateRoot {
		return Hash{}, fmt.Errorf("%w: previous state root does not extend parent", ErrParentMismatch)
	}
	if batch.Index != parent.Index+1 {
		return Hash{}, fmt.Errorf("%w: batch index %d does not follow parent index %d", ErrParentMismatch, batch.Index, parent.Index)
	}

	digest, numTxs, totalL1, lastTimestamp, err := deriveBatchHash(batch, parent.TotalL1Messages, c.queue)
	if err != nil {
		return Hash{}, err
	}
	if _, ok := c.store.get(digest); ok {
		return Hash{}, fmt.Errorf("%w: %s", ErrDuplicateBatch, digest.Hex())
	}

	c.store.put(digest, &CommittedBatch{
		NewStateRoot:       batch.NewStateRoot,
		WithdrawTrieRoot:   batch.WithdrawTrieRoot,
		ParentBatchHash:    batch.ParentBatchHash,
		Index:              batch.Index,
		LastBlockTimestamp: lastTimestamp,
		NumTransactions:    numTxs,
		TotalL1Messages:    totalL1,
	})

	log := logger.Logger()
	log.Info().Uint64("index", batch.Index).Str("digest", digest.Hex()).Msg("batch committed")
	return digest, nil
}

// Revert deletes the committed batch at digest. Finalized batches cannot be
// reverted.
func (c *Chain) Revert(operator Address, digest Hash) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.authorize(operator); err != nil {
		return err
	}
	b, ok := c.store.get(digest)
	if !ok {
		return fmt.Errorf("%w: %s", ErrBatchNotFound, digest.Hex())
	}
	if b.Finalized {
		return fmt.Errorf("%w: %s", ErrAlreadyFinalized, digest.Hex())
	}
	c.store.delete(digest)

	log := logger.Logger()
	log.Info().Uint64("index", b.Index).Str("digest", digest.Hex()).Msg("batch reverted")
	return nil
}

// FinalizeWithProof verifies proof against the batch at digest and, on
// success, marks the batch finalized. Finalization may happen out of index
// order; the latest-finalized pointer only ever advances to a higher index.
func (c *Chain) FinalizeWithProof(operator Address, digest Hash, proof *zkproof.Proof, instance *zkproof.Instance) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.authorize(operator); err != nil {
		return err
	}
	b, ok := c.store.get(digest)
	if !ok {
		return fmt.Errorf("%w: %s", ErrBatchNotFound, digest.Hex())
	}
	if b.Finalized {
		return fmt.Errorf("%w: %s", ErrAlreadyFinalized, digest.Hex())
	}

	start := time.Now()
	if err := c.verifier.Verify(proof, instance); err != nil {
		return err
	}

	b.Finalized = true
	c.store.markFinalized(b.Index, digest)

	log := logger.Logger()
	log.Info().Uint64("index", b.Index).Str("digest", digest.Hex()).Dur("took", time.Since(start)).Msg("batch finalized")
	return nil
}

// IsFinalized reports whether a committed batch exists at digest with an
// index at most the latest finalized index. Note that this tracks the
// pointer, not completeness: a lower-index batch that never received a proof
// still reports false because its record is not marked finalized -- see
// FinalizedDigest for pointer-table lookups.
func (c *Chain) IsFinalized(digest Hash) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.store.get(digest)
	if !ok || !c.store.hasLatest {
		return false
	}
	return b.Finalized && b.Index <= c.store.latestIndex
}

// MessageRoot returns the stored withdrawal trie root of the batch at digest,
// or the zero hash if no such batch is committed.
func (c *Chain) MessageRoot(digest Hash) Hash {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.store.get(digest)
	if !ok {
		return Hash{}
	}
	return b.WithdrawTrieRoot
}

// LatestFinalized returns the digest of the highest-index finalized batch.
func (c *Chain) LatestFinalized() (Hash, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.latest, c.store.hasLatest
}

// FinalizedDigest returns the digest recorded at index in the finalization
// pointer table.
func (c *Chain) FinalizedDigest(index uint64) (Hash, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.store.finalizedAt(index) {
		return Hash{}, false
	}
	return c.store.byIndex[index], true
}

// Batch returns a copy of the committed batch record at digest.
func (c *Chain) Batch(digest Hash) (CommittedBatch, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.store.get(digest)
	if !ok {
		return CommittedBatch{}, false
	}
	return *b, true
}
